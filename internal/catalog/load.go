package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

const formatVersion = 1

//go:embed data/immune.yaml
var builtinDocument []byte

type document struct {
	FormatVersion int        `yaml:"format_version"`
	Items         []Item     `yaml:"items"`
	Scenarios     []Scenario `yaml:"scenarios"`
}

// Load decodes a catalog document and validates it. Unknown keys are
// rejected so that a typo in the content cannot silently drop a field.
func Load(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode catalog: empty document")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if doc.FormatVersion != formatVersion {
		return nil, fmt.Errorf("decode catalog: unsupported format_version %d", doc.FormatVersion)
	}
	return New(doc.Items, doc.Scenarios)
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Load(builtinDocument)
	})
	return builtin, builtinErr
}
