package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDanglingReference = errors.New("dangling item reference")
	ErrPrerequisiteCycle = errors.New("prerequisite cycle")
	ErrEmptySequence     = errors.New("empty correct sequence")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrInvalidField      = errors.New("invalid field")
)

// ConfigError reports a catalog integrity defect found at load time.
// It wraps one of the sentinel errors above.
type ConfigError struct {
	Err        error
	ItemID     ItemID
	ScenarioID int
	Detail     string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("catalog: ")
	b.WriteString(e.Err.Error())
	if e.ScenarioID != 0 {
		fmt.Fprintf(&b, " in scenario %d", e.ScenarioID)
	}
	if e.ItemID != "" {
		fmt.Fprintf(&b, " (item %q)", e.ItemID)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
