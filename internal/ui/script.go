package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunScript plays commands read line by line from r and writes each reply
// to w. Blank lines and lines starting with '#' are skipped. It stops at
// EOF, on a quit command or when ctx is cancelled.
func RunScript(ctx context.Context, in *Interpreter, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reply := in.Handle(line)
		if _, err := fmt.Fprintf(w, "> %s\n%s\n", line, reply.Message); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
		if reply.Quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}
