package adapter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// ErrFormatterUnavailable is returned when the external formatter cannot
// format a file. Callers treat it as a warning.
var ErrFormatterUnavailable = errors.New("formatter unavailable")

// Formatter rewrites a file in place using an external code formatter.
type Formatter interface {
	Format(ctx context.Context, path m.Path) error
}

// ExecFormatter runs a formatter command with the file path appended as the
// last argument, e.g. "npx prettier --write".
type ExecFormatter struct {
	command []string
}

// NewExecFormatter constructs an ExecFormatter from a command line.
func NewExecFormatter(command string) *ExecFormatter {
	return &ExecFormatter{command: strings.Fields(command)}
}

// Format runs the command on path.
func (f *ExecFormatter) Format(ctx context.Context, path m.Path) error {
	if len(f.command) == 0 {
		return fmt.Errorf("%w: no formatter command configured", ErrFormatterUnavailable)
	}

	bin, err := exec.LookPath(f.command[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFormatterUnavailable, err)
	}

	args := append(append([]string{}, f.command[1:]...), string(path))

	// #nosec G204 - the formatter command comes from the operator's own configuration
	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%w: %s: %w", ErrFormatterUnavailable, f.command[0], err)
		}

		return fmt.Errorf("%w: %s: %w: %s", ErrFormatterUnavailable, f.command[0], err, msg)
	}

	return nil
}
