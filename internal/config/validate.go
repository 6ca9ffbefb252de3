package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrInvalidParallel indicates a worker count below one.
	ErrInvalidParallel = errors.New("invalid parallel")

	// ErrEmptyFormatter indicates formatting is enabled without a command.
	ErrEmptyFormatter = errors.New("empty formatter command")

	// ErrInvalidExclude indicates an exclude pattern that does not compile.
	ErrInvalidExclude = errors.New("invalid exclude pattern")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Parallel < 1 {
		errs = append(errs, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidParallel, cfg.Parallel))
	}

	if cfg.Format && strings.TrimSpace(cfg.Formatter) == "" {
		errs = append(errs, ErrEmptyFormatter)
	}

	for _, pattern := range cfg.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %v", ErrInvalidExclude, pattern, err))
		}
	}

	return errors.Join(errs...)
}
