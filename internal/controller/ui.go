// Package controller provides the operator-facing output of the migration.
package controller

import (
	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMigrate StartMode = iota
	ModePlan
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithMigrateMode reports files as they are rewritten.
func WithMigrateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMigrate
	}
}

// WithPlanMode reports what a migration would change without writing.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeMigrate}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how migration progress is shown to the operator.
// Implementations can use different output methods (simple text, TUI, etc).
// DisplayResult may be called from several goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish rendering
	DisplayUpcoming(count int)
	DisplayResult(result m.MigrationResult)
	DisplaySummary(results []m.MigrationResult)
	// Err reports why rendering stopped early. It is valid after Wait.
	Err() error
}
