package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithPlanMode()(cfg)
	if cfg.mode != ModePlan {
		t.Fatalf("WithPlanMode() mode = %v, want %v", cfg.mode, ModePlan)
	}

	WithMigrateMode()(cfg)
	if cfg.mode != ModeMigrate {
		t.Fatalf("WithMigrateMode() mode = %v, want %v", cfg.mode, ModeMigrate)
	}
}

func TestNewStartConfig_DefaultsToMigrate(t *testing.T) {
	if got := newStartConfig(nil).mode; got != ModeMigrate {
		t.Fatalf("newStartConfig(nil) mode = %v, want %v", got, ModeMigrate)
	}

	if got := newStartConfig([]StartOption{WithPlanMode()}).mode; got != ModePlan {
		t.Fatalf("newStartConfig(plan) mode = %v, want %v", got, ModePlan)
	}
}
