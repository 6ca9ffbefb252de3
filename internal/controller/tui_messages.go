package controller

import m "github.com/mouse-blink/wle-js-upgrade/internal/model"

// Message types.
type upcomingMsg struct {
	count int
}

type resultMsg struct {
	result m.MigrationResult
}

type summaryMsg struct {
	results []m.MigrationResult
}

type doneMsg struct{}
