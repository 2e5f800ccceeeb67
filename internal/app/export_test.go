package app

import (
	"time"

	"go.trai.ch/pdctl/internal/adapters/detector"
)

// WithDetector replaces output mode detection.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// WithClock replaces the clock used for reports and snapshots.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}
