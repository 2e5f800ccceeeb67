package ports

import "go.trai.ch/pdctl/internal/core/domain"

// ReportStore defines the interface for persisting run reports.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Put stores the report under the workspace route and returns its id.
	// A report without an id is assigned a new one.
	Put(route string, report domain.RunReport) (string, error)

	// Latest returns the most recently finished report.
	// Returns nil, nil if no report exists.
	Latest(route string) (*domain.RunReport, error)

	// Clear removes every stored report and returns how many were removed.
	Clear(route string) (int, error)
}
