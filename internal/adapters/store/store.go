// Package store persists run reports as one JSON file per run.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/zerr"
)

const reportExt = ".json"

// Store implements ports.ReportStore using a file-per-run strategy under the workspace route.
type Store struct {
	newID func() string
}

// NewStore creates a new ReportStore.
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Put stores the report and returns its run id.
func (s *Store) Put(route string, report domain.RunReport) (string, error) {
	if report.ID == "" {
		report.ID = s.newID()
	}
	if _, err := uuid.Parse(report.ID); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "invalid run id"), "id", report.ID)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", zerr.Wrap(errors.Join(domain.ErrStoreMarshalFailed, err), "cannot encode run report")
	}

	dir := domain.ReportsPath(route)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreCreateFailed, err), "cannot create report directory"),
			"path", dir)
	}

	path := filepath.Join(dir, report.ID+reportExt)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreWriteFailed, err), "cannot write run report"),
			"path", path)
	}

	return report.ID, nil
}

// Latest returns the report that finished last.
func (s *Store) Latest(route string) (*domain.RunReport, error) {
	paths, err := s.reports(route)
	if err != nil {
		return nil, err
	}

	var latest *domain.RunReport
	for _, path := range paths {
		report, err := read(path)
		if err != nil {
			return nil, err
		}
		if latest == nil || report.Finished.After(latest.Finished) {
			latest = report
		}
	}
	return latest, nil
}

// Clear removes every stored report.
func (s *Store) Clear(route string) (int, error) {
	paths, err := s.reports(route)
	if err != nil {
		return 0, err
	}

	var errs error
	removed := 0
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(errors.Join(domain.ErrRemoveFailed, err), "cannot remove run report"),
				"path", path))
			continue
		}
		removed++
	}
	return removed, errs
}

func (s *Store) reports(route string) ([]string, error) {
	dir := domain.ReportsPath(route)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "cannot list run reports"),
			"path", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), reportExt) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

func read(path string) (*domain.RunReport, error) {
	//nolint:gosec // Path is listed from the workspace report directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreReadFailed, err), "cannot read run report"),
			"path", path)
	}

	var report domain.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrStoreUnmarshalFailed, err), "cannot decode run report"),
			"path", path)
	}
	return &report, nil
}
