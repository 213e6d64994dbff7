package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/goreg/internal/model"
)

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	// SaveJSON writes the machine-readable report to path.
	SaveJSON(path string, report m.JSONReport) error
	// LoadJSON reads a report previously written by SaveJSON.
	LoadJSON(path string) (m.JSONReport, error)
	// SaveArtifact writes any other rendered report (HTML, JUnit, traces).
	SaveArtifact(path string, content []byte) error
}

// LocalReportStore implements ReportStore on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveJSON implements ReportStore.
func (rs *LocalReportStore) SaveJSON(path string, report m.JSONReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("%w: failed to encode json report: %w", m.ErrUnknown, err)
	}

	return rs.SaveArtifact(path, data)
}

// LoadJSON implements ReportStore.
func (rs *LocalReportStore) LoadJSON(path string) (m.JSONReport, error) {
	// #nosec G304 - path is the user supplied report location
	data, err := os.ReadFile(path)
	if err != nil {
		return m.JSONReport{}, fmt.Errorf("%w: failed to read json report: %w", m.ErrFileIO, err)
	}

	var report m.JSONReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.JSONReport{}, fmt.Errorf("%w: failed to decode json report %s: %w", m.ErrUnknown, path, err)
	}

	return report, nil
}

// SaveArtifact implements ReportStore. Parent directories are created.
func (rs *LocalReportStore) SaveArtifact(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: failed to create report directory: %w", m.ErrFileIO, err)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil { //nolint:gosec // reports are meant to be shared
		return fmt.Errorf("%w: failed to write %s: %w", m.ErrFileIO, path, err)
	}

	return nil
}
