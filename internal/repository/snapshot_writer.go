package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"FundScope/internal/domain/models"
)

// FileSnapshotWriter persists run artifacts (indicator list, dashboard) as
// pretty-printed JSON files under the data directory.
type FileSnapshotWriter struct {
	dir string
}

// NewFileSnapshotWriter creates a writer rooted at dir, creating it if
// needed.
func NewFileSnapshotWriter(dir string) (*FileSnapshotWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileSnapshotWriter{dir: dir}, nil
}

// WriteIndicators writes the per-fund indicator snapshots of the run.
func (w *FileSnapshotWriter) WriteIndicators(_ context.Context, snaps []models.IndicatorSnapshot) error {
	if err := writeJSONAtomic(filepath.Join(w.dir, "indicators.json"), snaps, true); err != nil {
		return fmt.Errorf("write indicators: %w", err)
	}
	return nil
}

// WriteDashboard writes the assembled dashboard of the run.
func (w *FileSnapshotWriter) WriteDashboard(_ context.Context, d *models.Dashboard) error {
	if err := writeJSONAtomic(filepath.Join(w.dir, "dashboard.json"), d, true); err != nil {
		return fmt.Errorf("write dashboard: %w", err)
	}
	return nil
}

// writeJSONAtomic writes v to path via a temp file + rename so a crashed
// run never leaves a half-written artifact.
func writeJSONAtomic(path string, v interface{}, indent bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
