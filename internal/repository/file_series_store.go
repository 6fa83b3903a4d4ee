package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"FundScope/internal/domain/models"
)

// FileSeriesStore keeps every fund's full NAV history in a single flat JSON
// mapping (fund code -> observations). History is never truncated: the file
// is read at startup and rewritten after each run, so the series outlives
// any single provider outage.
type FileSeriesStore struct {
	path   string
	series map[string]models.Series
}

// NewFileSeriesStore creates a store backed by dir/nav_history.json.
func NewFileSeriesStore(dir string) *FileSeriesStore {
	return &FileSeriesStore{
		path:   filepath.Join(dir, "nav_history.json"),
		series: make(map[string]models.Series),
	}
}

// Load reads the history file. A missing file is an empty store, not an
// error.
func (s *FileSeriesStore) Load(_ context.Context) error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read nav history: %w", err)
	}
	if err := json.Unmarshal(b, &s.series); err != nil {
		return fmt.Errorf("parse nav history: %w", err)
	}
	return nil
}

// Series returns the stored history for a fund, empty if none.
func (s *FileSeriesStore) Series(fundCode string) models.Series {
	return s.series[fundCode]
}

// Merge folds a batch of observations into the fund's history. Last write
// wins per date, the result is re-sorted ascending, and merging the same
// batch twice yields the same series as merging it once. An empty batch
// returns the existing series unchanged.
func (s *FileSeriesStore) Merge(fundCode string, batch []models.Observation) models.Series {
	if len(batch) == 0 {
		return s.series[fundCode]
	}

	byDate := make(map[string]float64, len(s.series[fundCode])+len(batch))
	for _, o := range s.series[fundCode] {
		byDate[o.Date] = o.NAV
	}
	for _, o := range batch {
		byDate[o.Date] = o.NAV
	}

	merged := make(models.Series, 0, len(byDate))
	for date, nav := range byDate {
		merged = append(merged, models.Observation{Date: date, NAV: nav})
	}
	// ISO dates sort chronologically as strings.
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })

	s.series[fundCode] = merged
	return merged
}

// Flush writes the full history mapping back to disk.
func (s *FileSeriesStore) Flush(_ context.Context) error {
	if err := writeJSONAtomic(s.path, s.series, false); err != nil {
		return fmt.Errorf("write nav history: %w", err)
	}
	return nil
}
