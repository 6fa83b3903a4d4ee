package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundScope/internal/domain/models"
)

func obs(date string, nav float64) models.Observation {
	return models.Observation{Date: date, NAV: nav}
}

func TestMerge_SortsAndDeduplicates(t *testing.T) {
	store := NewFileSeriesStore(t.TempDir())

	batch := []models.Observation{
		obs("2024-03-01", 1.30),
		obs("2024-01-01", 1.10),
		obs("2024-02-01", 1.20),
		obs("2024-01-01", 1.11), // later entry for the same date wins
	}

	series := store.Merge("PGF", batch)
	require.Len(t, series, 3)
	assert.Equal(t, obs("2024-01-01", 1.11), series[0])
	assert.Equal(t, obs("2024-02-01", 1.20), series[1])
	assert.Equal(t, obs("2024-03-01", 1.30), series[2])
}

func TestMerge_Idempotent(t *testing.T) {
	store := NewFileSeriesStore(t.TempDir())

	batch := []models.Observation{
		obs("2024-01-02", 1.2),
		obs("2024-01-01", 1.1),
	}

	once := store.Merge("PGF", batch)
	twice := store.Merge("PGF", batch)
	assert.Equal(t, once, twice)
}

func TestMerge_OverwritesExistingDate(t *testing.T) {
	store := NewFileSeriesStore(t.TempDir())

	store.Merge("PGF", []models.Observation{obs("2024-01-01", 1.0)})
	series := store.Merge("PGF", []models.Observation{obs("2024-01-01", 2.0)})

	require.Len(t, series, 1)
	assert.Equal(t, 2.0, series[0].NAV)
}

func TestMerge_EmptyBatchIsNoOp(t *testing.T) {
	store := NewFileSeriesStore(t.TempDir())

	existing := store.Merge("PGF", []models.Observation{obs("2024-01-01", 1.0)})
	after := store.Merge("PGF", nil)
	assert.Equal(t, existing, after)

	assert.Empty(t, store.Merge("UNKNOWN", nil))
}

func TestMerge_ExtendsExistingHistory(t *testing.T) {
	store := NewFileSeriesStore(t.TempDir())

	store.Merge("PGF", []models.Observation{obs("2024-01-01", 1.0), obs("2024-01-02", 1.1)})
	series := store.Merge("PGF", []models.Observation{obs("2024-01-03", 1.2)})

	require.Len(t, series, 3, "history is never truncated")
	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, "2024-01-03", series[2].Date)
}

func TestFlushAndLoad_Roundtrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store := NewFileSeriesStore(dir)
	store.Merge("PGF", []models.Observation{obs("2024-01-01", 1.0), obs("2024-01-02", 1.1)})
	store.Merge("PIF", []models.Observation{obs("2024-01-01", 2.0)})
	require.NoError(t, store.Flush(ctx))

	reloaded := NewFileSeriesStore(dir)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, store.Series("PGF"), reloaded.Series("PGF"))
	assert.Equal(t, store.Series("PIF"), reloaded.Series("PIF"))
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	store := NewFileSeriesStore(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.Series("PGF"))
}

func TestSnapshotWriter_WritesArtifacts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	w, err := NewFileSnapshotWriter(dir)
	require.NoError(t, err)

	require.NoError(t, w.WriteIndicators(ctx, []models.IndicatorSnapshot{{FundCode: "PGF"}}))
	require.NoError(t, w.WriteDashboard(ctx, &models.Dashboard{TotalFunds: 1}))

	assert.FileExists(t, filepath.Join(dir, "indicators.json"))
	assert.FileExists(t, filepath.Join(dir, "dashboard.json"))
}
