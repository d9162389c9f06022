package alerts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safety-dashboard-go/internal/models"
)

func makeAlert(id string) models.Alert {
	return models.Alert{
		ID:       id,
		Severity: string(models.AlertSeverityMedium),
		Status:   models.AlertStatusActive,
	}
}

func TestStoreInsertNewestFirst(t *testing.T) {
	store := NewStore(10)

	store.Insert(makeAlert("a"))
	store.Insert(makeAlert("b"))
	store.Insert(makeAlert("c"))

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "c", snapshot[0].ID)
	assert.Equal(t, "b", snapshot[1].ID)
	assert.Equal(t, "a", snapshot[2].ID)
}

func TestStoreEvictsOldestAtCapacity(t *testing.T) {
	store := NewStore(3)

	for i := 0; i < 5; i++ {
		store.Insert(makeAlert(fmt.Sprintf("alert-%d", i)))
	}

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "alert-4", snapshot[0].ID)
	assert.Equal(t, "alert-2", snapshot[2].ID)

	_, found := store.FindActiveByID("alert-0")
	assert.False(t, found, "oldest alert should have been evicted")
}

func TestStoreNeverExceedsCapacity(t *testing.T) {
	store := NewStore(100)

	for i := 0; i < 250; i++ {
		store.Insert(makeAlert(fmt.Sprintf("alert-%d", i)))
	}

	assert.Equal(t, 100, store.Len())
}

func TestStoreFindActiveByID(t *testing.T) {
	store := NewStore(10)
	store.Insert(makeAlert("x"))

	alert, found := store.FindActiveByID("x")
	require.True(t, found)
	assert.Equal(t, "x", alert.ID)

	_, found = store.FindActiveByID("missing")
	assert.False(t, found)
}

func TestStoreFindActiveSkipsResolved(t *testing.T) {
	store := NewStore(10)
	store.Insert(makeAlert("x"))

	_, ok := store.ResolveActive("x", "2026-01-01T00:00:00Z")
	require.True(t, ok)

	_, found := store.FindActiveByID("x")
	assert.False(t, found, "resolved alerts must not be returned as active")
}

func TestStoreResolveActive(t *testing.T) {
	store := NewStore(10)
	store.Insert(makeAlert("x"))

	resolved, ok := store.ResolveActive("x", "2026-01-01T00:00:00Z")
	require.True(t, ok)
	assert.Equal(t, models.AlertStatusResolved, resolved.Status)
	assert.Equal(t, "2026-01-01T00:00:00Z", resolved.ResolvedAt)

	// Second resolution of the same id fails
	_, ok = store.ResolveActive("x", "2026-01-01T00:00:01Z")
	assert.False(t, ok)

	// The stored record keeps the first resolution timestamp
	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "2026-01-01T00:00:00Z", snapshot[0].ResolvedAt)
}

func TestStoreOrderingSurvivesResolution(t *testing.T) {
	store := NewStore(10)
	store.Insert(makeAlert("a"))
	store.Insert(makeAlert("b"))

	_, ok := store.ResolveActive("a", "2026-01-01T00:00:00Z")
	require.True(t, ok)

	store.Insert(makeAlert("c"))

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "c", snapshot[0].ID)
	assert.Equal(t, "b", snapshot[1].ID)
	assert.Equal(t, "a", snapshot[2].ID)
}

func TestStoreClear(t *testing.T) {
	store := NewStore(10)
	store.Insert(makeAlert("a"))
	store.Insert(makeAlert("b"))

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Snapshot())
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore(10)
	store.Insert(makeAlert("a"))

	snapshot := store.Snapshot()
	snapshot[0].Status = models.AlertStatusResolved

	alert, found := store.FindActiveByID("a")
	require.True(t, found)
	assert.Equal(t, models.AlertStatusActive, alert.Status, "mutating a snapshot must not touch the store")
}
