package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, h := range []int{120, 45, 310} {
		if _, err := store.SaveRun(h, "normal"); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted by height descending
	if runs[0].Height != 310 || runs[1].Height != 120 || runs[2].Height != 45 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Difficulty != "normal" {
		t.Errorf("Difficulty = %q, expected normal", runs[0].Difficulty)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun((i+1)*100, "normal")
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Height != 500 || runs[1].Height != 400 || runs[2].Height != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestHeight(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestHeight()
	if err != nil {
		t.Fatalf("BestHeight() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best height of 0 for empty store, got %d", best)
	}

	store.SaveRun(100, "normal")
	store.SaveRun(300, "hard")
	store.SaveRun(200, "normal")

	best, err = store.BestHeight()
	if err != nil {
		t.Fatalf("BestHeight() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best height of 300, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(100, "normal")
	store.SaveRun(200, "normal")

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty store: zero stats, no error
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestHeight != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(100, "normal")
	store.SaveRun(200, "normal")
	store.SaveRun(300, "hard")

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, expected 3", stats.RunsCount)
	}
	if stats.BestHeight != 300 {
		t.Errorf("BestHeight = %d, expected 300", stats.BestHeight)
	}
	if stats.AvgHeight != 200 {
		t.Errorf("AvgHeight = %v, expected 200", stats.AvgHeight)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set after saving runs")
	}
}

func TestStoreDefaultDifficulty(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(50, "")

	runs, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Difficulty != "normal" {
		t.Errorf("Empty difficulty should default to normal, got %v", runs)
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
