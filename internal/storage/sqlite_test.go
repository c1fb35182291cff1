package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveResultAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(Result{Variant: "classic", Seed: 42, Won: true, Moves: 87, Duration: 95 * time.Second})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("ID %q is not a UUID: %v", id, err)
	}

	got, err := store.ResultByID(id)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved result not found")
	}
	if got.Variant != "classic" || got.Seed != 42 || !got.Won || got.Moves != 87 {
		t.Errorf("unexpected result %+v", got)
	}
	if got.Duration != 95*time.Second {
		t.Errorf("Duration = %v, want 1m35s", got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.ResultByID("nope")
	if err != nil || missing != nil {
		t.Errorf("ResultByID(nope) = %v, %v; want nil, nil", missing, err)
	}
}

func TestSaveResultRequiresVariant(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(Result{Moves: 3}); err == nil {
		t.Error("expected error for result without variant")
	}
}

func TestRecentResults(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, v := range []string{"classic", "small", "classic"} {
		_, err := store.SaveResult(Result{Variant: v, Seed: int64(i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	all, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(all))
	}
	if all[0].Seed != 2 || all[2].Seed != 0 {
		t.Errorf("results not newest first: %d, %d, %d", all[0].Seed, all[1].Seed, all[2].Seed)
	}
	if !all[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("CreatedAt = %v", all[0].CreatedAt)
	}

	classic, err := store.RecentResults("classic", 1)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(classic) != 1 || classic[0].Seed != 2 {
		t.Errorf("unexpected classic results %+v", classic)
	}
}

func TestBestResults(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Variant: "classic", Won: true, Moves: 120, Duration: 60 * time.Second},
		{Variant: "classic", Won: false, Moves: 10},
		{Variant: "classic", Won: true, Moves: 90, Duration: 300 * time.Second},
		{Variant: "classic", Won: true, Moves: 90, Duration: 200 * time.Second},
		{Variant: "large", Won: true, Moves: 5},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestResults("classic", 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 won games, got %d", len(best))
	}

	wantMoves := []int{90, 90, 120}
	for i, r := range best {
		if r.Moves != wantMoves[i] {
			t.Errorf("best[%d].Moves = %d, want %d", i, r.Moves, wantMoves[i])
		}
	}
	if best[0].Duration != 200*time.Second {
		t.Errorf("tie should break on duration, got %v", best[0].Duration)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Played != 0 || empty.WinRate() != 0 {
		t.Errorf("expected empty stats, got %+v", empty)
	}

	store.SaveResult(Result{Variant: "classic", Won: true, Moves: 100, Duration: 80 * time.Second})
	store.SaveResult(Result{Variant: "classic", Won: false, Moves: 40, Duration: 20 * time.Second})
	store.SaveResult(Result{Variant: "classic", Won: true, Moves: 70, Duration: 120 * time.Second})
	store.SaveResult(Result{Variant: "small", Won: false, Moves: 3})

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 3 || stats.Won != 2 {
		t.Errorf("Played/Won = %d/%d, want 3/2", stats.Played, stats.Won)
	}
	if stats.BestMoves != 70 {
		t.Errorf("BestMoves = %d, want 70", stats.BestMoves)
	}
	if stats.Fastest != 80*time.Second {
		t.Errorf("Fastest = %v, want 1m20s", stats.Fastest)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(all))
	}
	if small := all["small"]; small.Won != 0 || small.BestMoves != 0 {
		t.Errorf("unexpected small stats %+v", small)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Variant: "classic", Won: true})
	store.SaveResult(Result{Variant: "small", Won: true})

	if err := store.ClearResults("classic"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	classic, _ := store.RecentResults("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic results after clear, got %d", len(classic))
	}
	small, _ := store.RecentResults("small", 10)
	if len(small) != 1 {
		t.Errorf("Expected 1 small result, got %d", len(small))
	}
}

func TestPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store1.SaveResult(Result{Variant: "classic", Seed: 7, Won: true, Moves: 50})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	got, err := store2.ResultByID(id)
	if err != nil || got == nil {
		t.Fatalf("result did not persist: %v", err)
	}
	if got.Seed != 7 {
		t.Errorf("Seed = %d, want 7", got.Seed)
	}
}
