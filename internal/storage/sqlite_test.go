package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/freckers/internal/core"
	"github.com/vovakirdan/freckers/internal/search"
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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i, turns := range []int{9, 7, 8} {
		_, runID, err := store.SaveRun(Run{
			BoardID:   "b01",
			Heuristic: "adaptive",
			Found:     true,
			Turns:     turns,
			Expanded:  10 + i,
			Moves:     "MOVE (0,3) Down",
			Duration:  1500 * time.Microsecond,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if runID == "" {
			t.Error("expected generated run ID")
		}
	}

	// Different board
	if _, _, err := store.SaveRun(Run{BoardID: "b02", Heuristic: "zero", Turns: -1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("b01", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Turns != 8 || runs[2].Turns != 9 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if !runs[0].Found || runs[0].Heuristic != "adaptive" {
		t.Errorf("Unexpected run contents: %+v", runs[0])
	}
	if runs[0].Duration != time.Millisecond {
		t.Errorf("Expected duration truncated to 1ms, got %v", runs[0].Duration)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{BoardID: "test", Heuristic: "rows", Found: true, Turns: i})
	}

	runs, err := store.RecentRuns("test", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("b01")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best run for empty board, got %+v", best)
	}

	store.SaveRun(Run{BoardID: "b01", Heuristic: "adaptive", Found: true, Turns: 9})
	store.SaveRun(Run{BoardID: "b01", Heuristic: "zero", Found: true, Turns: 7})
	store.SaveRun(Run{BoardID: "b01", Heuristic: "rows", Found: false, Turns: -1})

	best, err = store.BestRun("b01")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Turns != 7 || best.Heuristic != "zero" {
		t.Errorf("Expected best run with 7 turns, got %+v", best)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	_, runID, err := store.SaveRun(Run{RunID: "fixed-id", BoardID: "b01", Heuristic: "zero", Found: true, Turns: 3})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if runID != "fixed-id" {
		t.Errorf("Expected provided run ID to be kept, got %q", runID)
	}

	run, err := store.RunByID("fixed-id")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Turns != 3 {
		t.Errorf("Unexpected run: %+v", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for missing run, got %+v, %v", missing, err)
	}

	// Run IDs are unique
	if _, _, err := store.SaveRun(Run{RunID: "fixed-id", BoardID: "b01", Heuristic: "zero"}); err == nil {
		t.Error("Expected error for duplicate run ID")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{BoardID: "b01", Heuristic: "zero", Found: true, Turns: 1})
	store.SaveRun(Run{BoardID: "b02", Heuristic: "zero", Found: true, Turns: 2})

	if err := store.ClearRuns("b01"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("b01", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	runs, _ = store.RecentRuns("b02", 10)
	if len(runs) != 1 {
		t.Errorf("Other board should be untouched, got %d runs", len(runs))
	}
}

func TestStoreBoardStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetBoardStats("none")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestTurns != -1 {
		t.Errorf("Unexpected stats for empty board: %+v", empty)
	}

	store.SaveRun(Run{BoardID: "b01", Heuristic: "adaptive", Found: true, Turns: 5, Expanded: 10})
	store.SaveRun(Run{BoardID: "b01", Heuristic: "zero", Found: true, Turns: 4, Expanded: 30})
	store.SaveRun(Run{BoardID: "b02", Heuristic: "zero", Found: false, Turns: -1, Expanded: 2})

	stats, err := store.GetBoardStats("b01")
	if err != nil {
		t.Fatalf("GetBoardStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Solved != 2 || stats.BestTurns != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgExpanded != 20 {
		t.Errorf("Expected average expanded 20, got %v", stats.AvgExpanded)
	}

	all, err := store.GetAllBoardStats()
	if err != nil {
		t.Fatalf("GetAllBoardStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 boards, got %d", len(all))
	}
	if all["b02"].Solved != 0 || all["b02"].BestTurns != -1 {
		t.Errorf("Unexpected stats for unsolved board: %+v", all["b02"])
	}
}

func TestRunFromResult(t *testing.T) {
	res := search.Result{
		Found:     true,
		Expanded:  3,
		Heuristic: "zero",
		Moves: []core.Move{
			{From: core.Coord{R: 0, C: 0}, Dirs: []core.Dir{core.DirDown}},
			{From: core.Coord{R: 1, C: 0}, Dirs: []core.Dir{core.DirDown, core.DirRight}},
		},
	}

	run := RunFromResult("b01", res, 5*time.Millisecond)
	if run.BoardID != "b01" || run.Heuristic != "zero" || !run.Found {
		t.Errorf("Unexpected run: %+v", run)
	}
	if run.Turns != 2 || run.Expanded != 3 {
		t.Errorf("Expected 2 turns and 3 expanded, got %d and %d", run.Turns, run.Expanded)
	}
	want := "MOVE (0,0) Down\nMOVE (1,0) Down,Right"
	if run.Moves != want {
		t.Errorf("Moves = %q, want %q", run.Moves, want)
	}

	unsolved := RunFromResult("b02", search.Result{Heuristic: "adaptive"}, 0)
	if unsolved.Found || unsolved.Turns != -1 || unsolved.Moves != "" {
		t.Errorf("Unexpected unsolved run: %+v", unsolved)
	}
}
