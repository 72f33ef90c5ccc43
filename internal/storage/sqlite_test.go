package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	// Save some scores
	for _, score := range []int{14, 7, 28} {
		if _, err := store.SaveScore("shisen", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different variant
	if _, err := store.SaveScore("shisen_mini", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("shisen", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 28 || scores[1].Score != 14 || scores[2].Score != 7 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	miniScores, err := store.TopScores("shisen_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(miniScores) != 1 {
		t.Errorf("Expected 1 shisen_mini score, got %d", len(miniScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("shisen", (i+1)*10)
	}

	// Request only top 3
	scores, err := store.TopScores("shisen", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("shisen")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("shisen", 10)
	store.SaveScore("shisen", 28)
	store.SaveScore("shisen", 20)

	high, err = store.HighScore("shisen")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 28 {
		t.Errorf("Expected high score of 28, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shisen", 10)
	store.SaveScore("shisen", 20)
	store.SaveScore("shisen_large", 30)

	err := store.ClearScores("shisen")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("shisen", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 shisen scores after clear, got %d", len(scores))
	}

	// Other variants should not be affected
	largeScores, _ := store.TopScores("shisen_large", 10)
	if len(largeScores) != 1 {
		t.Errorf("shisen_large scores should not be affected by clearing shisen")
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult("shisen", ResultClear, 28, 312); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("shisen", ResultStuck, 19, 145); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Invalid result values are rejected
	if _, err := store.SaveResult("shisen", "won", 28, 312); err == nil {
		t.Error("SaveResult() should reject unknown result values")
	}

	results, err := store.RecentResults("shisen", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Most recent first
	if results[0].Result != ResultStuck || results[0].Pairs != 19 {
		t.Errorf("Unexpected first result: %+v", results[0])
	}
	if results[1].Result != ResultClear || results[1].DurationSecs != 312 {
		t.Errorf("Unexpected second result: %+v", results[1])
	}
}

func TestStoreBestClearTime(t *testing.T) {
	store := openTestStore(t)

	// No clears yet
	_, ok, err := store.BestClearTime("shisen")
	if err != nil {
		t.Fatalf("BestClearTime() failed: %v", err)
	}
	if ok {
		t.Error("BestClearTime() should report no clear yet")
	}

	store.SaveResult("shisen", ResultClear, 28, 312)
	store.SaveResult("shisen", ResultClear, 28, 201)
	store.SaveResult("shisen", ResultStuck, 10, 30)
	store.SaveResult("shisen_mini", ResultClear, 12, 95)

	secs, ok, err := store.BestClearTime("shisen")
	if err != nil {
		t.Fatalf("BestClearTime() failed: %v", err)
	}
	if !ok || secs != 201 {
		t.Errorf("BestClearTime() = %d/%v, want 201/true", secs, ok)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shisen", 28)
	store.SaveScore("shisen", 19)
	store.SaveResult("shisen", ResultClear, 28, 312)
	store.SaveResult("shisen", ResultStuck, 19, 145)

	stats, err := store.GetGameStats("shisen")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 28 {
		t.Errorf("HighScore = %d, want 28", stats.HighScore)
	}
	if stats.Clears != 1 {
		t.Errorf("Clears = %d, want 1", stats.Clears)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["shisen"] == nil || all["shisen"].Clears != 1 {
		t.Errorf("GetAllGamesStats() = %+v, want shisen with 1 clear", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
