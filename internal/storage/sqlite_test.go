package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	games := []GameRecord{
		{Score: 100, MaxScore: 100, BestTile: 64},
		{Score: 50, MaxScore: 100, BestTile: 32},
		{Score: 200, MaxScore: 200, BestTile: 128},
	}
	for _, rec := range games {
		if _, err := store.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	top, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}

	// Should be sorted descending by score
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Games not in expected order: %v", top)
	}
	if top[0].BestTile != 128 {
		t.Errorf("Expected best tile 128 on top game, got %d", top[0].BestTile)
	}
}

func TestStoreTopGamesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveGame(GameRecord{Score: (i + 1) * 100, MaxScore: (i + 1) * 100, BestTile: 16})
	}

	top, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 games with limit, got %d", len(top))
	}

	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Games not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No games yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 with no games, got %d", high)
	}

	store.SaveGame(GameRecord{Score: 300, MaxScore: 300, BestTile: 256})
	store.SaveGame(GameRecord{Score: 700, MaxScore: 700, BestTile: 512})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected high score 700, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveGame(GameRecord{Score: 100, MaxScore: 100, BestTile: 64})
	store.SaveGame(GameRecord{Score: 20000, MaxScore: 20000, BestTile: 2048, Won: true})

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.HighScore != 20000 {
		t.Errorf("HighScore = %d, want 20000", stats.HighScore)
	}
	if stats.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", stats.BestTile)
	}
}

func TestStoreClearGames(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveGame(GameRecord{Score: 100, MaxScore: 100, BestTile: 64})

	if err := store.ClearGames(); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	top, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no games after clear, got %d", len(top))
	}
}
