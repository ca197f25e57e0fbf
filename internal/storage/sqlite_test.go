package storage

import (
	"errors"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "champions.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "champions.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Records("ana").Put("PlayerProgress", []byte(`{"xp_points":30}`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.Records("ana").Get("PlayerProgress")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != `{"xp_points":30}` {
		t.Errorf("Get() = %s, expected stored JSON", got)
	}
}

func TestRecordsGetPut(t *testing.T) {
	store := openTestStore(t)
	ana := store.Records("ana")
	ben := store.Records("ben")

	if _, err := ana.Get("PlayerProgress"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, expected ErrNotFound", err)
	}

	if err := ana.Put("PlayerProgress", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := ana.Put("PlayerProgress", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("second Put() failed: %v", err)
	}

	got, err := ana.Get("PlayerProgress")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Get() = %s, expected the latest value", got)
	}

	if _, err := ben.Get("PlayerProgress"); !errors.Is(err, ErrNotFound) {
		t.Errorf("profiles should not share records, got err = %v", err)
	}
	if ana.Profile() != "ana" {
		t.Errorf("Profile() = %q, expected ana", ana.Profile())
	}
}

func TestStoreProfiles(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"zoe", "ana", "zoe"} {
		if err := store.Records(p).Put("StackDropProgress", []byte(`{}`)); err != nil {
			t.Fatalf("Put() failed: %v", err)
		}
	}

	profiles, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	if len(profiles) != 2 || profiles[0] != "ana" || profiles[1] != "zoe" {
		t.Errorf("Profiles() = %v, expected [ana zoe]", profiles)
	}
}

func TestScores(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		profile string
		game    string
		score   int
	}{
		{"ana", "stackdrop", 12},
		{"ana", "stackdrop", 30},
		{"ben", "stackdrop", 21},
		{"ana", "tapperfect", 80},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.profile, s.game, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := store.TopScores("stackdrop", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopScores() returned %d entries, expected 2", len(top))
	}
	if top[0].Score != 30 || top[0].Profile != "ana" || top[1].Score != 21 {
		t.Errorf("TopScores() = %+v, expected 30 by ana then 21", top)
	}

	high, err := store.HighScore("ben", "stackdrop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 21 {
		t.Errorf("HighScore(ben) = %d, expected 21", high)
	}

	high, err = store.HighScore("ben", "tapperfect")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() with no rows = %d, expected 0", high)
	}
}

func TestProfileStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ana", "stackdrop", 10) //nolint:errcheck
	store.SaveScore("ana", "stackdrop", 20) //nolint:errcheck
	store.SaveScore("ben", "stackdrop", 99) //nolint:errcheck

	stats, err := store.ProfileStats("ana")
	if err != nil {
		t.Fatalf("ProfileStats() failed: %v", err)
	}

	gs, ok := stats["stackdrop"]
	if !ok {
		t.Fatal("ProfileStats() missing stackdrop")
	}
	if gs.GamesCount != 2 || gs.HighScore != 20 || gs.AvgScore != 15 {
		t.Errorf("stats = %+v, expected 2 games, high 20, avg 15", gs)
	}
	if gs.LastPlayed.IsZero() {
		t.Error("LastPlayed should be parsed")
	}
}

func TestMemoryRecords(t *testing.T) {
	m := NewMemoryRecords()

	if _, err := m.Get("x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() error = %v, expected ErrNotFound", err)
	}

	value := []byte("abc")
	if err := m.Put("x", value); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	value[0] = 'z'

	got, _ := m.Get("x")
	if string(got) != "abc" {
		t.Errorf("Get() = %s, stored value should not alias the caller's slice", got)
	}
}
