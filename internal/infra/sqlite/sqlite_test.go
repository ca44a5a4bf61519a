package sqlite

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Database Lifecycle ─────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "state.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}

func TestOpen_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	db.Close()
}

func TestOpen_Reopenable(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open(): %v", err)
	}
	if err := db.SetProgression("record", `{"v":1}`, 100); err != nil {
		t.Fatalf("SetProgression: %v", err)
	}
	db.Close()

	// Migrations are idempotent; data survives reopen
	db, err = Open(dir)
	if err != nil {
		t.Fatalf("second Open(): %v", err)
	}
	defer db.Close()

	got, err := db.GetProgression("record")
	if err != nil {
		t.Fatalf("GetProgression: %v", err)
	}
	if got != `{"v":1}` {
		t.Errorf("value = %q", got)
	}
}

// ─── Progression Documents ──────────────────────────────────────────────────

func TestProgression_GetMissingKey(t *testing.T) {
	db := newTestDB(t)

	got, err := db.GetProgression("nope")
	if err != nil {
		t.Fatalf("GetProgression: %v", err)
	}
	if got != "" {
		t.Errorf("missing key should return empty string, got %q", got)
	}
}

func TestProgression_Upsert(t *testing.T) {
	db := newTestDB(t)

	if err := db.SetProgression("record", "one", 1); err != nil {
		t.Fatalf("SetProgression: %v", err)
	}
	if err := db.SetProgression("record", "two", 2); err != nil {
		t.Fatalf("SetProgression (update): %v", err)
	}

	got, err := db.GetProgression("record")
	if err != nil {
		t.Fatalf("GetProgression: %v", err)
	}
	if got != "two" {
		t.Errorf("value = %q, want %q", got, "two")
	}
}

// ─── App Info ───────────────────────────────────────────────────────────────

func TestAppInfo_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	if err := db.SetAppInfo("install_id", "abc"); err != nil {
		t.Fatalf("SetAppInfo: %v", err)
	}
	got, err := db.GetAppInfo("install_id")
	if err != nil {
		t.Fatalf("GetAppInfo: %v", err)
	}
	if got != "abc" {
		t.Errorf("value = %q", got)
	}

	if got, _ := db.GetAppInfo("missing"); got != "" {
		t.Errorf("missing key should return empty string, got %q", got)
	}
}
