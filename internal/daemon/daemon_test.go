package daemon

import (
	"testing"

	"github.com/analyzeme/analyzeme/internal/infra/sqlite"
)

func TestEnsureInstallID_StableAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	first, err := ensureInstallID(db)
	if err != nil {
		t.Fatalf("ensureInstallID: %v", err)
	}
	if first == "" {
		t.Fatal("expected generated install id")
	}

	// Same handle returns the persisted id, not a new one
	again, err := ensureInstallID(db)
	if err != nil {
		t.Fatalf("ensureInstallID (repeat): %v", err)
	}
	if again != first {
		t.Errorf("install id changed within session: %q -> %q", first, again)
	}
	db.Close()

	// Survives a full reopen
	db, err = sqlite.Open(dir)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db.Close()

	after, err := ensureInstallID(db)
	if err != nil {
		t.Fatalf("ensureInstallID (reopen): %v", err)
	}
	if after != first {
		t.Errorf("install id changed across reopen: %q -> %q", first, after)
	}
}
