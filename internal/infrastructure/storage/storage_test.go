package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/taskhub/taskhub-client/internal/core/domain"
	"github.com/taskhub/taskhub-client/internal/core/ports"
)

// exerciseTier runs the KeyValue contract shared by all tiers.
func exerciseTier(t *testing.T, kv ports.KeyValue) {
	t.Helper()

	if _, err := kv.Get("token"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for missing key, got %v", err)
	}

	if err := kv.Set("token", "T1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, err := kv.Get("token")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if v != "T1" {
		t.Fatalf("expected T1, got %q", v)
	}

	// Sets are full replacements.
	if err := kv.Set("token", "T2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if v, _ := kv.Get("token"); v != "T2" {
		t.Fatalf("expected T2 after overwrite, got %q", v)
	}

	if err := kv.Remove("token"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := kv.Get("token"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after remove, got %v", err)
	}

	// Remove is idempotent.
	if err := kv.Remove("token"); err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
}

func TestMemoryTier(t *testing.T) {
	exerciseTier(t, NewMemory())
}

func TestFileTier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "store.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	exerciseTier(t, f)
}

func TestFileTierSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := f.Set("token", "persisted"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, err := reopened.Get("token")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if v != "persisted" {
		t.Fatalf("expected persisted value, got %q", v)
	}
}
