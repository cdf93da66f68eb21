package store

import (
	"path/filepath"
	"testing"
)

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	if _, ok := s.Read(KeyToken); ok {
		t.Fatal("expected empty store")
	}

	if err := s.Write(KeyToken, "abc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, ok := s.Read(KeyToken)
	if !ok || v != "abc" {
		t.Fatalf("read = %q, %v; want abc, true", v, ok)
	}

	if err := s.Remove(KeyToken); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Read(KeyToken); ok {
		t.Fatal("expected key gone after remove")
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Write(KeyRole, "admin"); err != nil {
		t.Fatalf("write role: %v", err)
	}
	if err := s.Write(KeyBookingState, `{"bookingId":"b1"}`); err != nil {
		t.Fatalf("write state: %v", err)
	}
	if err := s.Remove(KeyRole); err != nil {
		t.Fatalf("remove role: %v", err)
	}

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := reopened.Read(KeyRole); ok {
		t.Fatal("removed key came back after reopen")
	}
	v, ok := reopened.Read(KeyBookingState)
	if !ok || v != `{"bookingId":"b1"}` {
		t.Fatalf("state after reopen = %q, %v", v, ok)
	}
}

func TestFileStoreRemoveMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Remove("nope"); err != nil {
		t.Fatalf("remove missing key: %v", err)
	}
}
