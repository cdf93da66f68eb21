// Package store provides durable key-value storage for the client
// session and state slices, surviving process restarts.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys. The session keys are written and cleared together;
// the state keys are owned by the state package.
const (
	KeyToken          = "token"
	KeyRole           = "role"
	KeyResidentStatus = "residentStatus"
	KeyBookingState   = "state:booking"
	KeyResidentState  = "state:resident"
)

// Store is pure storage. No validation happens at this layer.
type Store interface {
	Write(key, value string) error
	Read(key string) (string, bool)
	Remove(key string) error
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemStore) Read(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStore persists keys as a single JSON document. The file is read
// once at open; every write rewrites it via an atomic rename so a
// crash mid-write never leaves a torn file behind.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("open store file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &fs.values); err != nil {
			return nil, fmt.Errorf("decode store file: %w", err)
		}
	}
	return fs, nil
}

func (f *FileStore) Write(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flushLocked()
}

func (f *FileStore) Read(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flushLocked()
}

func (f *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".store-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
