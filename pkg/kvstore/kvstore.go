// Package kvstore provides the string key-value persistence surface the rest
// of the app reads and writes through. It mirrors browser localStorage:
// synchronous, string-keyed, best-effort.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KV is the storage capability handed to the stores. A missing key is not an
// error; callers treat absence as "no data".
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// File is a KV backed by a single JSON object file. The whole map is rewritten
// on every Set/Remove, matching the snapshot-replacement persistence model.
type File struct {
	path string
	data map[string]string
}

// NewFile opens (or initializes) the state file under dir. A malformed or
// unreadable file is treated as empty rather than failing startup.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	f := &File{
		path: filepath.Join(dir, "state.json"),
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return f, nil
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		// Corrupt state file — discard and start fresh.
		return f, nil
	}
	f.data = data
	return f, nil
}

// Path returns the location of the backing file, for change watchers.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.data[key] = value
	return f.flush()
}

func (f *File) Remove(key string) error {
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

// Reload re-reads the backing file, picking up writes made by another
// process. Parse failures leave the in-memory state untouched.
func (f *File) Reload() {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return
	}
	f.data = data
}

func (f *File) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	return os.WriteFile(f.path, raw, 0644)
}

// Memory is an in-memory KV used by tests and fakes.
type Memory struct {
	data map[string]string
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	delete(m.data, key)
	return nil
}
