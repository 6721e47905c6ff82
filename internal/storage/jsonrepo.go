package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/olgkv/taskboard/internal/ports"
)

// FileLocalStorage keeps all entries in one JSON object file, entry name to raw value.
type FileLocalStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileLocalStorage(path string) *FileLocalStorage {
	return &FileLocalStorage{path: path}
}

func (r *FileLocalStorage) GetItem(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readLocked()
	if err != nil {
		return "", err
	}
	v, ok := entries[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return v, nil
}

func (r *FileLocalStorage) SetItem(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readLocked()
	if err != nil {
		// a corrupt file is replaced rather than blocking every write
		entries = make(map[string]string)
	}
	entries[key] = value
	return r.writeLocked(entries)
}

func (r *FileLocalStorage) readLocked() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return entries, nil
}

func (r *FileLocalStorage) writeLocked(entries map[string]string) error {
	tmp := r.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
