// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the persistence side-channel for parley.
package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	"github.com/parleychat/parley-tui/internal/util"
)

// Fixed namespaced keys. Values live in a single JSON state file; every write
// re-serializes the whole value under its key (full overwrite, never
// incremental).
const (
	// KeyConversations holds the serialized conversation collection.
	KeyConversations = "parley.conversations.v1"
	// KeyTheme holds the persisted theme preference, "dark" or "light".
	KeyTheme = "parley.theme.v1"
)

// =============================================================================
// KV STORE
// =============================================================================

// KV is a file-backed key-value store: a flat JSON object mapping namespaced
// keys to raw JSON values. Reads are served from memory; every Set rewrites
// the whole file atomically.
//
// A missing or malformed file degrades to an empty store. Persistence is a
// best-effort side effect; it never blocks or fails a mutation.
type KV struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
	// last holds the bytes most recently read from or flushed to disk, so a
	// watcher event caused by our own write can be told apart from a real
	// external change.
	last []byte
}

// Open loads the state file at path. A file that is absent or does not parse
// yields an empty store and a nil error; the parse failure is reported so the
// caller can log it.
func Open(path string) (*KV, error) {
	kv := &KV{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return kv, err
	}
	if err := json.Unmarshal(raw, &kv.data); err != nil {
		// Corrupted state file: discard and start fresh. The next Set
		// overwrites it with a valid snapshot.
		kv.data = make(map[string]json.RawMessage)
		return kv, &CorruptStateError{Path: path, Err: err}
	}
	kv.last = raw
	return kv, nil
}

// Path returns the backing file path.
func (kv *KV) Path() string {
	return kv.path
}

// Get returns the raw value stored under key.
func (kv *KV) Get(key string) (json.RawMessage, bool) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	return v, ok
}

// Set stores value under key and rewrites the state file.
func (kv *KV) Set(key string, value json.RawMessage) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return kv.flushLocked()
}

// SetJSON marshals v and stores it under key.
func (kv *KV) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, raw)
}

// GetJSON unmarshals the value under key into v. Returns false when the key
// is absent; a malformed value is reported as an error.
func (kv *KV) GetJSON(key string, v any) (bool, error) {
	raw, ok := kv.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// Reload replaces the in-memory map with the current file contents. Used when
// the state file changed underneath us (another process or a manual edit).
func (kv *KV) Reload() error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	raw, err := os.ReadFile(kv.path)
	if err != nil {
		if os.IsNotExist(err) {
			kv.data = make(map[string]json.RawMessage)
			return nil
		}
		return err
	}
	fresh := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fresh); err != nil {
		return &CorruptStateError{Path: kv.path, Err: err}
	}
	kv.data = fresh
	kv.last = raw
	return nil
}

// ReloadIfChanged reloads only when the file differs from what this process
// last read or wrote. Watching the state file sees our own atomic renames
// too; those must not trigger a reload.
func (kv *KV) ReloadIfChanged() (bool, error) {
	kv.mu.Lock()
	raw, err := os.ReadFile(kv.path)
	if err == nil && bytes.Equal(raw, kv.last) {
		kv.mu.Unlock()
		return false, nil
	}
	kv.mu.Unlock()

	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	return true, kv.Reload()
}

// flushLocked serializes the whole map and writes it atomically. Caller holds
// kv.mu.
func (kv *KV) flushLocked() error {
	raw, err := json.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(kv.path, raw, 0o644); err != nil {
		return err
	}
	kv.last = raw
	return nil
}

// =============================================================================
// ERRORS
// =============================================================================

// CorruptStateError reports a state file that exists but does not parse.
// The store recovers by reinitializing; the error only feeds the log.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return "corrupt state file " + e.Path + ": " + e.Err.Error()
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}
