// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOnStateChange(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(statePath, []byte(`{}`), 0o644))

	changed := make(chan struct{}, 8)
	w, err := NewWatcher(statePath, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	defer w.Close()

	// Give the watcher a moment to arm before mutating the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(statePath, []byte(`{"k":"v"}`), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the state file change")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(statePath, []byte(`{}`), 0o644))

	changed := make(chan struct{}, 8)
	w, err := NewWatcher(statePath, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	defer w.Close()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-changed:
		t.Fatal("unrelated file must not trigger the watcher")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseStopsCallbacks(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(statePath, []byte(`{}`), 0o644))

	changed := make(chan struct{}, 8)
	w, err := NewWatcher(statePath, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, os.WriteFile(statePath, []byte(`{"k":"v"}`), 0o644))
	select {
	case <-changed:
		t.Fatal("closed watcher must not fire")
	case <-time.After(300 * time.Millisecond):
	}
}
