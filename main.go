// parley TUI - a terminal chat mockup with canned assistant replies.
//
// Copyright (c) 2025 Parley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parleychat/parley-tui/internal/config"
	"github.com/parleychat/parley-tui/internal/logging"
	"github.com/parleychat/parley-tui/internal/model"
	"github.com/parleychat/parley-tui/internal/storage"
	"github.com/parleychat/parley-tui/internal/store"
	"github.com/parleychat/parley-tui/internal/ui/chat"
	"github.com/parleychat/parley-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		configPath  = flag.String("config", "", "path to config.toml")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("parley %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "parley:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.SetGlobal(cfg)

	stateDir, err := cfg.StateDir()
	if err != nil {
		return fmt.Errorf("resolve state dir: %w", err)
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := logging.Init(stateDir, cfg.Log.Level); err != nil {
		// Run without a log file rather than refuse to start.
		fmt.Fprintln(os.Stderr, "parley: logging disabled:", err)
	}
	defer logging.Close()

	// State file. A corrupt file means a fresh start, never a crash.
	statePath := filepath.Join(stateDir, "state.json")
	kv, err := storage.Open(statePath)
	if err != nil {
		var corrupt *storage.CorruptStateError
		if !errors.As(err, &corrupt) {
			return fmt.Errorf("open state: %w", err)
		}
		logging.L().Warn().Err(err).Msg("state file corrupt, starting fresh")
	}

	conversations, err := storage.LoadConversations(kv)
	if err != nil {
		logging.L().Warn().Err(err).Msg("stored conversations unreadable, starting fresh")
		conversations = nil
	}

	st := store.New(store.Options{
		ReplyText: cfg.Reply.Text,
		MinDelay:  time.Duration(cfg.Reply.MinDelayMs) * time.Millisecond,
		MaxDelay:  time.Duration(cfg.Reply.MaxDelayMs) * time.Millisecond,
		Snapshot:  snapshotter{kv},
	}, conversations)
	defer st.Close()

	chatModel := chat.New(chat.Options{
		Store:       st,
		KV:          kv,
		ExportDir:   stateDir,
		Mode:        resolveMode(kv, cfg),
		ShowSidebar: cfg.UI.Sidebar,
	})

	p := tea.NewProgram(chatModel, tea.WithAltScreen())

	// Reply timers fire off the update loop; push a notification into the
	// program so the view re-reads the store.
	st.SetNotify(func() {
		p.Send(chat.StoreChangedMsg{})
	})

	var watcher *storage.Watcher
	if cfg.Storage.WatchState {
		watcher, err = storage.NewWatcher(statePath, func() {
			p.Send(chat.StateFileChangedMsg{})
		})
		if err != nil {
			logging.L().Warn().Err(err).Msg("state file watching unavailable")
		} else {
			defer watcher.Close()
		}
	}

	logging.L().Info().Str("version", Version).Str("state", statePath).Msg("parley starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// resolveMode picks the theme mode: persisted preference first, then the
// configured default, then terminal detection for "auto".
func resolveMode(kv *storage.KV, cfg *config.Config) styles.Mode {
	if name, ok := storage.LoadTheme(kv); ok {
		if mode, ok := styles.ParseMode(name); ok {
			return mode
		}
	}
	if mode, ok := styles.ParseMode(cfg.UI.Theme); ok {
		return mode
	}
	return styles.DetectMode()
}

// snapshotter adapts the KV store to the store.Snapshotter interface.
type snapshotter struct {
	kv *storage.KV
}

func (s snapshotter) SaveConversations(convs []*model.Conversation) error {
	return storage.SaveConversations(s.kv, convs)
}
