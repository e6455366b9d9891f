// Package tui provides the Bubble Tea integration for the puzzle: the play
// screen, the scoreboard, and SSH serving via Wish.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Model is the Bubble Tea model for an interactive game session. Each
// session owns its engine instance; the engine itself does no locking.
type Model struct {
	cfg     config.Config
	engine  *game.Engine
	spawner *game.Spawner
	store   *storage.Store
	keys    PlayKeyMap
	help    help.Model

	width     int
	height    int
	startedAt time.Time
	over      bool
	won       bool
	saved     bool // Whether the result has been stored for this game over
	quitting  bool
}

// NewModel creates a play model. A zero seed means seed from the clock.
func NewModel(cfg config.Config, store *storage.Store, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:   cfg,
		store: store,
		keys:  DefaultPlayKeyMap(),
		help:  help.New(),
	}
	m.reset(seed)
	return m
}

// reset starts a fresh game with the given spawn seed.
func (m *Model) reset(seed int64) {
	m.engine = game.New(m.cfg.Game.BoardSize)
	m.spawner = game.NewSpawner(seed, m.cfg.Game.SpawnFour)
	for i := 0; i < m.cfg.Game.StartTiles; i++ {
		m.spawner.Spawn(m.engine)
	}
	m.startedAt = time.Now()
	m.over = false
	m.won = false
	m.saved = false
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.over {
			m.reset(time.Now().UnixNano())
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.tilt(game.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.tilt(game.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.tilt(game.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.tilt(game.DirRight)
	}

	return m, nil
}

// tilt runs one move: tilt the engine, spawn on a changed board, check for
// the end of the game, and store the result once.
func (m *Model) tilt(dir game.Direction) {
	if m.over {
		return
	}

	before := m.engine.Snapshot()
	m.engine.Tilt(dir)
	after := m.engine.Snapshot()

	if !after.Over && boardChanged(before, after) {
		m.spawner.Spawn(m.engine)
	}

	m.over = m.engine.GameOver()
	m.won = m.engine.MaxTile() >= game.MaxPiece

	if m.over && !m.saved {
		m.saveResult()
		m.saved = true
	}
}

// saveResult records the finished game. Best effort: the session continues
// even when the store is missing or the write fails.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	snap := m.engine.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(storage.GameRecord{
		Score:    snap.Score,
		MaxScore: snap.MaxScore,
		BestTile: snap.MaxTile,
		Won:      snap.MaxTile >= game.MaxPiece,
		Duration: int(time.Since(m.startedAt).Seconds()),
	})
}

// boardChanged reports whether two snapshots hold different tile values.
func boardChanged(a, b game.Snapshot) bool {
	for i := range a.Values {
		for j := range a.Values[i] {
			if a.Values[i][j] != b.Values[i][j] {
				return true
			}
		}
	}
	return false
}

// Run starts the interactive play session and blocks until it ends.
func Run(cfg config.Config, store *storage.Store, seed int64) error {
	p := tea.NewProgram(NewModel(cfg, store, seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
