package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// maxScoreboardRows limits how many games are loaded into the table.
const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high-score screen.
type ScoreboardModel struct {
	store    *storage.Store
	games    []storage.GameRecord
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadGames()
	return m
}

// createTable creates the score table.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Best tile", Width: 10},
		{Title: "Result", Width: 8},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, stats, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadGames loads the top games and overall stats into the table.
func (m *ScoreboardModel) loadGames() {
	if m.store == nil {
		m.games = nil
		m.updateTableRows()
		return
	}

	games, err := m.store.TopGames(maxScoreboardRows)
	if err != nil {
		m.games = nil
	} else {
		m.games = games
	}
	if stats, err := m.store.GetStats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows rebuilds the table from the loaded games.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		result := "lost"
		if g.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.BestTile),
			result,
			g.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-8, 3))
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var out string
	out += titleStyle.Render("High Scores") + "\n\n"

	if len(m.games) == 0 {
		out += hudStyle.Render("No games recorded yet.") + "\n"
	} else {
		out += m.table.View() + "\n"
	}

	if m.stats != nil && m.stats.GamesCount > 0 {
		out += hudStyle.Render(fmt.Sprintf(
			"Games: %d   Wins: %d   Best: %d   Avg: %.0f",
			m.stats.GamesCount, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore,
		)) + "\n"
	}

	out += "\n" + m.help.View(m.keys) + "\n"
	return out
}

// RunScoreboard starts the interactive scoreboard and blocks until it ends.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: scoreboard failed: %w", err)
	}
	return nil
}
