package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
)

const tileWidth = 7

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	winStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	overStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	emptyCellStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238"))

	// tileColors roughly follows the classic palette: pale for small
	// values, hot for large ones.
	tileColors = map[int]lipgloss.Color{
		2:    lipgloss.Color("252"),
		4:    lipgloss.Color("250"),
		8:    lipgloss.Color("222"),
		16:   lipgloss.Color("214"),
		32:   lipgloss.Color("208"),
		64:   lipgloss.Color("202"),
		128:  lipgloss.Color("227"),
		256:  lipgloss.Color("226"),
		512:  lipgloss.Color("220"),
		1024: lipgloss.Color("214"),
		2048: lipgloss.Color("201"),
	}
)

// tileStyle returns the style for a tile of the given value.
func tileStyle(value int) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		// Beyond 2048 the game is already over, but render sensibly.
		color = lipgloss.Color("201")
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(color)
}

// renderBoard draws the tile grid, top row first.
func renderBoard(snap game.Snapshot) string {
	rows := make([]string, 0, snap.Size)
	for _, rowValues := range snap.Values {
		cells := make([]string, 0, snap.Size)
		for _, v := range rowValues {
			if v == 0 {
				cells = append(cells, emptyCellStyle.Render("."))
			} else {
				cells = append(cells, tileStyle(v).Render(strconv.Itoa(v)))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(strings.Join(rows, "\n\n"))
}

// View renders the play screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("2048"))
	sb.WriteString("\n")
	sb.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d   Best: %d   Max tile: %d", snap.Score, snap.MaxScore, snap.MaxTile)))
	sb.WriteString("\n\n")
	sb.WriteString(renderBoard(snap))
	sb.WriteString("\n")

	switch {
	case m.won:
		sb.WriteString(winStyle.Render("You win! Press r to play again."))
		sb.WriteString("\n")
	case m.over:
		sb.WriteString(overStyle.Render("Game over. Press r to restart."))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String())
	}
	return sb.String()
}
