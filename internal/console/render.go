package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qychen/tictacgo/pkg/common"
)

var (
	frameStyle = lipgloss.NewStyle().Faint(true)
	xStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	oStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
)

func markString(m common.Mark) string {
	switch m {
	case common.X:
		return xStyle.Render("X")
	case common.O:
		return oStyle.Render("O")
	default:
		return " "
	}
}

// RenderBoard draws the board with row/column headers.
func RenderBoard(b *common.Board) string {
	var rule = frameStyle.Render("-----------------")
	var sb = &strings.Builder{}
	sb.WriteString(rule + "\n")
	sb.WriteString(frameStyle.Render("|R\\C| 0 | 1 | 2 |") + "\n")
	sb.WriteString(rule + "\n")
	var bar = frameStyle.Render("|")
	for row := 0; row < common.BoardWidth; row++ {
		sb.WriteString(bar + frameStyle.Render(" "+itoa(row)+" ") + bar)
		for col := 0; col < common.BoardWidth; col++ {
			sb.WriteString(" " + markString(b.At(row, col)) + " " + bar)
		}
		sb.WriteString("\n" + rule + "\n")
	}
	return sb.String()
}

func itoa(n int) string {
	return string(rune('0' + n))
}
