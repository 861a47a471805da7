package console

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const helpText = "arrows/hjkl move • enter play • 1-9 play cell • r restart • q quit"

func (m *model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("--- Tic Tac Toe ---"))
	s.WriteString("\n\n")
	s.WriteString(m.statusLine())
	s.WriteString("\n\n")

	var highlights []int
	if line, ok := tictactoe.WinningLine(m.game.Board); ok {
		highlights = line[:]
	}

	for i, cell := range m.game.Board {
		bracket := bracketStyle
		if slices.Contains(highlights, i) {
			bracket = winningStyle
		}

		s.WriteString(bracket.Render("["))
		s.WriteString(m.renderCell(i, cell))
		s.WriteString(bracket.Render("]"))

		if (i+1)%boardWidth == 0 {
			s.WriteString("\n")
		}
	}

	if m.status != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(helpText))
	s.WriteString("\n")

	return s.String()
}

func (m *model) renderCell(i int, cell entity.Mark) string {
	switch {
	case cell != entity.EmptyCell:
		return renderMark(cell)
	case i == m.cursor && !m.game.IsFinished() && !m.thinking:
		return cursorStyle.Render("*")
	default:
		return " "
	}
}

func (m *model) statusLine() string {
	switch m.game.Status {
	case entity.StatusWon:
		return fmt.Sprintf("%s wins! %s", m.describePlayer(m.game.Winner), helpStyle.Render("press r to play again"))
	case entity.StatusDraw:
		return "It's a draw. " + helpStyle.Render("press r to play again")
	}

	line := "Turn: " + m.describePlayer(m.game.Turn)
	if m.thinking {
		line += " " + m.spinner.View()
	}

	return line
}

func (m *model) describePlayer(mark entity.Mark) string {
	player := m.game.PlayerByMark(mark)
	if player == nil {
		return renderMark(mark)
	}

	return fmt.Sprintf("%s (%s)", renderMark(mark), player.Name)
}

func renderMark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return xStyle.Render(mark.String())
	case entity.PlayerO:
		return oStyle.Render(mark.String())
	default:
		return mark.String()
	}
}
