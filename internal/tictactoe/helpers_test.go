package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// board builds a board from a 9 character layout: 'X', 'O' and '.' for empty.
func board(t *testing.T, layout string) entity.Board {
	t.Helper()

	require.Len(t, layout, entity.BoardSize)

	var b entity.Board
	for i, r := range layout {
		switch r {
		case 'X':
			b[i] = entity.PlayerX
		case 'O':
			b[i] = entity.PlayerO
		case '.':
			b[i] = entity.EmptyCell
		default:
			t.Fatalf("unexpected rune %q in layout %q", r, layout)
		}
	}

	return b
}

// allBoards enumerates every assignment of {empty, X, O} to the nine cells.
func allBoards() []entity.Board {
	values := [3]entity.Mark{entity.EmptyCell, entity.PlayerX, entity.PlayerO}

	boards := make([]entity.Board, 0, 19683)
	for n := 0; n < 19683; n++ {
		var b entity.Board
		code := n
		for i := range b {
			b[i] = values[code%3]
			code /= 3
		}
		boards = append(boards, b)
	}

	return boards
}
