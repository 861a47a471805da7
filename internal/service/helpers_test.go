package service

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
		default:
			t.Fatalf("unexpected rune %q in layout %q", r, layout)
		}
	}

	return b
}
