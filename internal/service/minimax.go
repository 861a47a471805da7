package service

import (
	"math"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

// bestMove tries aiMark on every empty cell in ascending order and keeps the
// first cell with the strictly highest minimax score. Each candidate is
// played on a copy of board.
func bestMove(board entity.Board, aiMark entity.Mark) int {
	best, bestScore := -1, math.MinInt

	for _, cell := range tictactoe.EmptyCells(board) {
		next := board
		next[cell] = aiMark

		if score := minimax(next, aiMark); score > bestScore {
			best, bestScore = cell, score
		}
	}

	return best
}

// minimax scores board from aiMark's point of view with full-depth search.
// The side to move is taken from the board's parity, so boards that did not
// start with X and alternate are scored as if they had.
func minimax(board entity.Board, aiMark entity.Mark) int {
	switch winner := tictactoe.ComputeWinner(board); winner {
	case entity.EmptyCell:
	case aiMark:
		return scoreWin
	default:
		return scoreLoss
	}

	availableCells := tictactoe.EmptyCells(board)
	if len(availableCells) == 0 {
		return scoreDraw
	}

	current := tictactoe.NextMark(board)
	maximizing := current == aiMark

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, cell := range availableCells {
		next := board
		next[cell] = current

		score := minimax(next, aiMark)
		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}

	return best
}
