package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// CreateEmptyBoard returns a board with all nine cells empty.
func CreateEmptyBoard() entity.Board {
	return entity.Board{}
}

// BoardFromCells converts a cell slice coming from outside the core into a Board.
func BoardFromCells(cells []entity.Mark) (entity.Board, error) {
	var board entity.Board

	if len(cells) != entity.BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, entity.BoardSize, len(cells))
	}

	for i, cell := range cells {
		if !cell.IsValid() {
			return entity.Board{}, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, string(cell))
		}
		board[i] = cell
	}

	return board, nil
}

// ValidateMove - checks if a mark may be placed on cell index. It never fails with an error.
func ValidateMove(board entity.Board, index int) entity.ValidationResult {
	if !isWellFormed(board) {
		return entity.ValidationResult{Reason: apperror.ErrInvalidBoard}
	}

	if index < 0 || index >= len(board) {
		return entity.ValidationResult{Reason: apperror.ErrInvalidIndex}
	}

	if board[index] != entity.EmptyCell {
		return entity.ValidationResult{Reason: apperror.ErrCellOccupied}
	}

	return entity.ValidationResult{Valid: true}
}

// ComputeWinner returns the mark filling the first complete line, or EmptyCell.
func ComputeWinner(board entity.Board) entity.Mark {
	line, ok := WinningLine(board)
	if !ok {
		return entity.EmptyCell
	}
	return board[line[0]]
}

// WinningLine returns the first complete line in WinCombos order.
func WinningLine(board entity.Board) (entity.Line, bool) {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a.IsPlayer() && a == b && b == c {
			return combo, true
		}
	}

	return entity.Line{}, false
}

// IsDraw reports a full board without a winner.
func IsDraw(board entity.Board) bool {
	if ComputeWinner(board) != entity.EmptyCell {
		return false
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

func ComputeOutcome(board entity.Board) entity.Outcome {
	if winner := ComputeWinner(board); winner != entity.EmptyCell {
		return entity.Outcome{Status: entity.StatusWon, Winner: winner}
	}

	if IsDraw(board) {
		return entity.Outcome{Status: entity.StatusDraw}
	}

	return entity.Outcome{Status: entity.StatusOngoing}
}

// EmptyCells lists the empty indices in ascending order.
func EmptyCells(board entity.Board) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

// NextMark derives the mark on turn assuming X opened and players alternated.
func NextMark(board entity.Board) entity.Mark {
	filled := len(board) - len(EmptyCells(board))
	if filled%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// ApplyMove returns a copy of board with mark placed on index.
func ApplyMove(board entity.Board, mark entity.Mark, index int) (entity.Board, error) {
	if !mark.IsPlayer() {
		return board, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(mark))
	}

	if err := ValidateMove(board, index).Err(); err != nil {
		return board, fmt.Errorf("%w: cell %d", err, index)
	}

	board[index] = mark

	return board, nil
}

func isWellFormed(board entity.Board) bool {
	for _, cell := range board {
		if !cell.IsValid() {
			return false
		}
	}
	return true
}
