package service

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// RandomSource is satisfied by *rand.Rand from math/rand/v2.
type RandomSource interface {
	IntN(n int) int
}

type BotService interface {
	SelectMove(board entity.Board, aiMark entity.Mark, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	mu  sync.Mutex
	rnd RandomSource
}

func NewBotService(rnd RandomSource) BotService {
	return &botService{
		rnd: rnd,
	}
}

// SelectMove returns an empty cell of board for aiMark to play.
// The board is received by value and never modified.
func (that *botService) SelectMove(board entity.Board, aiMark entity.Mark, difficulty entity.Difficulty) (int, error) {
	if err := validateSelection(board, aiMark, difficulty); err != nil {
		return -1, err
	}

	availableCells := tictactoe.EmptyCells(board)
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoLegalMoves
	}

	switch difficulty {
	case entity.DifficultyRandom:
		return availableCells[that.intN(len(availableCells))], nil
	default:
		return bestMove(board, aiMark), nil
	}
}

func (that *botService) intN(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.IntN(n)
}

func validateSelection(board entity.Board, aiMark entity.Mark, difficulty entity.Difficulty) error {
	for i, cell := range board {
		if !cell.IsValid() {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, string(cell))
		}
	}

	if !aiMark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(aiMark))
	}

	if !difficulty.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, string(difficulty))
	}

	if tictactoe.ComputeWinner(board) != entity.EmptyCell || tictactoe.IsDraw(board) {
		return apperror.ErrGameAlreadyOver
	}

	return nil
}
