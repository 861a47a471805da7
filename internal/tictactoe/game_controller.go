package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// MakeTurn - places mark on cell and moves the game to its next state.
// The game is left untouched when the move is rejected.
func MakeTurn(game *entity.Game, mark entity.Mark, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := ApplyMove(game.Board, mark, cell)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = board
	game.History = append(game.History, cell)
	updateGameStatus(game, mark)

	return nil
}

// Restart - clears the board and history, keeping the players.
func Restart(game *entity.Game) {
	game.Board = CreateEmptyBoard()
	game.Turn = entity.PlayerX
	game.Winner = entity.EmptyCell
	game.Status = entity.StatusEmpty
	game.History = []int{}
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Mark) {
	outcome := ComputeOutcome(game.Board)

	game.Status = outcome.Status
	game.Winner = outcome.Winner

	if outcome.IsTerminal() {
		game.Turn = entity.EmptyCell
		return
	}

	game.Turn = mark.Opponent()
}
