package service

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

func newTestBot() BotService {
	return NewBotService(rand.New(rand.NewPCG(1, 2)))
}

func TestBotService_SelectMove_Validation(t *testing.T) {
	bot := newTestBot()

	t.Run("Invalid board", func(t *testing.T) {
		// Given: a board with a third value
		b := tictactoe.CreateEmptyBoard()
		b[5] = "?"

		// When: asking for a move
		_, err := bot.SelectMove(b, entity.PlayerX, entity.DifficultyOptimal)

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Invalid mark", func(t *testing.T) {
		for _, mark := range []entity.Mark{entity.EmptyCell, "Z"} {
			_, err := bot.SelectMove(tictactoe.CreateEmptyBoard(), mark, entity.DifficultyRandom)
			require.ErrorIs(t, err, apperror.ErrInvalidMark)
		}
	})

	t.Run("Invalid difficulty", func(t *testing.T) {
		_, err := bot.SelectMove(tictactoe.CreateEmptyBoard(), entity.PlayerO, "hard")
		require.ErrorIs(t, err, apperror.ErrInvalidDifficulty)
	})

	t.Run("Game already won", func(t *testing.T) {
		// Given: X holds the top row
		b := board(t, "XXX......")

		for _, difficulty := range []entity.Difficulty{entity.DifficultyRandom, entity.DifficultyOptimal} {
			// When: asking for a move
			_, err := bot.SelectMove(b, entity.PlayerO, difficulty)

			// Then: ErrGameAlreadyOver is returned
			require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
		}
	})

	t.Run("Game already drawn", func(t *testing.T) {
		_, err := bot.SelectMove(board(t, "XOXXOOOXX"), entity.PlayerO, entity.DifficultyOptimal)
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})
}

func TestBotService_SelectMove_Random(t *testing.T) {
	t.Run("Only empty cells are returned", func(t *testing.T) {
		// Given: a board with three empty cells
		bot := newTestBot()
		b := board(t, "XOXO.X.O.")

		counts := map[int]int{}
		const samples = 3000

		// When: sampling many random moves
		for range samples {
			cell, err := bot.SelectMove(b, entity.PlayerO, entity.DifficultyRandom)
			require.NoError(t, err)
			require.Equal(t, entity.EmptyCell, b[cell], "cell %d", cell)
			counts[cell]++
		}

		// Then: every empty cell was chosen
		require.Len(t, counts, 3)

		// Then: frequencies pass a chi-square test with 2 degrees of freedom at p = 0.001
		expected := float64(samples) / 3
		chiSquare := 0.0
		for _, cell := range []int{4, 6, 8} {
			diff := float64(counts[cell]) - expected
			chiSquare += diff * diff / expected
		}
		assert.Less(t, chiSquare, 13.816, "counts %v", counts)
	})

	t.Run("Single empty cell", func(t *testing.T) {
		cell, err := newTestBot().SelectMove(board(t, "XOXXOOOX."), entity.PlayerX, entity.DifficultyRandom)
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})
}

func TestBotService_SelectMove_Optimal(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		aiMark   entity.Mark
		expected int
	}{
		{name: "Completes winning row", layout: "OO.XX....", aiMark: entity.PlayerO, expected: 2},
		{name: "Blocks opponent win", layout: "XX.O.....", aiMark: entity.PlayerO, expected: 2},
		{name: "Answers a corner opening with the centre", layout: "X........", aiMark: entity.PlayerO, expected: 4},
		{name: "Takes the last cell", layout: "XOXXOOOX.", aiMark: entity.PlayerX, expected: 8},
		{name: "Lowest index among equal scores", layout: ".........", aiMark: entity.PlayerX, expected: 0},
	}

	bot := newTestBot()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board(t, tt.layout)

			// When: asking the optimal bot for a move
			cell, err := bot.SelectMove(b, tt.aiMark, entity.DifficultyOptimal)

			// Then: the expected cell is chosen
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cell)
		})
	}
}

func TestBotService_SelectMove_DoesNotMutateBoard(t *testing.T) {
	bot := newTestBot()

	for _, difficulty := range []entity.Difficulty{entity.DifficultyRandom, entity.DifficultyOptimal} {
		// Given: a board in the middle of a game and a copy of it
		b := board(t, "X...O..X.")
		before := b

		// When: the bot selects a move
		cell, err := bot.SelectMove(b, entity.PlayerO, difficulty)
		require.NoError(t, err)

		// Then: the caller's board is unchanged and the cell was empty
		assert.Equal(t, before, b)
		assert.Equal(t, entity.EmptyCell, b[cell])
	}
}

func TestBotService_OptimalNeverLoses(t *testing.T) {
	bot := newTestBot()
	opponent := rand.New(rand.NewPCG(7, 11))

	for _, aiMark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		for range 30 {
			// Given: a new game between the optimal bot and a random opponent
			game := entity.NewGame(entity.ModeBot)

			// When: both sides play until the game is over
			for !game.IsFinished() {
				var cell int
				if game.Turn == aiMark {
					var err error
					cell, err = bot.SelectMove(game.Board, aiMark, entity.DifficultyOptimal)
					require.NoError(t, err)
				} else {
					cells := tictactoe.EmptyCells(game.Board)
					cell = cells[opponent.IntN(len(cells))]
				}

				require.NoError(t, tictactoe.MakeTurn(game, game.Turn, cell))
			}

			// Then: the opponent never won
			require.NotEqual(t, aiMark.Opponent(), game.Winner, "history %v", game.History)
		}
	}
}

func TestBotService_ConcurrentCallers(t *testing.T) {
	bot := newTestBot()
	b := board(t, "X...O....")

	var wg sync.WaitGroup
	errs := make(chan error, 16)

	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			difficulty := entity.DifficultyRandom
			if i%2 == 0 {
				difficulty = entity.DifficultyOptimal
			}

			cell, err := bot.SelectMove(b, entity.PlayerX, difficulty)
			if err == nil && b[cell] != entity.EmptyCell {
				err = apperror.ErrCellOccupied
			}
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
