package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type GamePlayService interface {
	NewGame(ctx context.Context, mode string, humanMark entity.Mark) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, cell int) (*entity.Game, error)
	BotTurn(ctx context.Context, game *entity.Game) (*entity.Game, error)
	Restart(ctx context.Context, game *entity.Game) (*entity.Game, error)
}

// Settings control how the bot plays.
type Settings struct {
	Difficulty entity.Difficulty
	ThinkDelay time.Duration
}

// gamePlayService never changes the game it receives: every call works on a
// clone and returns it, so the caller stays the owner of the game state.
type gamePlayService struct {
	logger *slog.Logger

	botService BotService
	settings   Settings

	mu  sync.Mutex
	rnd RandomSource
}

func NewGamePlayService(logger *slog.Logger, botService BotService, rnd RandomSource, settings Settings) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
		settings:   settings,
		rnd:        rnd,
	}
}

// NewGame - creates an empty game. In bot mode an empty humanMark gives the
// human a random mark. When the bot plays X the caller should follow up with BotTurn.
func (that *gamePlayService) NewGame(ctx context.Context, mode string, humanMark entity.Mark) (*entity.Game, error) {
	var game *entity.Game

	switch mode {
	case entity.ModeLocal:
		game = entity.NewGame(mode,
			entity.NewHumanPlayer("player 1", entity.PlayerX),
			entity.NewHumanPlayer("player 2", entity.PlayerO),
		)
	case entity.ModeBot:
		if humanMark == entity.EmptyCell {
			humanMark = that.getRandomMark()
		}

		if !humanMark.IsPlayer() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, string(humanMark))
		}

		game = entity.NewGame(mode,
			entity.NewHumanPlayer("you", humanMark),
			entity.NewBotPlayer(humanMark.Opponent()),
		)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", apperror.ErrInvalidConfig, mode)
	}

	that.logger.InfoContext(ctx, "game created", "mode", mode, "humanMark", string(humanMark))

	return game, nil
}

// MakeTurn - plays cell for the human whose turn it is.
func (that *gamePlayService) MakeTurn(ctx context.Context, game *entity.Game, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell, "turn", string(game.Turn))

	if game.IsBotTurn() {
		return game, apperror.ErrNotYourTurn
	}

	next := game.Clone()
	if err := tictactoe.MakeTurn(next, next.Turn, cell); err != nil {
		log.WarnContext(ctx, "move rejected", "error", err)
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	log.InfoContext(ctx, "move played", "status", next.Status)
	that.logOutcome(ctx, next)

	return next, nil
}

// BotTurn - waits for the think delay, then plays the bot's move.
func (that *gamePlayService) BotTurn(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	log := that.logger.With("method", "BotTurn", "difficulty", string(that.settings.Difficulty))

	if !game.IsBotTurn() {
		return game, apperror.ErrNotBotTurn
	}

	if err := that.think(ctx); err != nil {
		return game, fmt.Errorf("bot interrupted: %w", err)
	}

	botMark := game.BotPlayer().Mark

	cell, err := that.botService.SelectMove(game.Board, botMark, that.settings.Difficulty)
	if err != nil {
		log.ErrorContext(ctx, "bot failed to select move", "error", err)
		return game, fmt.Errorf("bot failed to select move: %w", err)
	}

	next := game.Clone()
	if err = tictactoe.MakeTurn(next, botMark, cell); err != nil {
		return game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.InfoContext(ctx, "bot played", "cell", cell, "mark", string(botMark), "status", next.Status)
	that.logOutcome(ctx, next)

	return next, nil
}

// Restart - returns an empty game with the same players and mode.
func (that *gamePlayService) Restart(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	next := game.Clone()
	tictactoe.Restart(next)

	that.logger.InfoContext(ctx, "game restarted", "mode", next.Mode, "moves", len(game.History))

	return next, nil
}

func (that *gamePlayService) think(ctx context.Context) error {
	if that.settings.ThinkDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(that.settings.ThinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *gamePlayService) logOutcome(ctx context.Context, game *entity.Game) {
	switch game.Status {
	case entity.StatusWon:
		that.logger.InfoContext(ctx, "game won", "winner", string(game.Winner), "history", game.History)
	case entity.StatusDraw:
		that.logger.InfoContext(ctx, "game drawn", "history", game.History)
	}
}

func (that *gamePlayService) getRandomMark() entity.Mark {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.rnd.IntN(2) == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}
