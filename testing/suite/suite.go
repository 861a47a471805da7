package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/service"
)

const maxWaitDuration = 30 * time.Second

const (
	botSeed  = 1
	markSeed = 3
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Bot      service.BotService
	GamePlay service.GamePlayService
}

// New builds services with fixed seeds and no think delay, so games replay identically.
func New(t *testing.T, difficulty entity.Difficulty) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	bot := service.NewBotService(rand.New(rand.NewPCG(botSeed, botSeed+1)))
	gamePlay := service.NewGamePlayService(logger, bot, rand.New(rand.NewPCG(markSeed, markSeed+1)), service.Settings{
		Difficulty: difficulty,
	})

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Bot:      bot,
		GamePlay: gamePlay,
	}
}
