package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/service"
	"github.com/rocketscienceinc/tictactoe/internal/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	humanMark, err := conf.GetPlayerMark()
	if err != nil {
		return fmt.Errorf("invalid player mark: %w", err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug("random source seeded", "seed", seed)

	botService := service.NewBotService(rand.New(rand.NewPCG(seed, seed>>1|1)))
	gamePlayService := service.NewGamePlayService(logger, botService, rand.New(rand.NewPCG(seed^0x5eed, seed)), service.Settings{
		Difficulty: conf.GetDifficulty(),
		ThinkDelay: conf.ThinkDelay,
	})

	consoleServer := console.New(logger, gamePlayService, console.Options{
		Mode:      conf.Mode,
		HumanMark: humanMark,
	})

	log.Info("Starting console", "mode", conf.Mode, "difficulty", conf.Difficulty)

	if err = consoleServer.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}
