package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/service"
)

// Options describe the game the console starts with.
type Options struct {
	Mode      string
	HumanMark entity.Mark

	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

type Server struct {
	logger   *slog.Logger
	gamePlay service.GamePlayService
	options  Options
}

func New(logger *slog.Logger, gamePlay service.GamePlayService, options Options) *Server {
	return &Server{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		options:  options,
	}
}

// Start - runs the terminal UI until the player quits or ctx is cancelled.
func (that *Server) Start(ctx context.Context) error {
	game, err := that.gamePlay.NewGame(ctx, that.options.Mode, that.options.HumanMark)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if that.options.Input != nil {
		programOptions = append(programOptions, tea.WithInput(that.options.Input))
	}
	if that.options.Output != nil {
		programOptions = append(programOptions, tea.WithOutput(that.options.Output))
	} else {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	program := tea.NewProgram(newModel(ctx, that.gamePlay, game), programOptions...)

	that.logger.Info("console started", "mode", game.Mode)

	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			that.logger.Info("console stopped", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("console program failed: %w", err)
	}

	that.logger.Info("console closed by player")

	return nil
}
