package console

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/service"
)

const boardWidth = 3

// botDoneMsg carries the result of an asynchronous bot turn. round ties it to
// the game it was computed for, so results arriving after a restart are dropped.
type botDoneMsg struct {
	round int
	game  *entity.Game
	err   error
}

type model struct {
	ctx      context.Context
	gamePlay service.GamePlayService

	game     *entity.Game
	cursor   int
	round    int
	thinking bool
	spinner  spinner.Model
	status   string
}

func newModel(ctx context.Context, gamePlay service.GamePlayService, game *entity.Game) *model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = spinnerStyle

	return &model{
		ctx:      ctx,
		gamePlay: gamePlay,
		game:     game,
		cursor:   4,
		spinner:  s,
	}
}

func (m *model) Init() tea.Cmd {
	return m.startBotIfNeeded()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case botDoneMsg:
		if msg.round != m.round {
			return m, nil
		}

		m.thinking = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}

		m.game = msg.game
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "r":
		return m, m.restart()
	}

	// input stays disabled while the bot is thinking
	if m.thinking {
		return m, nil
	}

	switch key {
	case "up", "k":
		m.moveCursor(-boardWidth)
	case "down", "j":
		m.moveCursor(boardWidth)
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "enter", " ":
		return m, m.play(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.cursor = int(key[0] - '1')
		return m, m.play(m.cursor)
	}

	return m, nil
}

func (m *model) moveCursor(delta int) {
	m.cursor = (m.cursor + delta + entity.BoardSize) % entity.BoardSize
}

func (m *model) play(cell int) tea.Cmd {
	if m.game.IsFinished() {
		m.status = "game over, press r to play again"
		return nil
	}

	next, err := m.gamePlay.MakeTurn(m.ctx, m.game, cell)
	if err != nil {
		m.status = describeError(err)
		return nil
	}

	m.game = next
	m.status = ""

	return m.startBotIfNeeded()
}

func (m *model) restart() tea.Cmd {
	next, err := m.gamePlay.Restart(m.ctx, m.game)
	if err != nil {
		m.status = err.Error()
		return nil
	}

	m.round++
	m.game = next
	m.thinking = false
	m.status = ""
	m.cursor = 4

	return m.startBotIfNeeded()
}

func (m *model) startBotIfNeeded() tea.Cmd {
	if !m.game.IsBotTurn() {
		return nil
	}

	m.thinking = true

	return tea.Batch(m.spinner.Tick, m.botMove(m.round, m.game))
}

func (m *model) botMove(round int, game *entity.Game) tea.Cmd {
	ctx := m.ctx
	gamePlay := m.gamePlay

	return func() tea.Msg {
		next, err := gamePlay.BotTurn(ctx, game)
		return botDoneMsg{round: round, game: next, err: err}
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "that cell is already taken"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "wait for your turn"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game over, press r to play again"
	default:
		return err.Error()
	}
}
