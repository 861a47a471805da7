package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Mark is the content of a board cell: one of the two players' symbols or EmptyCell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Board is a row-major 3x3 grid. It is an array, so assigning it copies it.
type Board [BoardSize]Mark

// Line is a triple of board indices that wins when filled with one mark.
type Line [3]int

// WinCombos is the fixed enumeration of winning lines: rows top to bottom,
// columns left to right, then both diagonals.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) IsValid() bool {
	return that == EmptyCell || that.IsPlayer()
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) String() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

// ParseMark converts user input ("x", "O", ...) into a player mark.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "x", "X":
		return PlayerX, nil
	case "o", "O":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

type Difficulty string

const (
	DifficultyRandom  Difficulty = "random"
	DifficultyOptimal Difficulty = "optimal"
)

func (that Difficulty) IsValid() bool {
	return that == DifficultyRandom || that == DifficultyOptimal
}

// ValidationResult is the outcome of checking a move. Reason is nil when Valid is true.
type ValidationResult struct {
	Valid  bool
	Reason error
}

func (that ValidationResult) Err() error {
	if that.Valid {
		return nil
	}
	return that.Reason
}

const (
	StatusEmpty   = "empty"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// Outcome describes whether a board is terminal. Winner is set only for StatusWon.
type Outcome struct {
	Status string
	Winner Mark
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

const (
	ModeBot   = "bot"
	ModeLocal = "local"
)

// Game is the state owned by the presentation layer: the current board,
// whose turn it is and the ordered list of cells played so far.
type Game struct {
	Board   Board     `json:"board"`
	Turn    Mark      `json:"player_turn"`
	Winner  Mark      `json:"winner"`
	Status  string    `json:"status"`
	History []int     `json:"history"`
	Players []*Player `json:"players,omitempty"`
	Mode    string    `json:"mode,omitempty"`
}

func NewGame(mode string, players ...*Player) *Game {
	return &Game{
		Board:   Board{},
		Turn:    PlayerX,
		Status:  StatusEmpty,
		History: []int{},
		Players: players,
		Mode:    mode,
	}
}

// Clone returns a deep copy, so callers can hand out new game values
// without sharing history slices.
func (that *Game) Clone() *Game {
	clone := *that
	clone.History = slices.Clone(that.History)
	clone.Players = slices.Clone(that.Players)

	return &clone
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsEmpty() bool {
	return that.Status == StatusEmpty
}

// PlayerByMark returns the player holding mark, or nil.
func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}
	return nil
}

// BotPlayer returns the bot taking part in the game, or nil.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

// IsBotTurn reports whether the game is live and the mark on turn belongs to the bot.
func (that *Game) IsBotTurn() bool {
	if that.IsFinished() {
		return false
	}

	bot := that.BotPlayer()
	return bot != nil && bot.Mark == that.Turn
}
