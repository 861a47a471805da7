package apperror

import "errors"

var (
	ErrInvalidBoard      = errors.New("invalid board")
	ErrInvalidIndex      = errors.New("invalid cell index")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrGameAlreadyOver   = errors.New("game is already over")
	ErrNoLegalMoves      = errors.New("no legal moves")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrNotBotTurn   = errors.New("it's not the bot's turn")

	ErrInvalidConfig = errors.New("invalid config")
)
