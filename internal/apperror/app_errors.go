package apperror

import "errors"

// Invalid moves: rejected without touching the match.
var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
)

// Illegal preconditions: the caller passed something that can never be valid.
var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrInvalidStarter    = errors.New("invalid starter")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

var ErrNoAvailableMoves = errors.New("no available moves")

// IsInvalidMove reports whether err is an ordinary rejected move rather than a programmer error.
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrGameIsNotStarted) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrCellOccupied)
}
