package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOutOfBounds       = errors.New("coordinate is out of bounds")
	ErrOverlap           = errors.New("ship overlaps another ship")
	ErrDuplicateAttack   = errors.New("already attacked")

	ErrNotComputer    = errors.New("player is not computer controlled")
	ErrNoTargetsLeft  = errors.New("no coordinates left to attack")
	ErrFleetPlacement = errors.New("could not place fleet")
	ErrInvalidRules   = errors.New("invalid game rules")

	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameStarted      = errors.New("game is already started")
	ErrFleetIncomplete  = errors.New("fleet is not fully placed")
)
