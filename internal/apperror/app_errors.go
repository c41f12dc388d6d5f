package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameAlreadyOver   = errors.New("game is already over")
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrTurnOutOfRange    = errors.New("turn is out of range")

	// ErrInvalidName is a rename rejection, so it also matches ErrInvalidSymbol.
	ErrInvalidName = fmt.Errorf("%w: player name is empty", ErrInvalidSymbol)
)
