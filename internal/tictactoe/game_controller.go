package tictactoe

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameController owns one match: the move history and the player registry.
// Board, turn, winner and draw are always derived from the history, never stored.
type GameController struct {
	matchID  string
	history  []entity.Move // oldest first
	registry entity.PlayerRegistry
}

func NewGameController(registry entity.PlayerRegistry) *GameController {
	return &GameController{
		matchID:  uuid.NewString(),
		history:  make([]entity.Move, 0, entity.MaxTurns),
		registry: registry,
	}
}

func (that *GameController) MatchID() string {
	return that.matchID
}

// PlayMove places the active player's mark at (row, column).
func (that *GameController) PlayMove(row, column int) error {
	board := DeriveBoard(that.history)

	if _, _, won := findWinningLine(board); won || len(that.history) >= entity.MaxTurns {
		return apperror.ErrGameAlreadyOver
	}

	cell := entity.Cell{Row: row, Column: column}
	if !cell.InBounds() {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCoordinate, row, column)
	}

	if board.At(cell) != entity.EmptyCell {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, column)
	}

	that.history = append(that.history, entity.Move{
		Row:    row,
		Column: column,
		Player: DeriveActivePlayer(that.history),
	})

	return nil
}

func (that *GameController) RenameSlot(symbol entity.Symbol, name string) error {
	if err := that.registry.Rename(symbol, name); err != nil {
		return fmt.Errorf("failed to rename slot: %w", err)
	}

	return nil
}

// ResetMatch starts a new match. Player names survive the reset.
func (that *GameController) ResetMatch() {
	that.matchID = uuid.NewString()
	that.history = make([]entity.Move, 0, entity.MaxTurns)
}

func (that *GameController) DeriveState() entity.DerivedState {
	board := DeriveBoard(that.history)

	state := entity.DerivedState{
		MatchID:      that.matchID,
		Board:        board,
		ActivePlayer: DeriveActivePlayer(that.history),
		Status:       entity.StatusInProgress,
		Players:      that.registry,
		Turns:        len(that.history),
	}

	if line, symbol, won := findWinningLine(board); won {
		state.Winner = that.registry.Name(symbol)
		state.WinnerSymbol = symbol
		state.WinningLine = &line
		state.Status = entity.StatusWon
	}

	if IsDraw(that.history, state.Winner) {
		state.IsDraw = true
		state.Status = entity.StatusDraw
	}

	return state
}

// History returns a copy of the move log, oldest first.
func (that *GameController) History() []entity.Move {
	history := make([]entity.Move, len(that.history))
	copy(history, that.history)

	return history
}

// BoardAt replays the first turn moves of the current match.
func (that *GameController) BoardAt(turn int) (entity.Grid, error) {
	if turn < 0 || turn > len(that.history) {
		return entity.Grid{}, fmt.Errorf("%w: %d of %d", apperror.ErrTurnOutOfRange, turn, len(that.history))
	}

	return DeriveBoard(that.history[:turn]), nil
}
