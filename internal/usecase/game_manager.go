package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameController interface {
	PlayMove(row, column int) error
	RenameSlot(symbol entity.Symbol, name string) error
	ResetMatch()

	DeriveState() entity.DerivedState
	History() []entity.Move
	BoardAt(turn int) (entity.Grid, error)
	MatchID() string
}

// GameManager runs commands against the match and hands back the state to redraw.
type GameManager struct {
	logger     *slog.Logger
	controller gameController
}

func NewGameManager(logger *slog.Logger, controller gameController) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		controller: controller,
	}
}

// PlayMove returns the state after the command, whether or not the move was accepted.
func (that *GameManager) PlayMove(row, column int) (entity.DerivedState, error) {
	log := that.logger.With("method", "PlayMove", "match_id", that.controller.MatchID(), "row", row, "column", column)

	if err := that.controller.PlayMove(row, column); err != nil {
		log.Warn("move rejected", "error", err)

		return that.controller.DeriveState(), fmt.Errorf("failed to play move: %w", err)
	}

	state := that.controller.DeriveState()

	switch {
	case state.HasWinner():
		log.Info("match won", "winner", state.Winner, "state", state)
	case state.IsDraw:
		log.Info("match drawn", "state", state)
	default:
		log.Debug("move accepted", "state", state)
	}

	return state, nil
}

func (that *GameManager) RenameSlot(symbol entity.Symbol, name string) (entity.DerivedState, error) {
	log := that.logger.With("method", "RenameSlot", "match_id", that.controller.MatchID(), "symbol", symbol)

	if err := that.controller.RenameSlot(symbol, name); err != nil {
		log.Warn("rename rejected", "error", err)

		return that.controller.DeriveState(), err
	}

	state := that.controller.DeriveState()
	log.Info("player renamed", "name", state.Players.Name(symbol))

	return state, nil
}

func (that *GameManager) ResetMatch() entity.DerivedState {
	previous := that.controller.MatchID()

	that.controller.ResetMatch()

	state := that.controller.DeriveState()
	that.logger.Info("match reset", "method", "ResetMatch", "previous_match_id", previous, "match_id", state.MatchID)

	return state
}

func (that *GameManager) State() entity.DerivedState {
	return that.controller.DeriveState()
}

func (that *GameManager) History() []entity.Move {
	return that.controller.History()
}

func (that *GameManager) BoardAt(turn int) (entity.Grid, error) {
	board, err := that.controller.BoardAt(turn)
	if err != nil {
		return entity.Grid{}, fmt.Errorf("failed to replay board: %w", err)
	}

	return board, nil
}
