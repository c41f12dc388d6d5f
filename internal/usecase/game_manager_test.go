package usecase

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestGameManager_PlayMove(t *testing.T) {
	t.Run("Returns the state after an accepted move", func(t *testing.T) {
		_, st := suite.New(t)
		manager := NewGameManager(st.Logger, st.Controller)

		// When: X plays the centre
		state, err := manager.PlayMove(1, 1)

		// Then: the returned state reflects the move
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, state.Board[1][1])
		assert.Equal(t, entity.PlayerO, state.ActivePlayer)
	})

	t.Run("Returns the unchanged state with the error on rejection", func(t *testing.T) {
		_, st := suite.New(t)
		st.Play(entity.Cell{Row: 1, Column: 1})
		manager := NewGameManager(st.Logger, st.Controller)

		// When: O plays the occupied centre
		state, err := manager.PlayMove(1, 1)

		// Then: the error is wrapped and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, 1, state.Turns)
		assert.Equal(t, entity.PlayerO, state.ActivePlayer)
	})

	t.Run("Reports the winner", func(t *testing.T) {
		_, st := suite.New(t)
		st.Play(
			entity.Cell{Row: 0, Column: 0}, entity.Cell{Row: 1, Column: 1},
			entity.Cell{Row: 0, Column: 1}, entity.Cell{Row: 2, Column: 2},
		)
		manager := NewGameManager(st.Logger, st.Controller)

		state, err := manager.PlayMove(0, 2)

		require.NoError(t, err)
		assert.Equal(t, "Player 1", state.Winner)

		_, err = manager.PlayMove(2, 0)
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})
}

func TestGameManager_RenameSlot(t *testing.T) {
	t.Run("Renames and returns the new registry", func(t *testing.T) {
		_, st := suite.New(t)
		manager := NewGameManager(st.Logger, st.Controller)

		state, err := manager.RenameSlot(entity.PlayerX, "Alice")

		require.NoError(t, err)
		assert.Equal(t, "Alice", state.Players.X)
	})

	t.Run("Rejects unknown symbols", func(t *testing.T) {
		_, st := suite.New(t)
		manager := NewGameManager(st.Logger, st.Controller)

		state, err := manager.RenameSlot(entity.Symbol("-"), "Nobody")

		require.ErrorIs(t, err, apperror.ErrInvalidSymbol)
		assert.Equal(t, entity.NewPlayerRegistry(), state.Players)
	})
}

func TestGameManager_ResetMatch(t *testing.T) {
	// Given: a renamed player and a few moves
	_, st := suite.NewWithRegistry(t, entity.PlayerRegistry{X: "Alice", O: "Bob"})
	st.Play(entity.Cell{Row: 0, Column: 0}, entity.Cell{Row: 2, Column: 2})
	manager := NewGameManager(st.Logger, st.Controller)
	previous := manager.State().MatchID

	// When: the match is reset
	state := manager.ResetMatch()

	// Then: the board is cleared, X is active and names persist
	assert.Equal(t, entity.Grid{}, state.Board)
	assert.Equal(t, entity.PlayerX, state.ActivePlayer)
	assert.Equal(t, "Alice", state.Players.X)
	assert.NotEqual(t, previous, state.MatchID)
	assert.Empty(t, manager.History())
}

func TestGameManager_BoardAt(t *testing.T) {
	_, st := suite.New(t)
	st.Play(entity.Cell{Row: 0, Column: 0}, entity.Cell{Row: 2, Column: 2})
	manager := NewGameManager(st.Logger, st.Controller)

	board, err := manager.BoardAt(1)
	require.NoError(t, err)
	assert.Equal(t, 1, board.Filled())

	_, err = manager.BoardAt(3)
	require.ErrorIs(t, err, apperror.ErrTurnOutOfRange)
}

func TestGameManager_LogsDerivedState(t *testing.T) {
	// Given: a manager logging JSON into a buffer
	_, st := suite.New(t)
	st.Play(
		entity.Cell{Row: 0, Column: 0}, entity.Cell{Row: 1, Column: 1},
		entity.Cell{Row: 0, Column: 1}, entity.Cell{Row: 2, Column: 2},
	)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	manager := NewGameManager(logger, st.Controller)

	// When: X completes row 0
	_, err := manager.PlayMove(0, 2)
	require.NoError(t, err)

	// Then: the record carries the derived state under its json field names
	var record struct {
		Msg   string         `json:"msg"`
		State map[string]any `json:"state"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "match won", record.Msg)
	assert.Equal(t, entity.StatusWon, record.State["status"])
	assert.Equal(t, "X", record.State["winner_symbol"])
	assert.Equal(t, "Player 1", record.State["winner"])
	assert.Equal(t, map[string]any{"X": "Player 1", "O": "Player 2"}, record.State["players"])
	assert.NotNil(t, record.State["winning_line"])
}
