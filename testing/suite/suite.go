package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Controller *tictactoe.GameController
}

// New builds a fresh match with default player names.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	return NewWithRegistry(t, entity.NewPlayerRegistry())
}

func NewWithRegistry(t *testing.T, registry entity.PlayerRegistry) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:          t,
		Logger:     logger,
		Controller: tictactoe.NewGameController(registry),
	}
}

// Play applies the moves in order and fails the test on the first rejection.
func (that *Suite) Play(cells ...entity.Cell) {
	that.Helper()

	for _, cell := range cells {
		if err := that.Controller.PlayMove(cell.Row, cell.Column); err != nil {
			that.Fatalf("could not play %d,%d: %v", cell.Row, cell.Column, err)
		}
	}
}
