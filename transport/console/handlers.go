package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const helpText = `Commands:
  play <row> <col>      place your mark, rows and columns are 0..2
  rename <X|O> <name>   change a player's name
  reset                 start a rematch, names are kept
  replay <turn>         show the board after the given turn
  state                 redraw the match
  help                  show this help
  quit                  leave the game`

func (that *Server) handlePlay(cmd *Command) error {
	if len(cmd.Args) != 2 {
		return that.view.RenderError(fmt.Errorf("%w: usage: play <row> <col>", ErrInvalidArguments))
	}

	row, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return that.view.RenderError(fmt.Errorf("%w: row %q is not a number", ErrInvalidArguments, cmd.Args[0]))
	}

	column, err := strconv.Atoi(cmd.Args[1])
	if err != nil {
		return that.view.RenderError(fmt.Errorf("%w: column %q is not a number", ErrInvalidArguments, cmd.Args[1]))
	}

	state, err := that.uGame.PlayMove(row, column)

	return that.redraw(state, err)
}

func (that *Server) handleRename(cmd *Command) error {
	if len(cmd.Args) < 2 {
		return that.view.RenderError(fmt.Errorf("%w: usage: rename <X|O> <name>", ErrInvalidArguments))
	}

	// unknown marks are passed through so the engine reports them
	symbol, _ := entity.ParseSymbol(cmd.Args[0])

	state, err := that.uGame.RenameSlot(symbol, strings.Join(cmd.Args[1:], " "))

	return that.redraw(state, err)
}

func (that *Server) handleReset(_ *Command) error {
	return that.redraw(that.uGame.ResetMatch(), nil)
}

func (that *Server) handleReplay(cmd *Command) error {
	if len(cmd.Args) != 1 {
		return that.view.RenderError(fmt.Errorf("%w: usage: replay <turn>", ErrInvalidArguments))
	}

	turn, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return that.view.RenderError(fmt.Errorf("%w: turn %q is not a number", ErrInvalidArguments, cmd.Args[0]))
	}

	board, err := that.uGame.BoardAt(turn)
	if err != nil {
		return that.view.RenderError(err)
	}

	return that.view.RenderReplay(turn, board)
}

func (that *Server) handleState(_ *Command) error {
	return that.redraw(that.uGame.State(), nil)
}

func (that *Server) handleHelp(_ *Command) error {
	return that.view.RenderMessage(helpText)
}

func (that *Server) handleQuit(_ *Command) error {
	return errQuit
}

// redraw renders the state after every command, followed by the rejection if there was one.
func (that *Server) redraw(state entity.DerivedState, cmdErr error) error {
	if err := that.view.Render(state, that.uGame.History()); err != nil {
		return fmt.Errorf("failed to render state: %w", err)
	}

	if cmdErr != nil {
		return that.view.RenderError(cmdErr)
	}

	return nil
}
