package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")

	errQuit = errors.New("quit")
)

type uGame interface {
	PlayMove(row, column int) (entity.DerivedState, error)
	RenameSlot(symbol entity.Symbol, name string) (entity.DerivedState, error)
	ResetMatch() entity.DerivedState

	State() entity.DerivedState
	History() []entity.Move
	BoardAt(turn int) (entity.Grid, error)
}

type view interface {
	Render(state entity.DerivedState, history []entity.Move) error
	RenderReplay(turn int, board entity.Grid) error
	RenderError(err error) error
	RenderMessage(message string) error
}

// Command is one parsed input line.
type Command struct {
	Action string
	Args   []string
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
	view   view

	handlers map[string]func(cmd *Command) error
}

func New(logger *slog.Logger, uGame uGame, view view) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,
		view:   view,

		handlers: make(map[string]func(*Command) error),
	}

	server.handlers["play"] = server.handlePlay
	server.handlers["rename"] = server.handleRename
	server.handlers["reset"] = server.handleReset
	server.handlers["replay"] = server.handleReplay
	server.handlers["state"] = server.handleState
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Start draws the match and then serves commands from in until quit, EOF or ctx is done.
// On ctx cancel the reader goroutine stays blocked in Scan until in yields or is closed;
// with os.Stdin that lasts until the process exits.
func (that *Server) Start(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Start")

	lines := make(chan string)
	readErrCh := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErrCh <- scanner.Err()
	}()

	if err := that.handleState(nil); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				// the reader sends its error before closing lines, unless it stopped on ctx
				select {
				case err := <-readErrCh:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}

				log.Info("input closed, stopping console")
				return nil
			}

			err := that.processLine(line)
			if errors.Is(err, errQuit) {
				log.Info("session ended by player")
				return nil
			}

			if err != nil {
				return err
			}
		}
	}
}

// processLine dispatches one command. Rejected commands are shown to the player, only output failures are returned.
func (that *Server) processLine(line string) error {
	cmd, ok := ParseCommand(line)
	if !ok {
		return nil
	}

	handler, exists := that.handlers[cmd.Action]
	if !exists {
		return that.view.RenderError(fmt.Errorf("%w: %q, type 'help'", ErrUnknownCommand, cmd.Action))
	}

	return handler(cmd)
}

// ParseCommand splits a line into a lower-cased action and its arguments. Blank lines yield false.
func ParseCommand(line string) (*Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	return &Command{
		Action: strings.ToLower(fields[0]),
		Args:   fields[1:],
	}, true
}
