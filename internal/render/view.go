package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorActive = "4"
	colorWin    = "2"
	colorError  = "1"
)

// View draws the match to a terminal. It holds no game state of its own.
type View struct {
	output *termenv.Output
}

// New detects the terminal colour profile of w unless colored is false.
func New(w io.Writer, colored bool) *View {
	if !colored {
		return &View{output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}

	return &View{output: termenv.NewOutput(w)}
}

func (that *View) Render(state entity.DerivedState, history []entity.Move) error {
	var sb strings.Builder

	sb.WriteString("\n")
	that.writePlayers(&sb, state)
	sb.WriteString("\n")
	that.writeBoard(&sb, state.Board, state.WinningLine)

	if state.IsFinished() {
		sb.WriteString("\n")
		that.writeGameOver(&sb, state)
	}

	if len(history) > 0 {
		sb.WriteString("\n")
		writeLog(&sb, state.Players, history)
	}

	return that.write(sb.String())
}

// RenderReplay draws the board as it stood after turn moves.
func (that *View) RenderReplay(turn int, board entity.Grid) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nBoard after turn %d:\n", turn)
	that.writeBoard(&sb, board, nil)

	return that.write(sb.String())
}

func (that *View) RenderError(err error) error {
	line := that.output.String("error: " + err.Error()).Foreground(that.output.Color(colorError))

	return that.write(line.String() + "\n")
}

func (that *View) RenderMessage(message string) error {
	return that.write(message + "\n")
}

func (that *View) write(text string) error {
	if _, err := that.output.WriteString(text); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}

	return nil
}

func (that *View) writePlayers(sb *strings.Builder, state entity.DerivedState) {
	for _, symbol := range []entity.Symbol{entity.PlayerX, entity.PlayerO} {
		label := fmt.Sprintf("%s (%s)", state.Players.Name(symbol), symbol)

		if state.IsInProgress() && state.ActivePlayer == symbol {
			styled := that.output.String(label).Bold().Foreground(that.output.Color(colorActive))
			fmt.Fprintf(sb, "> %s\n", styled)
			continue
		}

		fmt.Fprintf(sb, "  %s\n", label)
	}
}

func (that *View) writeBoard(sb *strings.Builder, board entity.Grid, winning *entity.Line) {
	highlighted := make(map[entity.Cell]bool)
	if winning != nil {
		for _, cell := range winning {
			highlighted[cell] = true
		}
	}

	sb.WriteString("    0   1   2\n")

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)

		for column := 0; column < entity.BoardSize; column++ {
			cell := entity.Cell{Row: row, Column: column}

			mark := string(board.At(cell))
			if mark == "" {
				mark = " "
			}

			if highlighted[cell] {
				mark = that.output.String(mark).Bold().Foreground(that.output.Color(colorWin)).String()
			}

			cells = append(cells, mark)
		}

		fmt.Fprintf(sb, "%d   %s\n", row, strings.Join(cells, " | "))

		if row < entity.BoardSize-1 {
			sb.WriteString("   ---+---+---\n")
		}
	}
}

func (that *View) writeGameOver(sb *strings.Builder, state entity.DerivedState) {
	result := "It's a draw!"
	if state.HasWinner() {
		result = state.Winner + " won!"
	}

	banner := that.output.String("Game over! " + result).Bold()
	fmt.Fprintf(sb, "%s\nType 'reset' for a rematch.\n", banner)
}

// writeLog lists the turns most recent first.
func writeLog(sb *strings.Builder, players entity.PlayerRegistry, history []entity.Move) {
	sb.WriteString("Turns:\n")

	for i := len(history) - 1; i >= 0; i-- {
		move := history[i]
		fmt.Fprintf(sb, "%d. %s (%s) selected %d,%d\n", i+1, players.Name(move.Player), move.Player, move.Row, move.Column)
	}
}
