package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// DeriveBoard replays the history, oldest move first, onto an empty grid.
func DeriveBoard(history []entity.Move) entity.Grid {
	var board entity.Grid

	for _, move := range history {
		board[move.Row][move.Column] = move.Player
	}

	return board
}

// DeriveActivePlayer - X opens, then the marks alternate.
func DeriveActivePlayer(history []entity.Move) entity.Symbol {
	if len(history) == 0 {
		return entity.PlayerX
	}

	return history[len(history)-1].Player.Opponent()
}

// DeriveWinner returns the display name of the winner, or "" when no line is complete.
func DeriveWinner(board entity.Grid, registry entity.PlayerRegistry) string {
	_, symbol, won := findWinningLine(board)
	if !won {
		return ""
	}

	return registry.Name(symbol)
}

func IsDraw(history []entity.Move, winner string) bool {
	return len(history) == entity.MaxTurns && winner == ""
}

// findWinningLine stops at the first complete line in entity.WinCombos order.
func findWinningLine(board entity.Grid) (entity.Line, entity.Symbol, bool) {
	for _, combo := range entity.WinCombos {
		a, b, c := board.At(combo[0]), board.At(combo[1]), board.At(combo[2])
		if a != entity.EmptyCell && a == b && b == c {
			return combo, a, true
		}
	}

	return entity.Line{}, entity.EmptyCell, false
}
