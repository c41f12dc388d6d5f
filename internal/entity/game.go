package entity

import "strings"

type Symbol string

const (
	PlayerX Symbol = "X"
	PlayerO Symbol = "O"

	EmptyCell Symbol = ""
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

const (
	BoardSize = 3
	MaxTurns  = BoardSize * BoardSize
)

// WinCombos lists every winning line in evaluation order: rows, then columns, then diagonals.
var WinCombos = []Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// ParseSymbol accepts "x" or "o" in any case.
func ParseSymbol(raw string) (Symbol, bool) {
	symbol := Symbol(strings.ToUpper(strings.TrimSpace(raw)))
	return symbol, symbol.IsValid()
}

func (that Symbol) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other mark.
func (that Symbol) Opponent() Symbol {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (that Cell) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Column >= 0 && that.Column < BoardSize
}

type Line [3]Cell

// Move is one accepted placement. Moves are never mutated after they enter a history.
type Move struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Player Symbol `json:"player"`
}

func (that Move) Cell() Cell {
	return Cell{Row: that.Row, Column: that.Column}
}

type Grid [BoardSize][BoardSize]Symbol

func (that *Grid) At(cell Cell) Symbol {
	return that[cell.Row][cell.Column]
}

// Filled counts the non-empty cells.
func (that *Grid) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				filled++
			}
		}
	}
	return filled
}

// DerivedState is recomputed from the history and the registry on every read.
type DerivedState struct {
	MatchID      string         `json:"match_id"`
	Board        Grid           `json:"board"`
	ActivePlayer Symbol         `json:"active_player"`
	Winner       string         `json:"winner,omitempty"`
	WinnerSymbol Symbol         `json:"winner_symbol,omitempty"`
	WinningLine  *Line          `json:"winning_line,omitempty"`
	IsDraw       bool           `json:"is_draw"`
	Status       string         `json:"status"`
	Players      PlayerRegistry `json:"players"`
	Turns        int            `json:"turns"`
}

func (that *DerivedState) HasWinner() bool {
	return that.WinnerSymbol != EmptyCell
}

func (that *DerivedState) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *DerivedState) IsInProgress() bool {
	return that.Status == StatusInProgress
}
