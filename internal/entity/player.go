package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	DefaultNameX = "Player 1"
	DefaultNameO = "Player 2"
)

// PlayerRegistry maps each mark to its display name. It always holds exactly the two marks.
type PlayerRegistry struct {
	X string `json:"X"`
	O string `json:"O"`
}

func NewPlayerRegistry() PlayerRegistry {
	return PlayerRegistry{X: DefaultNameX, O: DefaultNameO}
}

// NewPlayerRegistryWithNames falls back to the default name for any blank entry.
func NewPlayerRegistryWithNames(nameX, nameO string) PlayerRegistry {
	registry := NewPlayerRegistry()

	if name := strings.TrimSpace(nameX); name != "" {
		registry.X = name
	}
	if name := strings.TrimSpace(nameO); name != "" {
		registry.O = name
	}

	return registry
}

func (that PlayerRegistry) Name(symbol Symbol) string {
	switch symbol {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return ""
	}
}

// Rename stores the trimmed name. The registry is left untouched on error.
func (that *PlayerRegistry) Rename(symbol Symbol, name string) error {
	if !symbol.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, string(symbol))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: symbol %s", apperror.ErrInvalidName, symbol)
	}

	if symbol == PlayerX {
		that.X = name
	} else {
		that.O = name
	}

	return nil
}
