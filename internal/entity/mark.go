package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

// Mark is the symbol a player occupies cells with.
type Mark uint8

const (
	X Mark = iota + 1
	O
)

func (that Mark) Valid() bool {
	return that == X || that == O
}

// Opponent returns the other mark.
func (that Mark) Opponent() Mark {
	if that == X {
		return O
	}
	return X
}

// Cell converts the mark into the cell state it produces on the board.
func (that Mark) Cell() Cell {
	return Cell(that)
}

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	CellX
	CellO
)

// Mark returns the mark occupying the cell, false for an empty cell.
func (that Cell) Mark() (Mark, bool) {
	switch that {
	case CellX:
		return X, true
	case CellO:
		return O, true
	default:
		return 0, false
	}
}

func (that Cell) String() string {
	if mark, ok := that.Mark(); ok {
		return mark.String()
	}
	return "-"
}
