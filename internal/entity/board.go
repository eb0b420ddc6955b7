package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

const BoardSize = 9

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid stored row-major: row = i/3, column = i%3.
// It is a value type, copying a Board copies its cells.
type Board [BoardSize]Cell

func inRange(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// IsEmpty reports whether the cell holds no mark. Out-of-range cells are never empty.
func (that Board) IsEmpty(cell int) bool {
	return inRange(cell) && that[cell] == Empty
}

// Place puts mark on cell. The board is unchanged when an error is returned.
func (that *Board) Place(cell int, mark Mark) error {
	if !inRange(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !mark.Valid() {
		return fmt.Errorf("%w: %v", apperror.ErrInvalidMark, mark)
	}

	if that[cell] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark.Cell()

	return nil
}

// Clear empties a cell. Only search code undoing its own trial moves should call it.
func (that *Board) Clear(cell int) {
	if inRange(cell) {
		that[cell] = Empty
	}
}

func (that Board) Winner(mark Mark) bool {
	_, ok := that.WinningLine(mark)
	return ok
}

// WinningLine returns the first triple fully owned by mark.
func (that Board) WinningLine(mark Mark) ([3]int, bool) {
	want := mark.Cell()
	if !mark.Valid() {
		return [3]int{}, false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == want && that[combo[1]] == want && that[combo[2]] == want {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}
	return true
}

// EmptyCells lists the empty indices in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that Board) Count(mark Mark) int {
	want := mark.Cell()
	if !mark.Valid() {
		return 0
	}

	count := 0
	for _, cell := range that {
		if cell == want {
			count++
		}
	}
	return count
}

func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(cell.String())
	}
	return sb.String()
}
