package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
)

// Difficulty selects how the computer picks its moves.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (that Difficulty) Valid() bool {
	return that <= Hard
}

func (that Difficulty) String() string {
	switch that {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", uint8(that))
	}
}

// ParseDifficulty accepts easy, med, medium and hard in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "med", "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, s)
	}
}
