package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
)

const (
	winScore = 10

	// Medium plays the best move when a roll out of mediumRolls is above mediumThreshold.
	mediumRolls     = 10
	mediumThreshold = 4
)

// BotService picks moves for the side given as self. The board is taken by value and
// never modified.
type BotService interface {
	ChooseMove(board entity.Board, self entity.Mark, difficulty entity.Difficulty) (int, error)

	BestMove(board entity.Board, self entity.Mark) int
	WorstMove(board entity.Board, self entity.Mark) int
	RandomMove(board entity.Board) int
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService returns a bot drawing from rnd, or from an entropy-seeded source when rnd is nil.
func NewBotService(rnd *rand.Rand) BotService {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // it's a game
	}

	return &botService{rnd: rnd}
}

func (that *botService) ChooseMove(board entity.Board, self entity.Mark, difficulty entity.Difficulty) (int, error) {
	if !self.Valid() {
		return -1, fmt.Errorf("%w: %v", apperror.ErrInvalidMark, self)
	}

	var cell int

	switch difficulty {
	case entity.Hard:
		cell = that.BestMove(board, self)
	case entity.Easy:
		cell = that.WorstMove(board, self)
	case entity.Medium:
		if that.rnd.IntN(mediumRolls) > mediumThreshold {
			cell = that.BestMove(board, self)
		} else {
			cell = that.RandomMove(board)
		}
	default:
		return -1, fmt.Errorf("%w: %v", apperror.ErrUnknownDifficulty, difficulty)
	}

	if cell == -1 {
		cell = that.RandomMove(board)
	}

	if cell == -1 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return cell, nil
}

// BestMove returns the empty cell with the highest minimax score, the lowest index on ties.
func (that *botService) BestMove(board entity.Board, self entity.Mark) int {
	return rank(board, self, func(score, chosen int) bool { return score > chosen })
}

// WorstMove returns the empty cell with the lowest minimax score, so Easy walks into losses.
func (that *botService) WorstMove(board entity.Board, self entity.Mark) int {
	cell := rank(board, self, func(score, chosen int) bool { return score < chosen })
	if cell == -1 {
		return that.RandomMove(board)
	}

	return cell
}

func (that *botService) RandomMove(board entity.Board) int {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return -1
	}

	return cells[that.rnd.IntN(len(cells))]
}

// rank scores every empty cell for self and keeps the first one that prefer ranks above
// the current choice.
func rank(board entity.Board, self entity.Mark, prefer func(score, chosen int) bool) int {
	if !self.Valid() {
		return -1
	}

	s := &search{
		board:    board,
		self:     self,
		opponent: self.Opponent(),
	}

	chosen, chosenScore := -1, 0
	for cell := range entity.BoardSize {
		if !s.board.IsEmpty(cell) {
			continue
		}

		s.board[cell] = self.Cell()
		score := s.minimax(0, false)
		s.board.Clear(cell)

		if chosen == -1 || prefer(score, chosenScore) {
			chosen, chosenScore = cell, score
		}
	}

	return chosen
}

// search owns the scratch grid that minimax plays trial moves on and takes back.
type search struct {
	board    entity.Board
	self     entity.Mark
	opponent entity.Mark
}

func (that *search) minimax(depth int, selfToMove bool) int {
	if that.board.Winner(that.self) {
		return winScore - depth
	}

	if that.board.Winner(that.opponent) {
		return depth - winScore
	}

	if that.board.IsFull() {
		return 0
	}

	mover := that.opponent
	best := winScore + 1
	if selfToMove {
		mover = that.self
		best = -winScore - 1
	}

	for cell := range entity.BoardSize {
		if !that.board.IsEmpty(cell) {
			continue
		}

		that.board[cell] = mover.Cell()
		score := that.minimax(depth+1, !selfToMove)
		that.board.Clear(cell)

		if selfToMove {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
