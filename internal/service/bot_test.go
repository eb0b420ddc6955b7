package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/testing/suite"
)

const (
	e = entity.Empty
	x = entity.CellX
	o = entity.CellO
)

// drawnBoard is full with no winner.
var drawnBoard = entity.Board{
	x, o, x,
	x, o, o,
	o, x, x,
}

func TestBotService_BestMove(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Rand)

	t.Run("Takes the only empty cell", func(t *testing.T) {
		for cell := range entity.BoardSize {
			// Given: a drawn board with one cell taken back
			board := drawnBoard
			mark, _ := board[cell].Mark()
			board.Clear(cell)
			require.False(t, board.Winner(entity.X))
			require.False(t, board.Winner(entity.O))

			// When: the side that owned it searches
			move := bot.BestMove(board, mark)

			// Then: that cell is returned
			assert.Equal(t, cell, move)
		}
	})

	t.Run("Completes its own line before anything else", func(t *testing.T) {
		// Given: O to move with O on 3 and 4, X threatening the top row
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: O searches
		move := bot.BestMove(board, entity.O)

		// Then: O wins at 5
		assert.Equal(t, 5, move)
	})

	t.Run("Blocks the opponent's line", func(t *testing.T) {
		// Given: X threatens 2 and O has no win of its own
		board := entity.Board{
			x, x, e,
			o, e, e,
			e, e, e,
		}

		// When: O searches
		move := bot.BestMove(board, entity.O)

		// Then: O blocks at 2
		assert.Equal(t, 2, move)
	})

	t.Run("Answers a center opening with a corner", func(t *testing.T) {
		// Given: the human opened in the center
		var board entity.Board
		require.NoError(t, board.Place(4, entity.X))

		// When: the computer searches
		move := bot.BestMove(board, entity.O)

		// Then: a corner is chosen, the lowest index among equal scores
		assert.Contains(t, []int{0, 2, 6, 8}, move)
		assert.Equal(t, 0, move)
	})

	t.Run("Prefers the faster win", func(t *testing.T) {
		// Given: X can win now at 2, or set up a later win elsewhere
		board := entity.Board{
			x, x, e,
			o, o, e,
			x, o, e,
		}

		// When: X searches
		move := bot.BestMove(board, entity.X)

		// Then: the immediate win is taken
		assert.Equal(t, 2, move)
	})

	t.Run("Opens in the first cell on an empty board", func(t *testing.T) {
		var board entity.Board

		assert.Equal(t, 0, bot.BestMove(board, entity.X))
	})

	t.Run("Leaves the caller's board untouched", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, e, e,
		}
		before := board

		bot.BestMove(board, entity.X)
		bot.WorstMove(board, entity.X)

		assert.Equal(t, before, board)
	})

	t.Run("Returns -1 on a full board", func(t *testing.T) {
		assert.Equal(t, -1, bot.BestMove(drawnBoard, entity.X))
	})
}

func TestBotService_BestMoveNeverLoses(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Rand)

	for _, cpu := range []entity.Mark{entity.X, entity.O} {
		for _, humanFirst := range []bool{true, false} {
			// Given: every possible human line against the computer's best replies
			var board entity.Board

			// Then: the human never completes a triple
			exploreHumanLines(t, bot, board, cpu.Opponent(), cpu, humanFirst)
		}
	}
}

func exploreHumanLines(t *testing.T, bot BotService, board entity.Board, human, cpu entity.Mark, humanToMove bool) {
	t.Helper()

	if board.Winner(human) {
		t.Fatalf("computer %v lost: %s", cpu, board)
	}

	if board.Winner(cpu) || board.IsFull() {
		return
	}

	if humanToMove {
		for _, cell := range board.EmptyCells() {
			next := board
			require.NoError(t, next.Place(cell, human))
			exploreHumanLines(t, bot, next, human, cpu, false)
		}
		return
	}

	cell := bot.BestMove(board, cpu)
	require.NotEqual(t, -1, cell)

	next := board
	require.NoError(t, next.Place(cell, cpu))
	exploreHumanLines(t, bot, next, human, cpu, true)
}

func TestBotService_SelfPlayDraws(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Rand)

	for _, first := range []entity.Mark{entity.X, entity.O} {
		// Given: both sides play their best move from an empty board
		var board entity.Board
		mover := first

		for !board.IsFull() && !board.Winner(entity.X) && !board.Winner(entity.O) {
			cell := bot.BestMove(board, mover)
			require.NoError(t, board.Place(cell, mover))
			mover = mover.Opponent()
		}

		// Then: the game is always a draw
		assert.False(t, board.Winner(entity.X), board.String())
		assert.False(t, board.Winner(entity.O), board.String())
		assert.True(t, board.IsFull())
	}
}

func TestBotService_WorstMove(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Rand)

	t.Run("Does not take an immediate win when the game can stay open", func(t *testing.T) {
		// Given: O could win at 2
		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}

		// When: O plays its worst move
		move := bot.WorstMove(board, entity.O)

		// Then: O does not win, and X is left with an immediate win
		require.NotEqual(t, 2, move)

		next := board
		require.NoError(t, next.Place(move, entity.O))
		assert.False(t, next.Winner(entity.O))
		assert.True(t, hasImmediateWin(next, entity.X), next.String())
	})

	t.Run("Gives up a block it could make", func(t *testing.T) {
		// Given: X threatens 2
		board := entity.Board{
			x, x, e,
			o, e, e,
			e, e, e,
		}

		// When: O plays its worst move
		move := bot.WorstMove(board, entity.O)

		// Then: the threat is left open
		assert.NotEqual(t, 2, move)
	})

	t.Run("Takes the only empty cell", func(t *testing.T) {
		board := drawnBoard
		board.Clear(4)

		assert.Equal(t, 4, bot.WorstMove(board, entity.O))
	})

	t.Run("Falls back to -1 on a full board", func(t *testing.T) {
		assert.Equal(t, -1, bot.WorstMove(drawnBoard, entity.O))
	})
}

func hasImmediateWin(board entity.Board, mark entity.Mark) bool {
	for _, cell := range board.EmptyCells() {
		next := board
		if err := next.Place(cell, mark); err == nil && next.Winner(mark) {
			return true
		}
	}
	return false
}

func TestBotService_RandomMove(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Rand)

	t.Run("Only picks empty cells and reaches all of them", func(t *testing.T) {
		board := entity.Board{
			x, e, o,
			e, x, e,
			o, e, e,
		}
		seen := map[int]int{}

		for range 2000 {
			cell := bot.RandomMove(board)
			require.True(t, board.IsEmpty(cell), "cell %d", cell)
			seen[cell]++
		}

		// Then: each of the 5 empty cells is drawn roughly 400 times
		require.Len(t, seen, 5)
		for cell, count := range seen {
			assert.InDelta(t, 400, count, 120, "cell %d", cell)
		}
	})

	t.Run("Returns -1 on a full board", func(t *testing.T) {
		assert.Equal(t, -1, bot.RandomMove(drawnBoard))
	})
}

func TestBotService_ChooseMove(t *testing.T) {
	t.Run("Hard always plays the best move", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Rand)

		board := entity.Board{
			x, x, e,
			o, e, e,
			e, e, e,
		}

		for range 20 {
			move, err := bot.ChooseMove(board, entity.O, entity.Hard)

			require.NoError(t, err)
			assert.Equal(t, 2, move)
		}
	})

	t.Run("Easy always plays the worst move", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Rand)

		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}
		worst := bot.WorstMove(board, entity.O)

		for range 20 {
			move, err := bot.ChooseMove(board, entity.O, entity.Easy)

			require.NoError(t, err)
			assert.Equal(t, worst, move)
		}
	})

	t.Run("Medium plays the best move about half of the time", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Rand)

		// Given: O wins at 2; the other three empty cells do not
		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}

		const trials = 4000
		wins := 0

		for range trials {
			move, err := bot.ChooseMove(board, entity.O, entity.Medium)
			require.NoError(t, err)
			require.True(t, board.IsEmpty(move))

			if move == 2 {
				wins++
			}
		}

		// Then: 5/10 optimal plus 1/4 of the 5/10 random draws land on 2 => 62.5%
		assert.InDelta(t, 0.625, float64(wins)/trials, 0.05)
	})

	t.Run("Every difficulty reports no move on a full board", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Rand)

		for _, difficulty := range []entity.Difficulty{entity.Easy, entity.Medium, entity.Hard} {
			move, err := bot.ChooseMove(drawnBoard, entity.X, difficulty)

			require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
			assert.Equal(t, -1, move)
		}
	})

	t.Run("Rejects unknown difficulty and invalid mark", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBotService(st.Rand)

		var board entity.Board

		_, err := bot.ChooseMove(board, entity.X, entity.Difficulty(9))
		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)

		_, err = bot.ChooseMove(board, entity.Mark(0), entity.Hard)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Entropy-seeded bot still plays legal moves", func(t *testing.T) {
		bot := NewBotService(nil)

		var board entity.Board
		move, err := bot.ChooseMove(board, entity.X, entity.Medium)

		require.NoError(t, err)
		assert.True(t, board.IsEmpty(move))
	})
}
