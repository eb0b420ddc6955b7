package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
)

// Starter says who opens the match.
type Starter uint8

const (
	HumanFirst Starter = iota + 1
	ComputerFirst
)

// Observer is notified synchronously, in registration order, of every applied move and
// of the end of each match.
type Observer interface {
	OnMove(snapshot entity.Snapshot, mark entity.Mark, cell int)
	OnMatchEnd(snapshot entity.Snapshot)
}

type moveChooser interface {
	ChooseMove(board entity.Board, self entity.Mark, difficulty entity.Difficulty) (int, error)
}

type match struct {
	id          string
	board       entity.Board
	humanMark   entity.Mark
	cpuMark     entity.Mark
	turn        entity.Mark
	difficulty  entity.Difficulty
	state       entity.State
	outcome     entity.Outcome
	winningLine []int
	moves       int
}

// MatchController owns the board of the current match and is the only thing that mutates it.
// It is not safe for concurrent use; the host serialises calls.
type MatchController struct {
	logger    *slog.Logger
	bot       moveChooser
	observers []Observer

	newID func() string
	match match
}

func NewMatchController(logger *slog.Logger, bot moveChooser, observers ...Observer) *MatchController {
	return &MatchController{
		logger:    logger.With("component", "match_controller"),
		bot:       bot,
		observers: observers,
		newID:     uuid.NewString,
	}
}

func (that *MatchController) AddObserver(observer Observer) {
	that.observers = append(that.observers, observer)
}

// Start discards any previous match and begins a new one.
func (that *MatchController) Start(humanMark entity.Mark, first Starter, difficulty entity.Difficulty) (entity.Snapshot, error) {
	if !humanMark.Valid() {
		return that.Snapshot(), fmt.Errorf("%w: %v", apperror.ErrInvalidMark, humanMark)
	}

	if !difficulty.Valid() {
		return that.Snapshot(), fmt.Errorf("%w: %v", apperror.ErrUnknownDifficulty, difficulty)
	}

	newMatch := match{
		humanMark:  humanMark,
		cpuMark:    humanMark.Opponent(),
		difficulty: difficulty,
	}

	switch first {
	case HumanFirst:
		newMatch.turn = newMatch.humanMark
		newMatch.state = entity.AwaitingHumanMove
	case ComputerFirst:
		newMatch.turn = newMatch.cpuMark
		newMatch.state = entity.AwaitingComputerMove
	default:
		return that.Snapshot(), fmt.Errorf("%w: %d", apperror.ErrInvalidStarter, first)
	}

	newMatch.id = that.newID()
	that.match = newMatch

	that.logger.Info("match started",
		"matchID", newMatch.id,
		"human", humanMark.String(),
		"difficulty", difficulty.String(),
		"state", newMatch.state.String(),
	)

	return that.Snapshot(), nil
}

func (that *MatchController) ApplyHumanMove(cell int) (entity.Snapshot, error) {
	if err := that.confirmTurn(entity.AwaitingHumanMove); err != nil {
		return that.Snapshot(), err
	}

	if err := that.match.board.Place(cell, that.match.humanMark); err != nil {
		return that.Snapshot(), fmt.Errorf("invalid turn: %w", err)
	}

	that.afterMove(that.match.humanMark, cell, entity.AwaitingComputerMove)

	return that.Snapshot(), nil
}

func (that *MatchController) ApplyComputerTurn() (entity.Snapshot, error) {
	if err := that.confirmTurn(entity.AwaitingComputerMove); err != nil {
		return that.Snapshot(), err
	}

	log := that.logger.With("method", "ApplyComputerTurn", "matchID", that.match.id)

	cell, err := that.bot.ChooseMove(that.match.board, that.match.cpuMark, that.match.difficulty)
	if errors.Is(err, apperror.ErrNoAvailableMoves) {
		log.Warn("bot has no move, resolving as draw", "board", that.match.board.String())
		that.finish(entity.Draw, nil)

		return that.Snapshot(), nil
	}

	if err != nil {
		return that.Snapshot(), fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = that.match.board.Place(cell, that.match.cpuMark); err != nil {
		return that.Snapshot(), fmt.Errorf("bot chose an illegal move: %w", err)
	}

	that.afterMove(that.match.cpuMark, cell, entity.AwaitingHumanMove)

	return that.Snapshot(), nil
}

// Snapshot returns a copy of the current match that shares nothing with the controller.
func (that *MatchController) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		MatchID:     that.match.id,
		Board:       that.match.board,
		HumanMark:   that.match.humanMark,
		CPUMark:     that.match.cpuMark,
		Turn:        that.match.turn,
		Difficulty:  that.match.difficulty,
		State:       that.match.state,
		Outcome:     that.match.outcome,
		WinningLine: slices.Clone(that.match.winningLine),
		Moves:       that.match.moves,
	}
}

func (that *MatchController) confirmTurn(want entity.State) error {
	switch that.match.state {
	case entity.NotStarted:
		return apperror.ErrGameIsNotStarted
	case entity.Terminal:
		return apperror.ErrGameFinished
	case want:
		return nil
	default:
		return apperror.ErrNotYourTurn
	}
}

// afterMove runs the termination check for the mark that just moved.
func (that *MatchController) afterMove(mark entity.Mark, cell int, next entity.State) {
	that.match.moves++
	that.match.turn = mark.Opponent()

	that.logger.Debug("move applied",
		"matchID", that.match.id,
		"mark", mark.String(),
		"cell", cell,
		"board", that.match.board.String(),
	)

	outcome := entity.NoOutcome
	line, won := that.match.board.WinningLine(mark)

	switch {
	case won && mark == that.match.humanMark:
		outcome = entity.HumanWin
	case won:
		outcome = entity.ComputerWin
	case that.match.board.IsFull():
		outcome = entity.Draw
	default:
		that.match.state = next
	}

	if outcome == entity.NoOutcome {
		that.notifyMove(mark, cell)
		return
	}

	var winningLine []int
	if won {
		winningLine = line[:]
	}

	that.setTerminal(outcome, winningLine)
	that.notifyMove(mark, cell)
	that.notifyEnd()
}

func (that *MatchController) finish(outcome entity.Outcome, winningLine []int) {
	that.setTerminal(outcome, winningLine)
	that.notifyEnd()
}

func (that *MatchController) setTerminal(outcome entity.Outcome, winningLine []int) {
	that.match.state = entity.Terminal
	that.match.outcome = outcome
	that.match.winningLine = winningLine

	that.logger.Info("match finished",
		"matchID", that.match.id,
		"outcome", outcome.String(),
		"moves", that.match.moves,
		"board", that.match.board.String(),
	)
}

func (that *MatchController) notifyMove(mark entity.Mark, cell int) {
	snapshot := that.Snapshot()
	for _, observer := range that.observers {
		observer.OnMove(snapshot, mark, cell)
	}
}

func (that *MatchController) notifyEnd() {
	snapshot := that.Snapshot()
	for _, observer := range that.observers {
		observer.OnMatchEnd(snapshot)
	}
}
