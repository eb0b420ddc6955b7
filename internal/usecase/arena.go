package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
)

var ErrRoundDidNotTerminate = errors.New("round did not terminate")

// HumanSeat plays the human side of a match in place of a person.
type HumanSeat interface {
	ChooseMove(board entity.Board, self entity.Mark, difficulty entity.Difficulty) (int, error)
}

type matchController interface {
	Start(humanMark entity.Mark, first tictactoe.Starter, difficulty entity.Difficulty) (entity.Snapshot, error)
	ApplyHumanMove(cell int) (entity.Snapshot, error)
	ApplyComputerTurn() (entity.Snapshot, error)
	AddObserver(observer tictactoe.Observer)
}

type ArenaSettings struct {
	Rounds         int
	HumanMark      entity.Mark
	First          tictactoe.Starter
	AlternateFirst bool
	Difficulty     entity.Difficulty
	SeatDifficulty entity.Difficulty
}

// Arena plays repeated matches between the computer and a scripted human seat.
type Arena struct {
	logger     *slog.Logger
	controller matchController
	seat       HumanSeat
	settings   ArenaSettings
	tally      *Tally
}

func NewArena(logger *slog.Logger, controller matchController, seat HumanSeat, settings ArenaSettings) *Arena {
	tally := &Tally{}
	controller.AddObserver(tally)

	return &Arena{
		logger:     logger.With("component", "arena"),
		controller: controller,
		seat:       seat,
		settings:   settings,
		tally:      tally,
	}
}

// Run plays all configured rounds. On error the tally of the rounds finished so far is returned.
func (that *Arena) Run(ctx context.Context) (Tally, error) {
	log := that.logger.With("method", "Run")

	that.tally.Reset()

	log.Info("arena started",
		"rounds", that.settings.Rounds,
		"difficulty", that.settings.Difficulty.String(),
		"seatDifficulty", that.settings.SeatDifficulty.String(),
	)

	for round := range that.settings.Rounds {
		if err := that.playRound(ctx, that.starter(round)); err != nil {
			return *that.tally, fmt.Errorf("round %d: %w", round+1, err)
		}
	}

	log.Info("arena finished",
		"humanWins", that.tally.HumanWins,
		"computerWins", that.tally.ComputerWins,
		"draws", that.tally.Draws,
	)

	return *that.tally, nil
}

func (that *Arena) starter(round int) tictactoe.Starter {
	if !that.settings.AlternateFirst || round%2 == 0 {
		return that.settings.First
	}

	if that.settings.First == tictactoe.HumanFirst {
		return tictactoe.ComputerFirst
	}
	return tictactoe.HumanFirst
}

func (that *Arena) playRound(ctx context.Context, first tictactoe.Starter) error {
	snapshot, err := that.controller.Start(that.settings.HumanMark, first, that.settings.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	for ply := 0; !snapshot.IsOver(); ply++ {
		if ply >= entity.BoardSize {
			return fmt.Errorf("%w: match %s", ErrRoundDidNotTerminate, snapshot.MatchID)
		}

		if err = ctx.Err(); err != nil {
			return fmt.Errorf("arena interrupted: %w", err)
		}

		snapshot, err = that.step(snapshot)
		if err != nil {
			return err
		}
	}

	return nil
}

func (that *Arena) step(snapshot entity.Snapshot) (entity.Snapshot, error) {
	switch snapshot.State {
	case entity.AwaitingHumanMove:
		cell, err := that.seat.ChooseMove(snapshot.Board, snapshot.HumanMark, that.settings.SeatDifficulty)
		if err != nil {
			return snapshot, fmt.Errorf("seat failed to choose a move: %w", err)
		}

		next, err := that.controller.ApplyHumanMove(cell)
		if err != nil {
			return next, fmt.Errorf("failed to apply seat move: %w", err)
		}

		return next, nil
	case entity.AwaitingComputerMove:
		next, err := that.controller.ApplyComputerTurn()
		if err != nil {
			return next, fmt.Errorf("failed to apply computer turn: %w", err)
		}

		return next, nil
	default:
		return snapshot, fmt.Errorf("%w: unexpected state %s", ErrRoundDidNotTerminate, snapshot.State)
	}
}
