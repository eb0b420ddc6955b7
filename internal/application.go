package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cpu/internal/config"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/service"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cpu/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	settings, err := arenaSettings(conf)
	if err != nil {
		return fmt.Errorf("invalid arena settings: %w", err)
	}

	bot := service.NewBotService(newRand(conf.Arena.Seed))
	controller := tictactoe.NewMatchController(logger, bot)
	arena := usecase.NewArena(logger, controller, bot, settings)

	tally, err := arena.Run(ctx)
	if err != nil {
		return fmt.Errorf("arena run failed after %d rounds: %w", tally.Rounds(), err)
	}

	log.Info("Results",
		"humanWins", tally.HumanWins,
		"computerWins", tally.ComputerWins,
		"draws", tally.Draws,
	)

	return nil
}

func arenaSettings(conf *config.Config) (usecase.ArenaSettings, error) {
	humanMark, err := conf.Match.GetHumanMark()
	if err != nil {
		return usecase.ArenaSettings{}, err
	}

	difficulty, err := conf.Match.GetDifficulty()
	if err != nil {
		return usecase.ArenaSettings{}, err
	}

	seatDifficulty, err := conf.Arena.GetSeatDifficulty()
	if err != nil {
		return usecase.ArenaSettings{}, err
	}

	first, err := conf.Match.GetStarter()
	if err != nil {
		return usecase.ArenaSettings{}, err
	}

	return usecase.ArenaSettings{
		Rounds:         conf.Arena.Rounds,
		HumanMark:      humanMark,
		First:          first,
		AlternateFirst: !conf.Arena.FixedFirst,
		Difficulty:     difficulty,
		SeatDifficulty: seatDifficulty,
	}, nil
}

// newRand returns nil for seed 0 so the bot seeds itself from entropy.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // it's a game
}
