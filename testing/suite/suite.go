package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"
)

const (
	maxWaitDuration = 120 * time.Second

	seed = 20240917
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Rand is seeded identically for every test so bot decisions are reproducible.
	Rand *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(seed, seed)), //nolint: gosec // deterministic test source
	}
}
