package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

const (
	maxWaitDuration = 30 * time.Second

	seedHi = 20240917
	seedLo = 1
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Random *rand.Rand
	Rules  entity.Rules
}

// New returns a context bounded by the test lifetime and a suite with a quiet logger and a
// deterministic random source.
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
		Random: rand.New(rand.NewPCG(seedHi, seedLo)),
		Rules:  entity.DefaultRules(),
	}
}

// WithSeed swaps the random source for one seeded with seed.
func (that *Suite) WithSeed(seed uint64) *Suite {
	that.Random = rand.New(rand.NewPCG(seed, seedLo))
	return that
}
