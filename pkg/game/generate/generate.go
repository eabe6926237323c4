// Package generate turns settings into a finished seed. It owns the retry
// loop: every attempt gets a fresh RNG, and only the seed number carries over
// from one attempt to the next.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ravio/pkg/game/failure"
	"ravio/pkg/game/fill"
	"ravio/pkg/game/hints"
	"ravio/pkg/game/layout"
	"ravio/pkg/game/pools"
	"ravio/pkg/game/progress"
	"ravio/pkg/game/settings"
	"ravio/pkg/game/spheres"
	"ravio/pkg/game/trials"
	"ravio/pkg/game/world"
)

// DefaultMaxAttempts bounds the retry loop when Options leaves it unset.
const DefaultMaxAttempts = 100

// Seed is a finished, completable game.
type Seed struct {
	Seed        uint32
	Hash        string
	RunID       uuid.UUID
	Settings    *settings.Settings
	Trials      trials.Config
	Plan        *layout.Plan
	Playthrough spheres.Playthrough
	Hints       hints.Hints

	// Attempts is how many draws it took to get here, this one included.
	Attempts int
}

// World is the world the seed was filled into.
func (s *Seed) World() *world.World { return s.Plan.World() }

type Options struct {
	// Seed is the first seed tried when HasSeed is set, and the only one when
	// Pinned is set. Without either, every seed comes from NextSeed.
	Seed    uint32
	HasSeed bool
	Pinned  bool

	MaxAttempts int
	Workers     int

	// NextSeed draws the seed for every attempt after the first. Defaults to
	// rand.Uint32.
	NextSeed func() uint32

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.NextSeed == nil {
		o.NextSeed = rand.Uint32
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Attempt runs one independent fill of w under s from seed. A panic inside
// the attempt comes back as an error wrapping failure.ErrInternal.
func Attempt(w *world.World, s *settings.Settings, seed uint32) (out *Seed, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: seed %d: %v", failure.ErrInternal, seed, r)
		}
		attemptDuration.Observe(time.Since(start).Seconds())
		attemptsTotal.WithLabelValues(resultOf(err)).Inc()
	}()

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	t := trials.Select(s.TrialsDoor, rng)
	pl, err := pools.Build(w, s, rng)
	if err != nil {
		return nil, err
	}
	plan, err := fill.Fill(w, s, t, &pl, rng)
	if err != nil {
		return nil, err
	}

	hash, err := Hash(seed, s)
	if err != nil {
		return nil, err
	}
	initial := progress.Start(s, t)
	return &Seed{
		Seed:        seed,
		Hash:        hash,
		Settings:    s,
		Trials:      t,
		Plan:        plan,
		Playthrough: spheres.Search(plan, initial.Clone()),
		Hints:       hints.Generate(plan, initial, rng),
		Attempts:    1,
	}, nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, failure.ErrUnfillable):
		return resultUnfillable
	case errors.Is(err, failure.ErrInternal):
		return resultInternal
	default:
		return resultConfiguration
	}
}

var errFound = errors.New("seed found")

// Generate keeps drawing seeds until one fills or the attempt budget runs
// out. Configuration errors come back unchanged; running out of attempts, or
// a pinned seed failing, comes back as a *failure.FatalError.
func Generate(ctx context.Context, w *world.World, s *settings.Settings, opts Options) (*Seed, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With(slog.String("preset", s.Preset))

	if err := s.Validate(); err != nil {
		generationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if err := preflight(w, s); err != nil {
		generationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if opts.Pinned {
		return pinned(w, s, opts, log)
	}

	var (
		mu       sync.Mutex
		attempts int
		found    *Seed
		last     error
		lastSeed uint32
	)
	next := func() (uint32, bool) {
		mu.Lock()
		defer mu.Unlock()
		if attempts >= opts.MaxAttempts {
			return 0, false
		}
		attempts++
		if attempts == 1 && opts.HasSeed {
			return opts.Seed, true
		}
		return opts.NextSeed(), true
	}

	g, gctx := errgroup.WithContext(ctx)
	for range opts.Workers {
		g.Go(func() error {
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				seed, ok := next()
				if !ok {
					return nil
				}
				res, err := Attempt(w, s, seed)
				if err == nil {
					mu.Lock()
					if found == nil {
						found = res
					}
					mu.Unlock()
					return errFound
				}
				if !failure.Retryable(err) {
					return err
				}
				log.Debug("attempt failed", slog.Uint64("seed", uint64(seed)), slog.String("error", err.Error()))
				mu.Lock()
				last, lastSeed = err, seed
				mu.Unlock()
			}
		})
	}

	err := g.Wait()
	switch {
	case errors.Is(err, errFound):
		found.Attempts = attempts
		found.RunID = uuid.New()
		generationsTotal.WithLabelValues(resultSuccess).Inc()
		attemptsPerSeed.Observe(float64(attempts))
		log.Info("seed generated",
			slog.Uint64("seed", uint64(found.Seed)),
			slog.String("hash", found.Hash),
			slog.Int("attempts", attempts))
		return found, nil
	case err != nil:
		generationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	generationsTotal.WithLabelValues("exhausted").Inc()
	return nil, &failure.FatalError{
		Seed:     lastSeed,
		Attempts: attempts,
		Preset:   s.Preset,
		Err:      last,
	}
}

func pinned(w *world.World, s *settings.Settings, opts Options, log *slog.Logger) (*Seed, error) {
	res, err := Attempt(w, s, opts.Seed)
	if err != nil {
		if !failure.Retryable(err) {
			generationsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		generationsTotal.WithLabelValues("pinned_failed").Inc()
		return nil, &failure.FatalError{
			Seed:     opts.Seed,
			Attempts: 1,
			Pinned:   true,
			Preset:   s.Preset,
			Err:      err,
		}
	}
	res.RunID = uuid.New()
	generationsTotal.WithLabelValues(resultSuccess).Inc()
	attemptsPerSeed.Observe(1)
	log.Info("seed generated",
		slog.Uint64("seed", uint64(res.Seed)),
		slog.String("hash", res.Hash),
		slog.Bool("pinned", true))
	return res, nil
}

// preflight checks, once per run, that s leaves nothing in w out of reach
// even with every item in hand.
func preflight(w *world.World, s *settings.Settings) error {
	pl, err := pools.Build(w, s, rand.New(rand.NewPCG(0, 0)))
	if err != nil {
		return err
	}
	var every trials.Config
	for _, t := range trials.All() {
		every |= 1 << t
	}
	return fill.Preflight(w, s, every, pl)
}
