// Package failure defines the error kinds shared by the generator.
//
// Configuration errors describe a bad world or bad settings and are never
// retried. Unfillable errors describe a single bad random draw and are
// consumed by the retry controller. FatalError is what the controller hands
// back once it gives up.
package failure

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned for malformed worlds, pools or settings.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnfillable is returned when one placement attempt cannot complete.
	ErrUnfillable = errors.New("unfillable")

	// ErrInternal marks a recovered panic inside an attempt.
	ErrInternal = errors.New("internal error")
)

// Configuration returns an error wrapping ErrConfiguration.
func Configuration(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// Unfillable returns an error wrapping ErrUnfillable.
func Unfillable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnfillable, fmt.Sprintf(format, args...))
}

// Retryable reports whether err is local to a single attempt.
func Retryable(err error) bool {
	return errors.Is(err, ErrUnfillable) || errors.Is(err, ErrInternal)
}

// FatalError is returned when generation gives up, either because a pinned
// seed failed or because every attempt failed.
type FatalError struct {
	Seed     uint32
	Attempts int
	Pinned   bool
	Preset   string
	Err      error
}

func (e *FatalError) Error() string {
	preset := e.Preset
	if preset == "" {
		preset = "custom"
	}
	if e.Pinned {
		return fmt.Sprintf("seed %d failed with preset %s: %v", e.Seed, preset, e.Err)
	}
	return fmt.Sprintf("no completable seed after %d attempts with preset %s (last seed %d): %v",
		e.Attempts, preset, e.Seed, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
