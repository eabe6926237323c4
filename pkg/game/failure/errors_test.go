package failure

import (
	"errors"
	"strings"
	"testing"
)

func TestKinds(t *testing.T) {
	cfg := Configuration("duplicate check %q", "A")
	if !errors.Is(cfg, ErrConfiguration) {
		t.Errorf("Configuration() does not wrap ErrConfiguration")
	}
	if Retryable(cfg) {
		t.Errorf("Retryable(configuration) = true, want false")
	}
	if !strings.Contains(cfg.Error(), `"A"`) {
		t.Errorf("Configuration().Error() = %q, want it to name the check", cfg.Error())
	}

	if !Retryable(Unfillable("no room")) {
		t.Errorf("Retryable(unfillable) = false, want true")
	}
}

func TestFatalError_Unwrap(t *testing.T) {
	err := error(&FatalError{Seed: 7, Attempts: 100, Err: Unfillable("stuck")})
	if !errors.Is(err, ErrUnfillable) {
		t.Errorf("FatalError does not unwrap to ErrUnfillable")
	}
	var fatal *FatalError
	if !errors.As(err, &fatal) || fatal.Attempts != 100 {
		t.Errorf("errors.As(FatalError) = %v", fatal)
	}
	if !strings.Contains(err.Error(), "100 attempts") {
		t.Errorf("Error() = %q, want attempt count", err.Error())
	}
}
