package terminal

import (
	"bytes"
	"testing"
)

func TestWidth_NonTerminalFallsBack(t *testing.T) {
	var buf bytes.Buffer
	if got := Width(&buf); got != DefaultWidth {
		t.Errorf("Width(buffer) = %d, want %d", got, DefaultWidth)
	}
	if IsTerminal(&buf) {
		t.Errorf("IsTerminal(buffer) = true, want false")
	}
}
