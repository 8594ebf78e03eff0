//go:build !windows

package privilege

import (
	"os"
	"testing"
)

func TestElevated(t *testing.T) {
	want := os.Geteuid() == 0
	if got := Elevated(); got != want {
		t.Errorf("Elevated() = %v, want %v for euid %d", got, want, os.Geteuid())
	}

	// Stable across calls.
	if Elevated() != Elevated() {
		t.Error("Elevated() is not stable")
	}
}
