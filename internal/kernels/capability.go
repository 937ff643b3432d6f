package kernels

import (
	"os"
	"strings"
)

// Backend identifies the implementation used for accelerated kernels.
type Backend uint8

const (
	// Generic represents pure Go loops.
	Generic Backend = iota
	// VecMath represents the algo-vecmath float64 block kernels.
	VecMath
)

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case Generic:
		return "generic"
	case VecMath:
		return "vecmath"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "vecmath":
		return VecMath, true
	default:
		return Generic, false
	}
}

// EnvBackend is the environment variable consulted once at start-up.
const EnvBackend = "BLOCKVEC_KERNEL"

// Package-level state - initialized once at package init.
var (
	active      Backend
	hasOverride bool

	// Set by platform-specific init.
	hasSIMD bool
)

func initCapabilities() {
	if override := os.Getenv(EnvBackend); override != "" {
		if b, ok := ParseBackend(override); ok {
			hasOverride = true
			active = b
			return
		}
	}

	active = selectBest()
}

func selectBest() Backend {
	if hasSIMD {
		return VecMath
	}
	return Generic
}

// Active returns the currently active backend.
func Active() Backend {
	return active
}

// IsOverridden returns true if BLOCKVEC_KERNEL was set to a valid backend.
func IsOverridden() bool {
	return hasOverride
}

// HasSIMD reports whether the CPU exposes a SIMD unit the accelerated backend uses.
func HasSIMD() bool {
	return hasSIMD
}

// SetBackend forces b and returns a function restoring the previous backend.
// It is meant for tests and benchmarks and must not race with kernel calls.
func SetBackend(b Backend) (restore func()) {
	prev := active
	active = b
	return func() { active = prev }
}
