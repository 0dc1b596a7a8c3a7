//go:build windows

package term

import (
	"errors"
	"time"
)

// RawMode on Windows is unimplemented; the editor core detects this via
// Enter's error and falls back to the Unsupported read path, matching the
// spec's "failure during raw-mode entry falls back to UNSUPPORTED" rule.
type RawMode struct {
	fd int
}

func NewRawMode(fd int) *RawMode { return &RawMode{fd: fd} }

func (r *RawMode) Enter() error   { return errors.New("term: raw mode unsupported on windows") }
func (r *RawMode) Restore() error { return nil }
func (r *RawMode) Active() bool   { return false }

func Width(fd int) int { return defaultWidth }

const defaultWidth = 80

func Poll(fd int) (bool, error) { return false, nil }

func PollTimeout(fd int, d time.Duration) (bool, error) { return false, nil }

// InstallExitGuard and SetActiveRestore are no-ops on Windows: RawMode.Enter
// always fails there, so raw mode (and the crash-safety guard protecting it)
// never engages in the first place.
func InstallExitGuard()             {}
func SetActiveRestore(fn func() error) {}
