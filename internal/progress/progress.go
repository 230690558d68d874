// Package progress shows a lightweight wait indicator for long engine
// calls. On non-interactive terminals it degrades to nothing.
package progress

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

const defaultInterval = 100 * time.Millisecond

// For mocking in tests
var isTerminal = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }

// Spinner is an animated wait indicator. A disabled instance is a no-op,
// so callers never need to branch.
type Spinner struct {
	s *spinner.Spinner
}

// New returns a spinner showing the given message. It is disabled when
// noProgress is set or stderr is not a terminal. A non-positive interval
// selects the default update rate.
func New(message string, noProgress bool, interval time.Duration) *Spinner {
	if noProgress || !isTerminal() {
		return &Spinner{}
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	s := spinner.New(spinner.CharSets[9], interval, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	return &Spinner{s: s}
}

// Start begins the animation.
func (sp *Spinner) Start() {
	if sp.s != nil {
		sp.s.Start()
	}
}

// Stop halts the animation and clears the line.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}

// Message replaces the text shown next to the spinner.
func (sp *Spinner) Message(message string) {
	if sp.s != nil {
		sp.s.Suffix = " " + message
	}
}

// Enabled reports whether the spinner actually renders.
func (sp *Spinner) Enabled() bool {
	return sp.s != nil
}
