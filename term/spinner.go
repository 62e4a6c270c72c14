package term

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fwojciec/docgrab"
)

// Ensure Spinner implements docgrab.Indicator at compile time.
var _ docgrab.Indicator = (*Spinner)(nil)

// Spinner animates a wait message. Output to a non-terminal is suppressed
// by the spinner library.
type Spinner struct {
	w        io.Writer
	charset  []string
	interval time.Duration
}

// NewSpinner creates a Spinner writing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		w:        w,
		charset:  spinner.CharSets[14],
		interval: 100 * time.Millisecond,
	}
}

// Start shows msg next to the spinner until stop is called. stop may be
// called more than once.
func (s *Spinner) Start(msg string) (stop func()) {
	sp := spinner.New(s.charset, s.interval, spinner.WithWriter(s.w))
	sp.Prefix = "  "
	sp.Suffix = " " + msg
	sp.Start()

	var once sync.Once
	return func() {
		once.Do(sp.Stop)
	}
}
