// Package term renders download progress and wait indicators on a terminal.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fwojciec/docgrab"
)

// Ensure ProgressBar implements docgrab.ProgressDisplay at compile time.
var _ docgrab.ProgressDisplay = (*ProgressBar)(nil)

// DefaultBarWidth is the width of the bar in cells.
const DefaultBarWidth = 30

// ProgressBar redraws a single line per download using carriage returns.
// When the server declares no length, only the byte count is shown.
type ProgressBar struct {
	w      io.Writer
	bar    progress.Model
	indent string
	width  int // visible width of the last line, for clearing
	active bool
}

// ProgressBarOption configures a ProgressBar.
type ProgressBarOption func(*ProgressBar)

// WithIndent prefixes every rendered line.
func WithIndent(indent string) ProgressBarOption {
	return func(p *ProgressBar) {
		p.indent = indent
	}
}

// WithBarWidth sets the width of the bar in cells.
func WithBarWidth(width int) ProgressBarOption {
	return func(p *ProgressBar) {
		p.bar.Width = width
	}
}

// NewProgressBar creates a ProgressBar writing to w.
func NewProgressBar(w io.Writer, opts ...ProgressBarOption) *ProgressBar {
	p := &ProgressBar{
		w:      w,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(DefaultBarWidth)),
		indent: "    ",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Update redraws the line for p.
func (p *ProgressBar) Update(d docgrab.DownloadProgress) {
	line := p.indent + Describe(d)
	if d.Total > 0 {
		line = p.indent + p.bar.ViewAs(fraction(d)) + " " + Describe(d)
	}
	pad := ""
	n := lipgloss.Width(line)
	if n < p.width {
		pad = strings.Repeat(" ", p.width-n)
	}
	p.width = n
	p.active = true
	fmt.Fprint(p.w, "\r"+line+pad)
}

// Finish terminates the current line if anything was drawn.
func (p *ProgressBar) Finish() {
	if !p.active {
		return
	}
	fmt.Fprintln(p.w)
	p.active = false
	p.width = 0
}

// Describe formats the byte counts of d, e.g. "1.0 kB / 2.0 kB".
func Describe(d docgrab.DownloadProgress) string {
	if d.Total <= 0 {
		return humanize.Bytes(uint64(d.Written))
	}
	return humanize.Bytes(uint64(d.Written)) + " / " + humanize.Bytes(uint64(d.Total))
}

func fraction(d docgrab.DownloadProgress) float64 {
	f := float64(d.Written) / float64(d.Total)
	if f > 1 {
		return 1
	}
	return f
}
