// Package validation implements the inventory checks of the station
// checker.
//
// Validators are pure: they receive records already fetched from the API
// together with a Reporter and emit diagnostic lines. Findings are tagged
// [error] or [warning] and never abort the run; only transport failures do,
// and those are surfaced by the Runner before any validator sees the data.
package validation

import (
	"fmt"
	"io"
)

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// Reporter accumulates and prints validation findings. Plain report lines
// go through Printf; findings through Errorf and Warnf, which prefix the
// line with a severity tag.
type Reporter struct {
	w        io.Writer
	color    bool
	errors   int
	warnings int
}

// NewReporter creates a Reporter writing to w. When color is true the
// severity tags are ANSI-coloured.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// Printf writes a plain report line.
func (r *Reporter) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Errorf writes a finding tagged [error].
func (r *Reporter) Errorf(format string, args ...any) {
	r.errors++
	r.tagged(ansiRed, "[error]", format, args...)
}

// Warnf writes a finding tagged [warning].
func (r *Reporter) Warnf(format string, args ...any) {
	r.warnings++
	r.tagged(ansiYellow, "[warning]", format, args...)
}

func (r *Reporter) tagged(color, tag, format string, args ...any) {
	if r.color {
		tag = color + tag + ansiReset
	}
	fmt.Fprintf(r.w, tag+" "+format+"\n", args...)
}

// Errors returns the number of error findings reported so far.
func (r *Reporter) Errors() int { return r.errors }

// Warnings returns the number of warning findings reported so far.
func (r *Reporter) Warnings() int { return r.warnings }
