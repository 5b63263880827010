// Package progress renders mobyprogress updates as carriage-return
// terminated status lines, so a terminal shows one updating line per action.
package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/pcj/mobyprogress"
)

const streamNewline = "\r\n"

// NewProgressOutput returns an Output that writes to out.  It is safe for
// concurrent use.
func NewProgressOutput(out io.Writer) mobyprogress.Output {
	return &progressOutput{out: out, newLines: true}
}

type progressOutput struct {
	mu       sync.Mutex
	out      io.Writer
	newLines bool
}

// WriteProgress implements mobyprogress.Output.
func (o *progressOutput) WriteProgress(prog mobyprogress.Progress) error {
	var formatted string
	if prog.Message != "" {
		formatted = formatStatus(prog.ID, prog.Message)
	} else {
		formatted = formatProgress(prog)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := io.WriteString(o.out, formatted); err != nil {
		return err
	}
	if o.newLines && prog.LastUpdate {
		_, err := io.WriteString(o.out, streamNewline)
		return err
	}
	return nil
}

func formatStatus(id, message string) string {
	if id == "" {
		return message + streamNewline
	}
	return id + ": " + message + streamNewline
}

func formatProgress(prog mobyprogress.Progress) string {
	counts := formatCounts(prog)
	if counts == "" {
		return prog.Action + "\r\n"
	}
	return prog.Action + " " + counts + "\r"
}

func formatCounts(prog mobyprogress.Progress) string {
	if prog.HideCounts || (prog.Current <= 0 && prog.Total <= 0) {
		return ""
	}
	units := prog.Units
	if units != "" {
		units = " " + units
	}
	if prog.Total <= 0 {
		return fmt.Sprintf("%d%s", prog.Current, units)
	}
	percent := 100 * prog.Current / prog.Total
	return fmt.Sprintf("%d/%d%s (%d%%)", prog.Current, prog.Total, units, percent)
}
