package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/blockns-org/bns-cli/internal/usecase"
)

// TxProgress reports minting and record-update progress to the terminal.
// Long-running stages (waiting on a receipt) get a spinner in interactive
// mode; non-interactive mode prints plain lines instead.
type TxProgress struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
}

// NewTxProgress creates a terminal progress reporter.
func NewTxProgress(out io.Writer, interactive bool) *TxProgress {
	return &TxProgress{
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles progress events.
func (t *TxProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if !t.interactive {
		if event.Message != "" {
			fmt.Fprintln(t.out, event.Message)
		}
		return
	}

	if event.Spinner {
		if t.spinner == nil {
			t.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			t.spinner.Writer = t.out
			_ = t.spinner.Color("cyan", "bold")
		}
		t.spinner.Suffix = " " + event.Message
		if !t.spinner.Active() {
			t.spinner.Start()
		}
		return
	}

	if t.spinner != nil && t.spinner.Active() {
		t.spinner.Stop()
	}
	if event.Message != "" {
		fmt.Fprintln(t.out, event.Message)
	}
}

// Info prints an info message, pausing the spinner around it.
func (t *TxProgress) Info(message string) {
	wasActive := t.pause()
	color.New(color.FgCyan).Fprintln(t.out, message)
	if wasActive {
		t.spinner.Start()
	}
}

// Error prints an error message, pausing the spinner around it.
func (t *TxProgress) Error(message string) {
	wasActive := t.pause()
	color.New(color.FgRed).Fprintln(t.out, message)
	if wasActive {
		t.spinner.Start()
	}
}

func (t *TxProgress) pause() bool {
	if t.spinner != nil && t.spinner.Active() {
		t.spinner.Stop()
		return true
	}
	return false
}

var _ usecase.ProgressSink = (*TxProgress)(nil)
