package main

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// progress wraps an optional stderr spinner. It stays inert when stderr is
// not a terminal so piped diagnostics remain clean.
type progress struct {
	spinner *spinner.Spinner
}

func startProgress(message string) *progress {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return &progress{}
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return &progress{spinner: s}
}

func (p *progress) stop() {
	if p.spinner != nil {
		p.spinner.Stop()
	}
}
