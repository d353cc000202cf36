package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Browser wraps the Bubble Tea program around a browser model.
type Browser struct {
	program *tea.Program
	model   *Model
}

// NewBrowser creates a browser program for the given model.
func NewBrowser(model *Model, opts ...tea.ProgramOption) *Browser {
	lipgloss.SetColorProfile(NewOutput(os.Stderr).Profile)

	return &Browser{
		program: tea.NewProgram(model, opts...),
		model:   model,
	}
}

// Run drives the browser until the user quits or ctx is cancelled.
func (b *Browser) Run(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			b.program.Quit()
		case <-done:
		}
	}()
	_, err := b.program.Run()
	close(done)
	return err
}

// Program returns the underlying tea.Program for testing.
func (b *Browser) Program() *tea.Program {
	return b.program
}
