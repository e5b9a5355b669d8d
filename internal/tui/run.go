package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunForm runs the interactive form until the user quits.
func RunForm(ctx context.Context, model *FormModel, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}
