package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pageshell/internal/app"
	"github.com/alexisbeaulieu97/pageshell/internal/config"
	"github.com/alexisbeaulieu97/pageshell/internal/render/termrender"
	"github.com/alexisbeaulieu97/pageshell/internal/tui"
)

var errNotTerminal = errors.New("preview requires an interactive terminal; use `pageshell render --format text` instead")

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the page interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}

			// Logs would corrupt the alternate screen.
			log, err := root.newLogger(io.Discard)
			if err != nil {
				return err
			}
			cfg, err := root.loadConfig(log)
			if err != nil {
				return err
			}

			model := tui.NewModel(cfg.Title, previewRenderer(cfg))
			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}

	return cmd
}

// previewRenderer renders a fresh document for every layout pass.
func previewRenderer(cfg *config.Config) tui.RenderFunc {
	shell := app.New(cfg.AppOptions(nil))
	return func(width, height int) string {
		doc := shell.Document()
		return termrender.New(doc.Sheet, termrender.Options{
			Width:         width,
			Height:        height,
			ViewportWidth: cfg.ViewportWidth,
		}).Render(doc.Body...)
	}
}
