package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pageshell/internal/app"
	"github.com/alexisbeaulieu97/pageshell/internal/config"
	"github.com/alexisbeaulieu97/pageshell/internal/logger"
	"github.com/alexisbeaulieu97/pageshell/internal/render/htmlrender"
	"github.com/alexisbeaulieu97/pageshell/internal/render/termrender"
	"github.com/alexisbeaulieu97/pageshell/pkg/diff"
	pserrors "github.com/alexisbeaulieu97/pageshell/pkg/errors"
)

// Output formats.
const (
	formatHTML = "html"
	formatText = "text"
)

// defaultTextWidth is used when the text width is neither given nor
// detectable.
const defaultTextWidth = 80

type renderOptions struct {
	Format string
	Out    string
	Check  string
	Width  int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page as an HTML document or terminal text",
		Long: `Render performs one full render pass and writes the result to stdout or
--out. With --check the output is compared against an existing file instead
and a unified diff is printed when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatHTML, "Output format (html or text)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write output to this file instead of stdout")
	cmd.Flags().StringVar(&opts.Check, "check", "", "Compare output against this file and fail on drift")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Terminal width in cells for text output (default: detected)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	opts.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	if opts.Format != formatHTML && opts.Format != formatText {
		return fmt.Errorf("unknown format %q (expected %s or %s)", opts.Format, formatHTML, formatText)
	}
	if opts.Width < 0 {
		return fmt.Errorf("width must not be negative")
	}

	log, err := root.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cfg, err := root.loadConfig(log)
	if err != nil {
		return err
	}

	output, err := renderOutput(cfg, log, opts)
	if err != nil {
		return err
	}

	if opts.Check != "" {
		return checkOutput(cmd.OutOrStdout(), opts.Check, output, log)
	}
	return writeOutput(cmd.OutOrStdout(), opts.Out, output, log)
}

// renderOutput performs one render pass in the requested format.
func renderOutput(cfg *config.Config, log *logger.Logger, opts renderOptions) (string, error) {
	doc := app.New(cfg.AppOptions(log)).Document()

	switch opts.Format {
	case formatText:
		width := opts.Width
		if width == 0 {
			width = detectWidth(os.Stdout)
		}
		r := termrender.New(doc.Sheet, termrender.Options{
			Width:         width,
			ViewportWidth: cfg.ViewportWidth,
		})
		log.WithFields(map[string]any{
			"width":    width,
			"viewport": r.Options().ViewportWidth,
		}).Debug("terminal layout")
		return r.Render(doc.Body...) + "\n", nil
	default:
		out, err := htmlrender.String(htmlrender.Page{
			Title: doc.Title,
			Sheet: doc.Sheet,
			Body:  doc.Body,
		})
		if err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
		return out, nil
	}
}

func detectWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultTextWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTextWidth
	}
	return width
}

func writeOutput(stdout io.Writer, path, output string, log *logger.Logger) error {
	if path == "" {
		if _, err := io.WriteString(stdout, output); err != nil {
			return pserrors.NewOutputError("stdout", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return pserrors.NewOutputError(path, err)
	}
	log.With("path", path).Info("output written")
	return nil
}

func checkOutput(stdout io.Writer, path, output string, log *logger.Logger) error {
	expected, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read reference %s: %w", path, err)
	}
	if string(expected) == output {
		log.With("path", path).Info("output matches reference")
		return nil
	}

	inserted, deleted := diff.Stats(expected, []byte(output))
	fmt.Fprint(stdout, diff.Unified(expected, []byte(output), path, "rendered"))
	return fmt.Errorf("%w: %s (+%d -%d)", pserrors.ErrDrift, path, inserted, deleted)
}
