// Package app is the application root: it installs the global reset and
// mounts the page sections in order.
package app

import (
	"github.com/alexisbeaulieu97/pageshell/internal/logger"
	"github.com/alexisbeaulieu97/pageshell/internal/sections"
	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
	"github.com/alexisbeaulieu97/pageshell/internal/ui/components"
)

// DefaultTitle is the document title when none is configured.
const DefaultTitle = "pageshell"

// Options configures the shell.
type Options struct {
	Title    string
	Navbar   sections.NavbarOptions
	PageBody sections.PageBodyOptions
	Logger   *logger.Logger
}

// Document is one complete render pass: the section nodes in mount order and
// the sheet holding every class they use.
type Document struct {
	Title string
	Sheet *style.Sheet
	Body  []ui.Node
}

// Shell mounts the navbar and page body.
type Shell struct {
	title  string
	navbar *sections.Navbar
	body   *sections.PageBody
	log    *logger.Logger
}

// New creates a shell from opts.
func New(opts Options) *Shell {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	return &Shell{
		title:  title,
		navbar: sections.NewNavbar(opts.Navbar),
		body:   sections.NewPageBody(opts.PageBody),
		log:    opts.Logger,
	}
}

// Title returns the document title.
func (s *Shell) Title() string {
	return s.title
}

// Init installs the global reset into sheet. It must run once before the
// first component renders into that sheet; later calls are no-ops.
func (s *Shell) Init(sheet *style.Sheet) {
	if sheet == nil {
		return
	}
	if sheet.Reset(GlobalReset()...) {
		s.log.Debug("global reset installed")
	}
}

// Render mounts the sections in their fixed order: navbar, then page body.
func (s *Shell) Render(ctx components.RenderContext) []ui.Node {
	return []ui.Node{
		s.navbar.Render(ctx),
		s.body.Render(ctx),
	}
}

// Document performs a full render pass on a fresh sheet.
func (s *Shell) Document() Document {
	sheet := style.NewSheet()
	s.Init(sheet)

	nodes := s.Render(components.NewRenderContext(sheet))
	s.log.WithFields(map[string]any{"classes": sheet.Len()}).Debug("document rendered")

	return Document{Title: s.title, Sheet: sheet, Body: nodes}
}
