// Package termrender lays a page node tree out in a terminal with lipgloss.
//
// The renderer reads each element's resolved declarations back from the
// style sheet and translates the subset that has a terminal meaning: colors,
// font weight, margin, padding, borders, width, max width, flex direction,
// alignment, gaps and display. Media queries are evaluated against a
// viewport derived from the terminal size. Unsupported or malformed values
// are ignored.
package termrender

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
)

// Defaults used to map CSS pixels onto terminal cells.
const (
	DefaultCellWidth     = 8
	DefaultCellHeight    = 16
	DefaultViewportWidth = 1280
)

// Options controls layout.
type Options struct {
	// Width and Height are the terminal size in cells. Zero leaves the
	// dimension unconstrained; heights are only honored when Height is set.
	Width  int
	Height int
	// CellWidth and CellHeight are the CSS pixel size of one cell.
	CellWidth  int
	CellHeight int
	// ViewportWidth and ViewportHeight override the CSS pixel viewport used
	// for media queries and vw/vh units.
	ViewportWidth  int
	ViewportHeight int
}

func (o Options) normalize() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = DefaultCellHeight
	}
	if o.ViewportWidth <= 0 {
		if o.Width > 0 {
			o.ViewportWidth = o.Width * o.CellWidth
		} else {
			o.ViewportWidth = DefaultViewportWidth
		}
	}
	if o.ViewportHeight <= 0 && o.Height > 0 {
		o.ViewportHeight = o.Height * o.CellHeight
	}
	return o
}

// Renderer lays out node trees whose classes live in one sheet.
type Renderer struct {
	sheet *style.Sheet
	opts  Options
	m     metrics
}

// New creates a renderer reading classes from sheet.
func New(sheet *style.Sheet, opts Options) *Renderer {
	if sheet == nil {
		sheet = style.NewSheet()
	}
	opts = opts.normalize()
	return &Renderer{
		sheet: sheet,
		opts:  opts,
		m: metrics{
			cellWidth:      opts.CellWidth,
			cellHeight:     opts.CellHeight,
			viewportWidth:  opts.ViewportWidth,
			viewportHeight: opts.ViewportHeight,
		},
	}
}

// Options returns the normalized options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render lays out nodes top to bottom and returns the terminal output.
func (r *Renderer) Render(nodes ...ui.Node) string {
	views := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out, ok := r.node(n, textProps{}, r.opts.Width, false)
		if ok {
			views = append(views, out.view)
		}
	}
	if len(views) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// Computed returns the declarations that apply to el at the renderer's
// viewport: base declarations of each class in order, each followed by its
// matching media declarations.
func (r *Renderer) Computed(el *ui.Element) map[string]string {
	decls := make(map[string]string)
	if el == nil {
		return decls
	}
	for _, class := range el.Classes() {
		block, ok := r.sheet.Lookup(class)
		if !ok {
			continue
		}
		for _, d := range block.Decls {
			decls[d.Property] = d.Value
		}
		for _, media := range block.Media {
			if !mediaMatches(media.Query, r.opts.ViewportWidth, r.opts.ViewportHeight) {
				continue
			}
			for _, d := range media.Decls {
				decls[d.Property] = d.Value
			}
		}
	}
	return decls
}

// Visible reports whether el is displayed at the renderer's viewport.
func (r *Renderer) Visible(el *ui.Element) bool {
	return strings.TrimSpace(r.Computed(el)["display"]) != "none"
}

type rendered struct {
	view   string
	inline bool
}

// textProps carries the inherited text presentation down the tree.
type textProps struct {
	fg, bg       lipgloss.Color
	hasFg, hasBg bool
	bold, italic bool
	underline    bool
}

func (t textProps) inherit(decls map[string]string) textProps {
	if v, ok := decls["color"]; ok {
		if c, ok := color(v); ok {
			t.fg, t.hasFg = c, true
		}
	}
	for _, prop := range []string{"background-color", "background"} {
		if v, ok := decls[prop]; ok {
			if c, ok := color(v); ok {
				t.bg, t.hasBg = c, true
			}
		}
	}
	if v, ok := decls["font-weight"]; ok {
		t.bold = isBold(v)
	}
	if v, ok := decls["font-style"]; ok {
		t.italic = strings.TrimSpace(v) == "italic" || strings.TrimSpace(v) == "oblique"
	}
	if v, ok := decls["text-decoration"]; ok {
		t.underline = strings.Contains(v, "underline")
	}
	return t
}

func (t textProps) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.hasFg {
		s = s.Foreground(t.fg)
	}
	if t.hasBg {
		s = s.Background(t.bg)
	}
	if t.bold {
		s = s.Bold(true)
	}
	if t.italic {
		s = s.Italic(true)
	}
	if t.underline {
		s = s.Underline(true)
	}
	return s
}

func isBold(weight string) bool {
	weight = strings.TrimSpace(strings.ToLower(weight))
	switch weight {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

var inlineTags = map[string]bool{
	"span": true, "a": true, "b": true, "strong": true, "em": true, "i": true,
	"img": true, "label": true, "code": true, "small": true,
}

func isInline(tag, display string) bool {
	display = strings.TrimSpace(display)
	if display != "" {
		return strings.HasPrefix(display, "inline")
	}
	return inlineTags[strings.ToLower(tag)]
}

// node renders n within avail cells (0 means unconstrained). flexItem marks
// children of a flex container that size to their content.
func (r *Renderer) node(n ui.Node, inherited textProps, avail int, flexItem bool) (rendered, bool) {
	switch v := n.(type) {
	case ui.Text:
		if v == "" {
			return rendered{}, false
		}
		return rendered{view: inherited.style().Render(string(v)), inline: true}, true
	case *ui.Element:
		if v == nil {
			return rendered{}, false
		}
		return r.element(v, inherited, avail, flexItem)
	default:
		return rendered{}, false
	}
}

func (r *Renderer) element(el *ui.Element, inherited textProps, avail int, flexItem bool) (rendered, bool) {
	decls := r.Computed(el)
	display := strings.TrimSpace(decls["display"])
	if display == "none" {
		return rendered{}, false
	}

	text := inherited.inherit(decls)
	inline := isInline(el.Tag, display)
	box := r.boxModel(decls, avail)

	width := 0
	switch {
	case box.width > 0:
		width = box.width
		if flexItem && avail > 0 && width+box.margin.Horizontal() > avail {
			width = avail - box.margin.Horizontal()
		}
	case !inline && !flexItem && avail > 0:
		width = avail - box.margin.Horizontal()
	}
	if width < 0 {
		width = 0
	}
	box.width = width

	content := 0
	if width > 0 {
		content = width - box.padding.Horizontal() - box.borderColumns()
		if content < 0 {
			content = 0
		}
	}

	view := r.layout(el, decls, display, text, content)
	return rendered{view: box.apply(view, text, r.opts.Height > 0), inline: inline}, true
}

func (r *Renderer) layout(el *ui.Element, decls map[string]string, display string, text textProps, content int) string {
	if display == "flex" || display == "inline-flex" {
		direction := strings.TrimSpace(decls["flex-direction"])
		if direction == "" {
			direction = "row"
		}
		align := strings.TrimSpace(decls["align-items"])

		if strings.HasPrefix(direction, "row") {
			gap, _ := r.m.cells(decls["gap"], horizontal, content)
			shares := r.rowShares(el.Children, content)
			views := make([]string, 0, len(el.Children))
			for i, child := range el.Children {
				if out, ok := r.node(child, text, shares[i], true); ok {
					views = append(views, out.view)
				}
			}
			if direction == "row-reverse" {
				reverse(views)
			}
			return joinRow(views, crossPosition(align), gap, strings.TrimSpace(decls["justify-content"]), content)
		}

		gap, _ := r.m.cells(decls["gap"], vertical, 0)
		stretch := align == "" || align == "stretch" || align == "normal"
		views := make([]string, 0, len(el.Children))
		for _, child := range el.Children {
			if out, ok := r.node(child, text, content, !stretch); ok {
				views = append(views, out.view)
			}
		}
		if direction == "column-reverse" {
			reverse(views)
		}
		return joinColumn(views, crossPosition(align), gap)
	}

	children := make([]rendered, 0, len(el.Children))
	for _, child := range el.Children {
		if out, ok := r.node(child, text, content, false); ok {
			children = append(children, out)
		}
	}
	return flow(children)
}

// rowShares computes the width offered to each child of a row container.
// Children with a declared width keep it, scaled down together when they
// overflow the container; the rest size to their content.
func (r *Renderer) rowShares(children []ui.Node, content int) []int {
	shares := make([]int, len(children))
	if content <= 0 {
		return shares
	}

	total := 0
	for i, child := range children {
		el, ok := child.(*ui.Element)
		if !ok || el == nil {
			continue
		}
		decls := r.Computed(el)
		if strings.TrimSpace(decls["display"]) == "none" {
			continue
		}
		box := r.boxModel(decls, content)
		if box.width <= 0 {
			continue
		}
		shares[i] = box.width + box.margin.Horizontal()
		total += shares[i]
	}

	if total > content {
		for i := range shares {
			shares[i] = shares[i] * content / total
		}
	}
	return shares
}

func reverse(views []string) {
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}
}
