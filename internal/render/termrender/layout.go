package termrender

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// box is the resolved box model of one element, in cells.
type box struct {
	margin   Spacing
	padding  Spacing
	border   borderSpec
	sides    [4]bool // top, right, bottom, left
	bg       lipgloss.Color
	hasBg    bool
	width    int
	height   int
	maxWidth int
}

func (b box) hasBorder() bool {
	return b.sides[0] || b.sides[1] || b.sides[2] || b.sides[3]
}

func (b box) borderColumns() int {
	n := 0
	if b.sides[1] {
		n++
	}
	if b.sides[3] {
		n++
	}
	return n
}

func (b box) borderRows() int {
	n := 0
	if b.sides[0] {
		n++
	}
	if b.sides[2] {
		n++
	}
	return n
}

var sideNames = [4]string{"top", "right", "bottom", "left"}

func (r *Renderer) boxModel(decls map[string]string, avail int) box {
	var b box

	if v, ok := decls["margin"]; ok {
		if s, ok := r.m.spacing(v); ok {
			b.margin = s
		}
	}
	if v, ok := decls["padding"]; ok {
		if s, ok := r.m.spacing(v); ok {
			b.padding = s
		}
	}
	applySides(&b.margin, decls, "margin-", r.m)
	applySides(&b.padding, decls, "padding-", r.m)

	if v, ok := decls["border"]; ok {
		if spec, ok := border(v); ok {
			b.border = spec
			b.sides = [4]bool{true, true, true, true}
		}
	}
	for i, side := range sideNames {
		v, ok := decls["border-"+side]
		if !ok {
			continue
		}
		spec, present := border(v)
		b.sides[i] = present
		if present {
			b.border = spec
		}
	}
	if _, ok := decls["border-radius"]; ok && b.hasBorder() && b.border.border == lipgloss.NormalBorder() {
		b.border.border = lipgloss.RoundedBorder()
	}

	for _, prop := range []string{"background-color", "background"} {
		if v, ok := decls[prop]; ok {
			if c, ok := color(v); ok {
				b.bg, b.hasBg = c, true
			}
		}
	}

	if v, ok := decls["width"]; ok {
		if w, ok := r.m.cells(v, horizontal, avail); ok {
			b.width = w
		}
	}
	if v, ok := decls["height"]; ok {
		if h, ok := r.m.cells(v, vertical, 0); ok {
			b.height = h
		}
	}
	if v, ok := decls["max-width"]; ok {
		if w, ok := r.m.cells(v, horizontal, avail); ok {
			b.maxWidth = w
		}
	}
	return b
}

func applySides(s *Spacing, decls map[string]string, prefix string, m metrics) {
	targets := [4]*int{&s.Top, &s.Right, &s.Bottom, &s.Left}
	for i, side := range sideNames {
		v, ok := decls[prefix+side]
		if !ok {
			continue
		}
		a := horizontal
		if i%2 == 0 {
			a = vertical
		}
		if n, ok := m.cells(v, a, 0); ok {
			*targets[i] = n
		}
	}
}

// apply wraps view in the box's padding, border, margin and size.
func (b box) apply(view string, text textProps, honorHeight bool) string {
	s := lipgloss.NewStyle()
	if b.hasBg {
		s = s.Background(b.bg)
	}
	if !b.padding.IsZero() {
		s = s.Padding(b.padding.Top, b.padding.Right, b.padding.Bottom, b.padding.Left)
	}
	if b.hasBorder() {
		s = s.Border(b.border.border, b.sides[0], b.sides[1], b.sides[2], b.sides[3])
		if b.border.hasFg {
			s = s.BorderForeground(b.border.color)
		}
		if text.hasBg {
			s = s.BorderBackground(text.bg)
		}
	}
	if !b.margin.IsZero() {
		s = s.Margin(b.margin.Top, b.margin.Right, b.margin.Bottom, b.margin.Left)
	}
	if w := b.width - b.borderColumns(); b.width > 0 && w > 0 {
		s = s.Width(w)
	}
	if h := b.height - b.borderRows(); honorHeight && b.height > 0 && h > 0 {
		s = s.Height(h)
	}
	if b.maxWidth > 0 {
		s = s.MaxWidth(b.maxWidth + b.margin.Horizontal())
	}
	return s.Render(view)
}

// crossPosition maps align-items onto a lipgloss position. The same value
// serves both axes: Left and Top are 0, Right and Bottom are 1.
func crossPosition(align string) lipgloss.Position {
	switch align {
	case "center":
		return lipgloss.Center
	case "flex-end", "end", "right", "self-end":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// flow lays out block children vertically, running consecutive inline
// children together on one line.
func flow(children []rendered) string {
	if len(children) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(children))
	var line []string
	flush := func() {
		if len(line) > 0 {
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line = nil
		}
	}
	for _, c := range children {
		if c.inline {
			line = append(line, c.view)
			continue
		}
		flush()
		blocks = append(blocks, c.view)
	}
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func joinColumn(views []string, pos lipgloss.Position, gap int) string {
	if len(views) == 0 {
		return ""
	}
	if gap <= 0 {
		return lipgloss.JoinVertical(pos, views...)
	}

	// Insert gap rows between children
	spacer := strings.Repeat("\n", gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(pos, result...)
}

// joinRow places views side by side and distributes free space according to
// justify when the container width is known.
func joinRow(views []string, pos lipgloss.Position, gap int, justify string, width int) string {
	if len(views) == 0 {
		return ""
	}

	used := gap * (len(views) - 1)
	for _, v := range views {
		used += lipgloss.Width(v)
	}
	free := width - used

	if width <= 0 || free <= 0 {
		return lipgloss.JoinHorizontal(pos, interleave(views, gap, nil)...)
	}

	n := len(views)
	switch justify {
	case "center":
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(pos, interleave(views, gap, nil)...))
	case "flex-end", "end", "right":
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinHorizontal(pos, interleave(views, gap, nil)...))
	case "space-between":
		if n == 1 {
			return lipgloss.JoinHorizontal(pos, views...)
		}
		inner := spread(free, n-1)
		return lipgloss.JoinHorizontal(pos, withEdges(0, interleave(views, gap, inner), 0)...)
	case "space-around":
		slots := spread(free, 2*n)
		lead, trail := slots[0], slots[len(slots)-1]
		inner := make([]int, n-1)
		for i := range inner {
			inner[i] = slots[2*i+1] + slots[2*i+2]
		}
		return lipgloss.JoinHorizontal(pos, withEdges(lead, interleave(views, gap, inner), trail)...)
	case "space-evenly":
		slots := spread(free, n+1)
		return lipgloss.JoinHorizontal(pos, withEdges(slots[0], interleave(views, gap, slots[1:n]), slots[n])...)
	default:
		return lipgloss.JoinHorizontal(pos, interleave(views, gap, nil)...)
	}
}

// interleave puts a spacer of gap+extra[i] columns between views i and i+1.
func interleave(views []string, gap int, extra []int) []string {
	out := make([]string, 0, len(views)*2)
	for i, v := range views {
		if i > 0 {
			w := gap
			if i-1 < len(extra) {
				w += extra[i-1]
			}
			if w > 0 {
				out = append(out, strings.Repeat(" ", w))
			}
		}
		out = append(out, v)
	}
	return out
}

func withEdges(lead int, pieces []string, trail int) []string {
	out := make([]string, 0, len(pieces)+2)
	if lead > 0 {
		out = append(out, strings.Repeat(" ", lead))
	}
	out = append(out, pieces...)
	if trail > 0 {
		out = append(out, strings.Repeat(" ", trail))
	}
	return out
}

// spread divides total into n near-equal parts, earlier parts taking the
// remainder.
func spread(total, n int) []int {
	parts := make([]int, n)
	if n == 0 {
		return parts
	}
	base, rem := total/n, total%n
	for i := range parts {
		parts[i] = base
		if i < rem {
			parts[i]++
		}
	}
	return parts
}
