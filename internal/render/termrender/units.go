package termrender

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const remPixels = 16.0

// Spacing represents spacing (padding or margin) around a box in cells.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

type axis int

const (
	horizontal axis = iota
	vertical
)

// metrics converts CSS lengths into terminal cells.
type metrics struct {
	cellWidth      int
	cellHeight     int
	viewportWidth  int
	viewportHeight int
}

// cells converts a CSS length to cells along a. percentBase is the size in
// cells a percentage refers to; zero disables percentages.
func (m metrics) cells(value string, a axis, percentBase int) (int, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || value == "auto" {
		return 0, false
	}
	if value == "0" {
		return 0, true
	}

	number, unit := splitUnit(value)
	n, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}

	cell := float64(m.cellWidth)
	if a == vertical {
		cell = float64(m.cellHeight)
	}

	var px float64
	switch unit {
	case "px", "":
		px = n
	case "em", "rem":
		px = n * remPixels
	case "vw":
		if m.viewportWidth <= 0 {
			return 0, false
		}
		px = n * float64(m.viewportWidth) / 100
	case "vh":
		if m.viewportHeight <= 0 {
			return 0, false
		}
		px = n * float64(m.viewportHeight) / 100
	case "%":
		if percentBase <= 0 {
			return 0, false
		}
		return int(math.Round(n * float64(percentBase) / 100)), true
	default:
		return 0, false
	}

	return int(math.Round(px / cell)), true
}

// spacing parses a 1-4 value margin/padding shorthand.
func (m metrics) spacing(value string) (Spacing, bool) {
	parts := strings.Fields(value)
	if len(parts) == 0 || len(parts) > 4 {
		return Spacing{}, false
	}

	values := make([]string, 4)
	switch len(parts) {
	case 1:
		values = []string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		values = []string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		values = []string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		copy(values, parts)
	}

	var s Spacing
	var ok bool
	if s.Top, ok = m.cells(values[0], vertical, 0); !ok {
		return Spacing{}, false
	}
	if s.Right, ok = m.cells(values[1], horizontal, 0); !ok {
		return Spacing{}, false
	}
	if s.Bottom, ok = m.cells(values[2], vertical, 0); !ok {
		return Spacing{}, false
	}
	if s.Left, ok = m.cells(values[3], horizontal, 0); !ok {
		return Spacing{}, false
	}
	return s, true
}

func splitUnit(value string) (string, string) {
	i := len(value)
	for i > 0 {
		c := value[i-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		i--
	}
	return value[:i], value[i:]
}

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
	"gray":   "#808080",
	"grey":   "#808080",
	"silver": "#c0c0c0",
	"navy":   "#000080",
	"teal":   "#008080",
}

// color maps a CSS color to a lipgloss color. Unknown values, including
// keywords such as inherit or transparent, report false.
func color(value string) (lipgloss.Color, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	if hex, ok := namedColors[value]; ok {
		return lipgloss.Color(hex), true
	}
	if !strings.HasPrefix(value, "#") {
		return "", false
	}

	digits := value[1:]
	for _, c := range digits {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return "", false
		}
	}
	switch len(digits) {
	case 3:
		var b strings.Builder
		b.WriteByte('#')
		for _, c := range digits {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		return lipgloss.Color(b.String()), true
	case 6:
		return lipgloss.Color(value), true
	default:
		return "", false
	}
}

// borderSpec is a parsed CSS border declaration.
type borderSpec struct {
	border lipgloss.Border
	color  lipgloss.Color
	hasFg  bool
}

// border parses shorthands like "1px solid #131a22". A style of none or
// hidden reports false.
func border(value string) (borderSpec, bool) {
	spec := borderSpec{border: lipgloss.NormalBorder()}
	found := false

	for _, part := range strings.Fields(strings.ToLower(value)) {
		switch part {
		case "none", "hidden":
			return borderSpec{}, false
		case "solid", "dashed", "dotted", "groove", "ridge", "inset", "outset":
			found = true
		case "double":
			spec.border = lipgloss.DoubleBorder()
			found = true
		case "thin", "medium":
		case "thick":
			spec.border = lipgloss.ThickBorder()
		default:
			if c, ok := color(part); ok {
				spec.color = c
				spec.hasFg = true
				continue
			}
			number, unit := splitUnit(part)
			if unit == "px" {
				if n, err := strconv.ParseFloat(number, 64); err == nil && n >= 2 && spec.border == lipgloss.NormalBorder() {
					spec.border = lipgloss.ThickBorder()
				}
			}
		}
	}
	return spec, found
}
