package components

import (
	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
)

// TextProps is the parameter record of the Text primitive.
type TextProps struct {
	Color    style.Value
	FontSize style.Value
	Class    string
}

// ClassName returns the record's class.
func (p TextProps) ClassName() string { return p.Class }

// WithClass returns a copy of the record carrying class.
func (p TextProps) WithClass(class string) TextProps {
	p.Class = class
	return p
}

// Getters for use with style.Prop.
func TextColor(p TextProps) style.Value    { return p.Color }
func TextFontSize(p TextProps) style.Value { return p.FontSize }

// Text is the inline text primitive: it wraps children in a span carrying the
// record's class.
func Text(props TextProps, children ...ui.Node) ui.Node {
	return ui.NewElement("span", props.Class, children...)
}
