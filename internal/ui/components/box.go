package components

import (
	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
)

// BoxProps is the parameter record of the Box primitive.
type BoxProps struct {
	FlexDirection style.Value
	AlignItems    style.Value
	Margin        style.Value
	MaxWidth      style.Value
	Class         string
}

// ClassName returns the record's class.
func (p BoxProps) ClassName() string { return p.Class }

// WithClass returns a copy of the record carrying class.
func (p BoxProps) WithClass(class string) BoxProps {
	p.Class = class
	return p
}

// Getters for use with style.Prop.
func BoxFlexDirection(p BoxProps) style.Value { return p.FlexDirection }
func BoxAlignItems(p BoxProps) style.Value    { return p.AlignItems }
func BoxMargin(p BoxProps) style.Value        { return p.Margin }
func BoxMaxWidth(p BoxProps) style.Value      { return p.MaxWidth }

// Box is the block primitive: it wraps children in a div carrying the
// record's class.
func Box(props BoxProps, children ...ui.Node) ui.Node {
	return ui.NewElement("div", props.Class, children...)
}

// BoxAs returns a Box primitive that renders with another block tag, such as
// aside or section.
func BoxAs(tag string) Primitive[BoxProps] {
	if tag == "" {
		tag = "div"
	}
	return func(props BoxProps, children ...ui.Node) ui.Node {
		return ui.NewElement(tag, props.Class, children...)
	}
}
