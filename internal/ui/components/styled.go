package components

import (
	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
)

// Component is a primitive with baked-in style rules. It keeps the
// primitive's parameter record as its own contract.
type Component[P Classed[P]] struct {
	name  string
	base  Primitive[P]
	rules []style.Rule[P]
}

// Styled composes base with rules into a new component. name labels the
// generated CSS and has no effect on the class identifier.
func Styled[P Classed[P]](name string, base Primitive[P], rules ...style.Rule[P]) *Component[P] {
	return &Component[P]{
		name:  name,
		base:  base,
		rules: append([]style.Rule[P](nil), rules...),
	}
}

// Extend returns a component that evaluates c's rules and then rules. The
// receiver is left unchanged.
func (c *Component[P]) Extend(name string, rules ...style.Rule[P]) *Component[P] {
	combined := make([]style.Rule[P], 0, len(c.rules)+len(rules))
	combined = append(combined, c.rules...)
	combined = append(combined, rules...)
	return &Component[P]{name: name, base: c.base, rules: combined}
}

// Name returns the component's label.
func (c *Component[P]) Name() string {
	return c.name
}

// Resolve evaluates the component's rules for props.
func (c *Component[P]) Resolve(props P) style.Block {
	return style.Evaluate(props, c.rules...)
}

// Bind resolves the class for props into the context's sheet immediately
// and returns the element constructor. Binding a parent before building its
// children registers classes in tree order.
func (c *Component[P]) Bind(ctx RenderContext, props P) func(children ...ui.Node) ui.Node {
	class := ctx.sheet().Class(c.name, c.Resolve(props))
	props = props.WithClass(ui.JoinClasses(props.ClassName(), class))
	return func(children ...ui.Node) ui.Node {
		return c.base(props, children...)
	}
}

// Render binds props and builds the element around children. A class already
// present on props is kept in front of the generated one.
func (c *Component[P]) Render(ctx RenderContext, props P, children ...ui.Node) ui.Node {
	return c.Bind(ctx, props)(children...)
}
