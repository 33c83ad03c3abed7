// Package sections builds the concrete page fragments (navbar and page body)
// out of the styled primitives.
package sections

import (
	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
	"github.com/alexisbeaulieu97/pageshell/internal/ui/components"
)

// NavbarBackground is the navbar's background and idle border color.
const NavbarBackground = "#131a22"

// NavbarCollapseQuery hides the navbar items on narrow viewports.
const NavbarCollapseQuery = "(max-width: 850px)"

var boxStatic = style.Static[components.BoxProps]

// NavbarOptions configures the navbar text. Unset values fall back to the
// navbar's own defaults.
type NavbarOptions struct {
	Placeholder string
	TextColor   style.Value
	FontSize    style.Value
}

// Navbar is the top navigation bar.
type Navbar struct {
	opts      NavbarOptions
	container *components.Component[components.BoxProps]
	wrapper   *components.Component[components.BoxProps]
	text      *components.Component[components.TextProps]
}

// NewNavbar creates the navbar with its styled components.
func NewNavbar(opts NavbarOptions) *Navbar {
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}

	return &Navbar{
		opts: opts,
		container: components.Styled("Navbar.Container", components.Box,
			boxStatic("display", "flex"),
			boxStatic("justify-content", "space-evenly"),
			boxStatic("align-items", "center"),
			boxStatic("color", "white"),
			boxStatic("background-color", NavbarBackground),
		),
		wrapper: components.Styled("Navbar.Wrapper", components.Box,
			boxStatic("display", "flex"),
			style.Prop("flex-direction", components.BoxFlexDirection, "column"),
			style.Prop("align-items", components.BoxAlignItems, "flex-start"),
			boxStatic("padding", "0.1em"),
			boxStatic("cursor", "pointer"),
			boxStatic("border", "1px solid "+NavbarBackground),
			style.Hover(
				boxStatic("border", "1px solid #ffffff"),
				boxStatic("border-radius", "0.2em"),
			),
			style.Media(NavbarCollapseQuery,
				boxStatic("display", "none"),
			),
		),
		text: components.Styled("Navbar.Text", components.Text,
			style.Prop("color", components.TextColor, "#ffffff"),
			style.Prop("font-size", components.TextFontSize, ".9em"),
		),
	}
}

// Render builds the navbar: a row of items holding the placeholder label,
// followed by an empty right-hand group. Each element binds its class before
// its children are built, so the sheet lists classes in tree order.
func (n *Navbar) Render(ctx components.RenderContext) ui.Node {
	container := n.container.Bind(ctx, components.BoxProps{})
	items := n.wrapper.Bind(ctx, components.BoxProps{
		FlexDirection: style.Set("row"),
		AlignItems:    style.Set("center"),
	})
	item := n.wrapper.Bind(ctx, components.BoxProps{})
	label := n.text.Bind(ctx, components.TextProps{
		Color:    n.opts.TextColor,
		FontSize: n.opts.FontSize,
	})
	trailing := n.wrapper.Bind(ctx, components.BoxProps{
		FlexDirection: style.Set("row"),
		AlignItems:    style.Set("flex-start"),
	})

	return container(
		items(item(label(ui.Text(n.opts.Placeholder)))),
		trailing(),
	)
}
