package sections

import (
	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
	"github.com/alexisbeaulieu97/pageshell/internal/ui/components"
)

// DefaultPlaceholder is the label rendered by every section until real
// content exists.
const DefaultPlaceholder = "TEMP"

// BodyTextColor is the page body's default text color.
const BodyTextColor = "#131A22"

// SidebarCollapseQuery hides the left column on narrow viewports.
const SidebarCollapseQuery = "(max-width: 650px)"

var textStatic = style.Static[components.TextProps]

// PageBodyOptions configures the page body text. Unset values fall back to
// the body's own defaults.
type PageBodyOptions struct {
	Placeholder string
	TextColor   style.Value
	FontSize    style.Value
}

// PageBody is the two-column area under the navbar.
type PageBody struct {
	opts     PageBodyOptions
	layout   *components.Component[components.BoxProps]
	sidebar  *components.Component[components.BoxProps]
	main     *components.Component[components.BoxProps]
	boldText *components.Component[components.TextProps]
}

// NewPageBody creates the page body with its styled components.
func NewPageBody(opts PageBodyOptions) *PageBody {
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}

	text := components.Styled("PageBody.Text", components.Text,
		style.Prop("color", components.TextColor, BodyTextColor),
		style.Prop("font-size", components.TextFontSize, ".9em"),
	)

	return &PageBody{
		opts: opts,
		layout: components.Styled("PageBody.Container", components.Box,
			boxStatic("display", "flex"),
			boxStatic("padding", "1em"),
		),
		sidebar: components.Styled("PageBody.LeftContainer", components.BoxAs("aside"),
			boxStatic("height", "80vh"),
			boxStatic("width", "18vw"),
			boxStatic("border-right", "2px solid #ddd"),
			style.Media(SidebarCollapseQuery,
				boxStatic("display", "none"),
			),
		),
		main: components.Styled("PageBody.RightContainer", components.BoxAs("section"),
			boxStatic("height", "80vh"),
			boxStatic("width", "82vw"),
			boxStatic("display", "flex"),
			boxStatic("flex-direction", "column"),
			boxStatic("margin-left", "1.5em"),
		),
		boldText: text.Extend("PageBody.BoldText",
			textStatic("font-weight", "bold"),
			textStatic("padding", "0.4em"),
		),
	}
}

// Render builds the page body: a sidebar with a bold label and a main column
// holding the bare placeholder.
func (p *PageBody) Render(ctx components.RenderContext) ui.Node {
	layout := p.layout.Bind(ctx, components.BoxProps{})
	sidebar := p.sidebar.Bind(ctx, components.BoxProps{})
	bold := p.boldText.Bind(ctx, components.TextProps{
		Color:    p.opts.TextColor,
		FontSize: p.opts.FontSize,
	})
	main := p.main.Bind(ctx, components.BoxProps{})

	return layout(
		sidebar(bold(ui.Text(p.opts.Placeholder))),
		main(ui.Text(p.opts.Placeholder)),
	)
}
