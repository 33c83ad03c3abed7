// Package components provides the presentational primitives of the page shell
// and the composition layer that turns them into styled, reusable components.
//
// # Overview
//
// Two primitives carry all structure:
//
//   - Text: an inline span with color and font-size parameters
//   - Box: a block element (div by default) with flex direction, alignment,
//     margin and max-width parameters
//
// Primitives only wrap their children and attach the class they are given.
// They never resolve defaults and never validate values.
//
// # Composition
//
// Styled wraps a primitive with a list of style rules and returns a
// Component with the same parameter record:
//
//	navText := components.Styled("Navbar.Text", components.Text,
//		style.Prop("color", components.TextColor, "#ffffff"),
//		style.Prop("font-size", components.TextFontSize, ".9em"),
//	)
//
//	node := navText.Render(ctx, components.TextProps{}, ui.Text("TEMP"))
//
// Each rule that reads a parameter declares its own fallback, so the same
// primitive can default to white text in the navbar and near-black text in
// the page body. Extend builds a component on top of another one, the way a
// bold variant reuses a section's text rules.
//
// # Rendering
//
// Components render into a ui.Node tree. The class of every styled node is
// resolved through the style.Sheet carried by the RenderContext; renderers
// read the sheet afterwards to emit CSS or to lay the tree out in a terminal.
// Rendering is stateless and deterministic: the same parameters and children
// always produce the same classes.
package components
