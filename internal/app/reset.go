package app

import "github.com/alexisbeaulieu97/pageshell/internal/style"

func decl(property, value string) style.Declaration {
	return style.Declaration{Property: property, Value: value}
}

// GlobalReset is the document-wide reset installed before the first render.
func GlobalReset() []style.GlobalRule {
	return []style.GlobalRule{
		{
			Selector: "*",
			Decls: []style.Declaration{
				decl("margin", "0"),
				decl("padding", "0"),
				decl("outline", "0"),
				decl("box-sizing", "border-box"),
			},
		},
		{
			Selector: "html, body, #root",
			Decls: []style.Declaration{
				decl("height", "100%"),
			},
		},
		{
			Selector: "body",
			Decls: []style.Declaration{
				decl("-webkit-font-smoothing", "antialiased"),
				decl("font-family", "Roboto, Arial, sans-serif"),
				decl("background", "#ffffff"),
			},
		},
		{
			Selector: "button",
			Decls: []style.Declaration{
				decl("cursor", "pointer"),
			},
		},
	}
}
