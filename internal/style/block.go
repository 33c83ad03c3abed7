package style

import (
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// MediaBlock holds declarations that only apply when Query matches, plus
// hover declarations scoped to the same query.
type MediaBlock struct {
	Query string
	Decls []Declaration
	Hover []Declaration
}

// Block is the resolved presentation of one component instance: base
// declarations, declarations applied on hover and media-scoped declarations.
type Block struct {
	Decls []Declaration
	Hover []Declaration
	Media []MediaBlock
}

// IsEmpty reports whether the block carries no declarations at all.
func (b Block) IsEmpty() bool {
	if len(b.Decls) > 0 || len(b.Hover) > 0 {
		return false
	}
	for _, m := range b.Media {
		if !m.isEmpty() {
			return false
		}
	}
	return true
}

// Get returns the base value for property.
func (b Block) Get(property string) (string, bool) {
	return lookup(b.Decls, property)
}

// HoverValue returns the hover value for property.
func (b Block) HoverValue(property string) (string, bool) {
	return lookup(b.Hover, property)
}

// MediaValue returns the value of property inside the media block for query.
func (b Block) MediaValue(query, property string) (string, bool) {
	for _, m := range b.Media {
		if m.Query == query {
			return lookup(m.Decls, property)
		}
	}
	return "", false
}

// MediaHoverValue returns the hover value of property inside the media block
// for query.
func (b Block) MediaHoverValue(query, property string) (string, bool) {
	for _, m := range b.Media {
		if m.Query == query {
			return lookup(m.Hover, property)
		}
	}
	return "", false
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	out := Block{
		Decls: append([]Declaration(nil), b.Decls...),
		Hover: append([]Declaration(nil), b.Hover...),
	}
	if len(b.Media) > 0 {
		out.Media = make([]MediaBlock, len(b.Media))
		for i, m := range b.Media {
			out.Media[i] = MediaBlock{
				Query: m.Query,
				Decls: append([]Declaration(nil), m.Decls...),
				Hover: append([]Declaration(nil), m.Hover...),
			}
		}
	}
	return out
}

// CSS renders the block as CSS rules for the given selector.
func (b Block) CSS(selector string) string {
	var sb strings.Builder
	writeRule(&sb, "", selector, b.Decls)
	writeRule(&sb, "", selector+":hover", b.Hover)
	for _, m := range b.Media {
		if m.isEmpty() {
			continue
		}
		sb.WriteString("@media ")
		sb.WriteString(m.Query)
		sb.WriteString(" {\n")
		writeRule(&sb, "  ", selector, m.Decls)
		writeRule(&sb, "  ", selector+":hover", m.Hover)
		sb.WriteString("}\n")
	}
	return sb.String()
}

func (m MediaBlock) isEmpty() bool {
	return len(m.Decls) == 0 && len(m.Hover) == 0
}

func (b *Block) mediaBlock(query string) *MediaBlock {
	for i := range b.Media {
		if b.Media[i].Query == query {
			return &b.Media[i]
		}
	}
	b.Media = append(b.Media, MediaBlock{Query: query})
	return &b.Media[len(b.Media)-1]
}

func writeRule(sb *strings.Builder, indent, selector string, decls []Declaration) {
	if len(decls) == 0 {
		return
	}
	sb.WriteString(indent)
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, d := range decls {
		sb.WriteString(indent)
		sb.WriteString("  ")
		sb.WriteString(d.Property)
		sb.WriteString(": ")
		sb.WriteString(d.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

func lookup(decls []Declaration, property string) (string, bool) {
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].Property == property {
			return decls[i].Value, true
		}
	}
	return "", false
}

// put sets property on decls. A later value replaces an earlier one in
// place. An empty value is ignored the way a browser drops `margin: ;`.
func put(decls []Declaration, property, value string) []Declaration {
	property = strings.TrimSpace(property)
	if property == "" || strings.TrimSpace(value) == "" {
		return decls
	}
	for i := range decls {
		if decls[i].Property == property {
			decls[i].Value = value
			return decls
		}
	}
	return append(decls, Declaration{Property: property, Value: value})
}
