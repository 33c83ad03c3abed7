package style

// Rule contributes declarations to a Block from a typed parameter record.
// Rules are pure: the same record always yields the same declarations.
type Rule[P any] func(props P, b *Builder)

// Builder accumulates declarations while rules are evaluated. It tracks the
// current scope so that Hover and Media rules can nest ordinary rules.
type Builder struct {
	block *Block
	hover bool
	media string
}

// Set writes a declaration into the current scope.
func (b *Builder) Set(property, value string) {
	switch {
	case b.media != "" && b.hover:
		m := b.block.mediaBlock(b.media)
		m.Hover = put(m.Hover, property, value)
	case b.media != "":
		m := b.block.mediaBlock(b.media)
		m.Decls = put(m.Decls, property, value)
	case b.hover:
		b.block.Hover = put(b.block.Hover, property, value)
	default:
		b.block.Decls = put(b.block.Decls, property, value)
	}
}

// Static declares a constant property value.
func Static[P any](property, value string) Rule[P] {
	return func(_ P, b *Builder) {
		b.Set(property, value)
	}
}

// Prop declares a property whose value comes from the parameter record, with
// fallback used when the parameter is unset. Each rule owns its fallback;
// nothing is shared between components.
func Prop[P any](property string, get func(P) Value, fallback string) Rule[P] {
	return func(props P, b *Builder) {
		b.Set(property, get(props).Or(fallback))
	}
}

// Hover scopes rules to the :hover state. Inside Media the hover rules stay
// under that query.
func Hover[P any](rules ...Rule[P]) Rule[P] {
	return func(props P, b *Builder) {
		scoped := &Builder{block: b.block, hover: true, media: b.media}
		for _, rule := range rules {
			rule(props, scoped)
		}
	}
}

// Media scopes rules to a media query such as "(max-width: 850px)". Inside
// Hover the rules keep the hover state; nested queries are joined with "and".
func Media[P any](query string, rules ...Rule[P]) Rule[P] {
	return func(props P, b *Builder) {
		scope := query
		if b.media != "" {
			scope = b.media + " and " + query
		}
		scoped := &Builder{block: b.block, hover: b.hover, media: scope}
		for _, rule := range rules {
			rule(props, scoped)
		}
	}
}

// Evaluate runs rules in order against props and returns the resolved block.
// Later rules override earlier ones for the same property and scope.
func Evaluate[P any](props P, rules ...Rule[P]) Block {
	var block Block
	b := &Builder{block: &block}
	for _, rule := range rules {
		if rule != nil {
			rule(props, b)
		}
	}
	return block
}
