package components

import (
	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
)

// Classed is implemented by parameter records that carry a style class.
// WithClass returns a copy of the record with the class replaced.
type Classed[P any] interface {
	ClassName() string
	WithClass(class string) P
}

// Primitive renders a parameter record and its children into a node.
type Primitive[P any] func(props P, children ...ui.Node) ui.Node

// RenderContext carries what components need while rendering.
// A nil Sheet is allowed; classes are then resolved against a private sheet
// that is discarded with the context.
type RenderContext struct {
	Sheet *style.Sheet
}

// NewRenderContext returns a context that resolves classes into sheet.
func NewRenderContext(sheet *style.Sheet) RenderContext {
	return RenderContext{Sheet: sheet}
}

// DefaultContext returns a render context backed by a fresh sheet.
func DefaultContext() RenderContext {
	return RenderContext{Sheet: style.NewSheet()}
}

func (r RenderContext) sheet() *style.Sheet {
	if r.Sheet == nil {
		return style.NewSheet()
	}
	return r.Sheet
}
