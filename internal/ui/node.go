// Package ui defines the node tree produced by page components.
//
// Components never render to strings directly. They return a Node tree that a
// renderer (HTML or terminal) walks afterwards, so the same tree can be
// serialized for a browser or laid out in a terminal.
package ui

import "strings"

// Node is a renderable piece of output: an element or a text leaf.
type Node interface {
	isNode()
}

// Text is a text leaf. Its content is never interpreted.
type Text string

func (Text) isNode() {}

// Element is a structural node with a tag, an optional class list and children.
type Element struct {
	Tag      string
	Class    string
	Children []Node
}

func (*Element) isNode() {}

// NewElement creates an element, dropping nil children.
func NewElement(tag, class string, children ...Node) *Element {
	kept := make([]Node, 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}
	return &Element{Tag: tag, Class: class, Children: kept}
}

// Classes returns the element's class list split on whitespace.
func (e *Element) Classes() []string {
	if e == nil {
		return nil
	}
	return strings.Fields(e.Class)
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	if el, ok := n.(*Element); ok {
		for _, child := range el.Children {
			Walk(child, fn)
		}
	}
}

// TextContent concatenates every text leaf under n in document order.
func TextContent(n Node) string {
	var b strings.Builder
	Walk(n, func(node Node) bool {
		if t, ok := node.(Text); ok {
			b.WriteString(string(t))
		}
		return true
	})
	return b.String()
}

// JoinClasses merges class lists, removing blanks and exact duplicates while
// keeping first-seen order.
func JoinClasses(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}
