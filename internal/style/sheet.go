// Package style resolves component style rules into class identifiers and CSS.
//
// A Sheet is the style-resolution boundary: it maps a resolved Block to a
// class identifier derived from the block's content, so equal blocks always
// share one class, and it collects the CSS of every class it handed out plus
// any global rules installed once per document.
package style

import (
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"strings"
	"sync"
)

// ClassPrefix starts every generated class identifier.
const ClassPrefix = "ps-"

// GlobalRule is a document-wide rule such as a reset.
type GlobalRule struct {
	Selector string
	Decls    []Declaration
}

// Sheet collects the styles produced during rendering.
type Sheet struct {
	id      func(Block) string
	mu      sync.Mutex
	globals []GlobalRule
	reset   bool
	classes map[string]Block
	names   map[string][]string
	order   []string
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{
		id:      ClassName,
		classes: make(map[string]Block),
		names:   make(map[string][]string),
	}
}

// ClassName returns the base identifier for a block without registering it.
// Blocks with no declarations have no class. Sheet.Class may suffix it when
// a different block already owns the same hash.
func ClassName(b Block) string {
	if b.IsEmpty() {
		return ""
	}
	h := fnv.New32a()
	_, _ = io.WriteString(h, b.CSS("&"))
	return fmt.Sprintf("%s%08x", ClassPrefix, h.Sum32())
}

// Class registers the block under its content-derived identifier and returns
// it. name labels the component that produced the block in the emitted CSS.
// Equal blocks always get the same identifier; a block whose hash is already
// taken by different content gets the first free "-N" suffix.
func (s *Sheet) Class(name string, b Block) string {
	id := s.id
	if id == nil {
		id = ClassName
	}
	base := id(b)
	if base == "" {
		return ""
	}
	css := b.CSS("&")

	s.mu.Lock()
	defer s.mu.Unlock()

	class := base
	for n := 1; ; n++ {
		stored, ok := s.classes[class]
		if !ok {
			s.classes[class] = b.Clone()
			s.order = append(s.order, class)
			break
		}
		if stored.CSS("&") == css {
			break
		}
		class = fmt.Sprintf("%s-%d", base, n)
	}
	if name != "" && !containsString(s.names[class], name) {
		s.names[class] = append(s.names[class], name)
	}
	return class
}

// Lookup returns the block registered under class.
func (s *Sheet) Lookup(class string) (Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.classes[class]
	if !ok {
		return Block{}, false
	}
	return b.Clone(), true
}

// Names returns the component names that produced class, sorted.
func (s *Sheet) Names(class string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := append([]string(nil), s.names[class]...)
	sort.Strings(names)
	return names
}

// Classes returns the registered class identifiers in registration order.
func (s *Sheet) Classes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.order...)
}

// Len returns the number of registered classes.
func (s *Sheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

// Reset installs document-wide rules. Only the first call on a sheet has an
// effect; it reports whether the rules were installed.
func (s *Sheet) Reset(rules ...GlobalRule) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reset {
		return false
	}
	s.reset = true
	for _, r := range rules {
		s.globals = append(s.globals, GlobalRule{
			Selector: r.Selector,
			Decls:    append([]Declaration(nil), r.Decls...),
		})
	}
	return true
}

// HasReset reports whether Reset has been applied to the sheet.
func (s *Sheet) HasReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reset
}

// Globals returns the installed global rules.
func (s *Sheet) Globals() []GlobalRule {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]GlobalRule(nil), s.globals...)
}

// CSS renders global rules followed by every class in registration order.
func (s *Sheet) CSS() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	for _, g := range s.globals {
		writeRule(&sb, "", g.Selector, g.Decls)
	}
	for _, class := range s.order {
		if names := s.names[class]; len(names) > 0 {
			sorted := append([]string(nil), names...)
			sort.Strings(sorted)
			fmt.Fprintf(&sb, "/* %s */\n", strings.Join(sorted, ", "))
		}
		sb.WriteString(s.classes[class].CSS("." + class))
	}
	return sb.String()
}

// WriteTo writes the sheet's CSS to w.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.CSS())
	return int64(n), err
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
