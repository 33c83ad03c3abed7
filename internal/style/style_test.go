package style

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textParams struct {
	Color    Value
	FontSize Value
}

type boxParams struct {
	FlexDirection Value
	AlignItems    Value
	Margin        Value
}

func textRules() []Rule[textParams] {
	return []Rule[textParams]{
		Prop("color", func(p textParams) Value { return p.Color }, "#ffffff"),
		Prop("font-size", func(p textParams) Value { return p.FontSize }, ".9em"),
	}
}

func boxRules() []Rule[boxParams] {
	return []Rule[boxParams]{
		Static[boxParams]("display", "flex"),
		Prop("flex-direction", func(p boxParams) Value { return p.FlexDirection }, "row"),
		Prop("align-items", func(p boxParams) Value { return p.AlignItems }, "left"),
		Prop("margin", func(p boxParams) Value { return p.Margin }, ""),
	}
}

func TestValue(t *testing.T) {
	t.Parallel()

	var zero Value
	assert.False(t, zero.IsSet())
	assert.Equal(t, "fallback", zero.Or("fallback"))
	assert.Equal(t, "<unset>", zero.String())

	empty := Set("")
	assert.True(t, empty.IsSet())
	assert.Equal(t, "", empty.Or("fallback"))

	assert.False(t, Maybe("").IsSet())
	got, ok := Maybe("red").Get()
	assert.True(t, ok)
	assert.Equal(t, "red", got)
}

func TestPropFallbackWhenUnset(t *testing.T) {
	t.Parallel()

	block := Evaluate(textParams{}, textRules()...)

	color, ok := block.Get("color")
	require.True(t, ok)
	assert.Equal(t, "#ffffff", color)

	size, ok := block.Get("font-size")
	require.True(t, ok)
	assert.Equal(t, ".9em", size)
}

func TestPropExplicitValueWins(t *testing.T) {
	t.Parallel()

	block := Evaluate(textParams{FontSize: Set("1.2em")}, textRules()...)

	size, _ := block.Get("font-size")
	assert.Equal(t, "1.2em", size)
}

func TestValuesPassThroughVerbatim(t *testing.T) {
	t.Parallel()

	block := Evaluate(textParams{Color: Set("not-a-colour!!")}, textRules()...)

	color, _ := block.Get("color")
	assert.Equal(t, "not-a-colour!!", color)
}

func TestEmptyFallbackDropsDeclaration(t *testing.T) {
	t.Parallel()

	block := Evaluate(boxParams{}, boxRules()...)

	_, ok := block.Get("margin")
	assert.False(t, ok)
	assert.NotContains(t, block.CSS(".x"), "margin")
}

func TestParametersDoNotLeak(t *testing.T) {
	t.Parallel()

	base := Evaluate(boxParams{FlexDirection: Set("column")}, boxRules()...)
	withMargin := Evaluate(boxParams{FlexDirection: Set("column"), Margin: Set("2em")}, boxRules()...)

	for _, prop := range []string{"display", "flex-direction", "align-items"} {
		before, _ := base.Get(prop)
		after, _ := withMargin.Get(prop)
		assert.Equal(t, before, after, prop)
	}
	margin, ok := withMargin.Get("margin")
	require.True(t, ok)
	assert.Equal(t, "2em", margin)
}

func TestLaterRuleOverridesInPlace(t *testing.T) {
	t.Parallel()

	block := Evaluate(boxParams{},
		Static[boxParams]("display", "block"),
		Static[boxParams]("padding", "1em"),
		Static[boxParams]("display", "flex"),
	)

	require.Len(t, block.Decls, 2)
	assert.Equal(t, Declaration{Property: "display", Value: "flex"}, block.Decls[0])
}

func TestHoverAndMediaScopes(t *testing.T) {
	t.Parallel()

	block := Evaluate(boxParams{},
		Static[boxParams]("border", "1px solid #131a22"),
		Hover(
			Static[boxParams]("border", "1px solid #ffffff"),
			Static[boxParams]("border-radius", "0.2em"),
		),
		Media("(max-width: 850px)", Static[boxParams]("display", "none")),
	)

	base, _ := block.Get("border")
	hover, _ := block.HoverValue("border")
	hidden, ok := block.MediaValue("(max-width: 850px)", "display")

	assert.Equal(t, "1px solid #131a22", base)
	assert.Equal(t, "1px solid #ffffff", hover)
	require.True(t, ok)
	assert.Equal(t, "none", hidden)

	css := block.CSS(".w")
	assert.Contains(t, css, ".w:hover {\n  border: 1px solid #ffffff;\n  border-radius: 0.2em;\n}\n")
	assert.Contains(t, css, "@media (max-width: 850px) {\n  .w {\n    display: none;\n  }\n}\n")
}

func TestClassNameIsContentDerived(t *testing.T) {
	t.Parallel()

	a := Evaluate(textParams{}, textRules()...)
	b := Evaluate(textParams{Color: Set("#ffffff")}, textRules()...)
	c := Evaluate(textParams{Color: Set("#000000")}, textRules()...)

	assert.Equal(t, ClassName(a), ClassName(b))
	assert.NotEqual(t, ClassName(a), ClassName(c))
	assert.True(t, strings.HasPrefix(ClassName(a), ClassPrefix))
	assert.Equal(t, "", ClassName(Block{}))
}

func TestSheetRegistersOncePerBlock(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	block := Evaluate(textParams{}, textRules()...)

	first := sheet.Class("Navbar.Text", block)
	second := sheet.Class("Navbar.Text", block)
	third := sheet.Class("Other.Text", block)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, sheet.Len())
	assert.Equal(t, []string{"Navbar.Text", "Other.Text"}, sheet.Names(first))

	got, ok := sheet.Lookup(first)
	require.True(t, ok)
	assert.Equal(t, block, got)

	_, ok = sheet.Lookup("ps-missing")
	assert.False(t, ok)
}

func TestSheetEmptyBlockHasNoClass(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	assert.Equal(t, "", sheet.Class("Empty", Block{}))
	assert.Equal(t, 0, sheet.Len())
}

func TestSheetResetAppliesOnce(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	reset := GlobalRule{Selector: "*", Decls: []Declaration{{Property: "margin", Value: "0"}}}

	assert.False(t, sheet.HasReset())
	assert.True(t, sheet.Reset(reset))
	assert.False(t, sheet.Reset(reset))
	assert.True(t, sheet.HasReset())
	assert.Len(t, sheet.Globals(), 1)
}

func TestSheetCSSOrdersGlobalsFirst(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	sheet.Reset(GlobalRule{Selector: "*", Decls: []Declaration{{Property: "margin", Value: "0"}}})
	class := sheet.Class("Navbar.Text", Evaluate(textParams{}, textRules()...))

	css := sheet.CSS()
	resetAt := strings.Index(css, "* {")
	classAt := strings.Index(css, "."+class+" {")
	require.GreaterOrEqual(t, resetAt, 0)
	require.Greater(t, classAt, resetAt)
	assert.Contains(t, css, "/* Navbar.Text */")

	var buf bytes.Buffer
	n, err := sheet.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(css)), n)
	assert.Equal(t, css, buf.String())
}

func TestSheetConcurrentUse(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	block := Evaluate(textParams{}, textRules()...)

	var wg sync.WaitGroup
	classes := make([]string, 16)
	for i := range classes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			classes[i] = sheet.Class("Text", block)
		}(i)
	}
	wg.Wait()

	for _, class := range classes {
		assert.Equal(t, classes[0], class)
	}
	assert.Equal(t, 1, sheet.Len())
}

func colorBlock(i int) Block {
	return Block{Decls: []Declaration{{Property: "color", Value: fmt.Sprintf("#%06x", i)}}}
}

func TestClassSeparatesHashCollisions(t *testing.T) {
	t.Parallel()

	seen := make(map[string]int)
	first, second := -1, -1
	for i := 0; i < 1<<20 && second < 0; i++ {
		id := ClassName(colorBlock(i))
		if j, ok := seen[id]; ok {
			first, second = j, i
			break
		}
		seen[id] = i
	}
	require.GreaterOrEqual(t, second, 0, "no 32-bit collision among color blocks")
	require.Equal(t, ClassName(colorBlock(first)), ClassName(colorBlock(second)))

	sheet := NewSheet()
	c1 := sheet.Class("First", colorBlock(first))
	c2 := sheet.Class("Second", colorBlock(second))
	require.NotEqual(t, c1, c2)
	assert.Equal(t, ClassName(colorBlock(first)), c1)
	assert.Equal(t, c1+"-1", c2)

	got, ok := sheet.Lookup(c2)
	require.True(t, ok)
	color, _ := got.Get("color")
	assert.Equal(t, fmt.Sprintf("#%06x", second), color)

	assert.Equal(t, c2, sheet.Class("Second", colorBlock(second)))
	assert.Equal(t, 2, sheet.Len())
}

func TestClassSuffixesUntilFree(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	sheet.id = func(Block) string { return ClassPrefix + "00000000" }

	a := sheet.Class("A", colorBlock(1))
	b := sheet.Class("B", colorBlock(2))
	c := sheet.Class("C", colorBlock(3))

	assert.Equal(t, []string{"ps-00000000", "ps-00000000-1", "ps-00000000-2"}, []string{a, b, c})
	assert.Equal(t, b, sheet.Class("B", colorBlock(2)))
	assert.Equal(t, []string{a, b, c}, sheet.Classes())

	css := sheet.CSS()
	assert.Contains(t, css, ".ps-00000000-1 {\n  color: #000002;\n}")
	assert.Contains(t, css, ".ps-00000000-2 {\n  color: #000003;\n}")
}

func TestNestedHoverAndMediaKeepBothScopes(t *testing.T) {
	t.Parallel()

	const query = "(max-width: 850px)"
	block := Evaluate(boxParams{},
		Media(query,
			Static[boxParams]("display", "block"),
			Hover(Static[boxParams]("color", "red")),
		),
		Hover(
			Static[boxParams]("color", "blue"),
			Media(query, Static[boxParams]("border", "none")),
		),
		Media("screen", Media("(min-width: 100px)", Static[boxParams]("gap", "1em"))),
	)

	hover, _ := block.HoverValue("color")
	assert.Equal(t, "blue", hover)
	_, baseHasBorder := block.HoverValue("border")
	assert.False(t, baseHasBorder)

	display, _ := block.MediaValue(query, "display")
	assert.Equal(t, "block", display)
	_, leaked := block.MediaValue(query, "color")
	assert.False(t, leaked)

	color, ok := block.MediaHoverValue(query, "color")
	require.True(t, ok)
	assert.Equal(t, "red", color)
	border, ok := block.MediaHoverValue(query, "border")
	require.True(t, ok)
	assert.Equal(t, "none", border)

	gap, ok := block.MediaValue("screen and (min-width: 100px)", "gap")
	require.True(t, ok)
	assert.Equal(t, "1em", gap)

	css := block.CSS(".w")
	assert.Contains(t, css, "@media (max-width: 850px) {\n  .w {\n    display: block;\n  }\n  .w:hover {\n    color: red;\n    border: none;\n  }\n}\n")
	assert.False(t, Block{Media: []MediaBlock{{Query: query, Hover: []Declaration{{Property: "color", Value: "red"}}}}}.IsEmpty())
}
