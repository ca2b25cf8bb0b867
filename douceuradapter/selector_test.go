package douceuradapter

import (
	"errors"
	"testing"

	"github.com/npillmayer/cssom/ruletree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectorList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.engine")
	defer teardown()
	//
	parts, err := ParseSelectorList(".a ,  .b:hover > span")
	require.NoError(t, err)
	assert.Equal(t, []string{".a", ".b:hover > span"}, parts)
	//
	parts, err = ParseSelectorList(`a[href="x,y"]:not(.b, .c)`)
	require.NoError(t, err)
	assert.Equal(t, []string{`a[href="x,y"]:not(.b, .c)`}, parts,
		"commas inside brackets must not split")
}

func TestParseSelectorListError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.engine")
	defer teardown()
	//
	for _, input := range []string{"", "   ", ".a,,", ".a { }", "%%%"} {
		_, err := ParseSelectorList(input)
		assert.Truef(t, errors.Is(err, ErrSyntax), "expected %q to be rejected", input)
	}
}

func TestParseMediaQueryList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.engine")
	defer teardown()
	//
	queries, err := ParseMediaQueryList("screen and (min-width: 600px), print")
	require.NoError(t, err)
	assert.Equal(t, []string{"screen and (min-width: 600px)", "print"}, queries)
	//
	queries, err = ParseMediaQueryList("   ")
	require.NoError(t, err)
	assert.Empty(t, queries, "expected blank query list to parse as empty")
}

func TestParseMediaQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.engine")
	defer teardown()
	//
	query, err := ParseMediaQuery("  screen  ")
	require.NoError(t, err)
	assert.Equal(t, "screen", query)
	//
	_, err = ParseMediaQuery("screen, print")
	assert.True(t, errors.Is(err, ErrSyntax), "expected two queries to be rejected")
}

func TestMediaQueryValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.engine")
	defer teardown()
	//
	for _, input := range []string{
		"screen",
		"only screen",
		"not print",
		"(min-width: 600px)",
		"screen and (min-width: 600px) and (orientation: landscape)",
	} {
		_, err := ParseMediaQuery(input)
		assert.NoErrorf(t, err, "expected %q to be accepted", input)
	}
	for _, input := range []string{
		"foo bar baz",       // types without a combinator
		"screen and",        // dangling combinator
		"and screen",        // leading combinator
		"not",               // prefix without a term
		"screen (min-width: 600px)", // feature without "and"
		"screen and (min-width: 600px", // unbalanced feature
	} {
		_, err := ParseMediaQuery(input)
		assert.Truef(t, errors.Is(err, ErrSyntax), "expected %q to be rejected", input)
	}
}

func TestParseKeyframeSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.engine")
	defer teardown()
	//
	selectors, err := ParseKeyframeSelectors("0%, 33.3%, 100%")
	require.NoError(t, err)
	assert.Equal(t, []ruletree.KeyframeSelector{0, 33.3, 100}, selectors)
	//
	selectors, err = ParseKeyframeSelectors("from, TO")
	require.NoError(t, err)
	assert.Equal(t, []ruletree.KeyframeSelector{0, 100}, selectors,
		"keywords must normalize to offsets")
}

func TestParseKeyframeSelectorsError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.engine")
	defer teardown()
	//
	for _, input := range []string{"", "150%", "-10%", "middle", "50% 60%", "50%,"} {
		_, err := ParseKeyframeSelectors(input)
		assert.Truef(t, errors.Is(err, ErrSyntax), "expected %q to be rejected", input)
	}
}
