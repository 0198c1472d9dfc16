package views

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var sgrRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripSGR(s string) string {
	return sgrRe.ReplaceAllString(s, "")
}

func TestHighlightPreservesLineContent(t *testing.T) {
	r := NewPageRenderer(NewStyles())

	line := "The Quick Brown Fox jumps over the quick fox"
	out := r.highlight(line, "quick")
	require.Equal(t, line, stripSGR(out))
}

func TestHighlightMatchAfterCaseLengthChangingRunes(t *testing.T) {
	r := NewPageRenderer(NewStyles())

	// Lowercasing Ⱥ (2 bytes) yields ⱥ (3 bytes); offsets found in the
	// lowered copy must not be used to slice the original bytes.
	line := "ȺȺȺȺȺȺȺȺx"
	out := r.highlight(line, "x")
	require.Equal(t, line, stripSGR(out))

	out = r.highlight(line, "ⱥⱥ")
	require.Equal(t, line, stripSGR(out))
}

func TestHighlightEmptyQueryIsIdentity(t *testing.T) {
	r := NewPageRenderer(NewStyles())

	require.Equal(t, "some page text", r.highlight("some page text", ""))
}
