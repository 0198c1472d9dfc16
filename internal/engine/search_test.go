package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource serves canned page texts for the search scan.
type fakeSource struct {
	pages []string
}

func (f *fakeSource) PageCount() int { return len(f.pages) }

func (f *fakeSource) PageText(page int) string {
	if page < 0 || page >= len(f.pages) {
		return ""
	}
	return f.pages[page]
}

func TestFindAllOrdersResultsByPage(t *testing.T) {
	src := &fakeSource{pages: []string{
		"foo appears here",
		"nothing on this page",
		"foo again\nand foo once more",
		"",
		"",
		"final foo",
	}}

	results, err := findAll(context.Background(), src, "foo", false)
	require.NoError(t, err)
	require.Len(t, results, 4)

	pages := []int{}
	for _, r := range results {
		pages = append(pages, r.Page)
	}
	require.Equal(t, []int{0, 2, 2, 5}, pages)
}

func TestFindAllCaseInsensitiveByDefault(t *testing.T) {
	src := &fakeSource{pages: []string{"The Quick Brown Fox"}}

	results, err := findAll(context.Background(), src, "quick", false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 0, results[0].Page)
	require.Equal(t, "The Quick Brown Fox", results[0].Snippet)
}

func TestFindAllCaseSensitive(t *testing.T) {
	src := &fakeSource{pages: []string{"The Quick Brown Fox"}}

	results, err := findAll(context.Background(), src, "quick", true)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestFindAllMultipleMatchesPerLine(t *testing.T) {
	src := &fakeSource{pages: []string{"ab ab ab"}}

	results, err := findAll(context.Background(), src, "ab", false)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, 0, results[0].Column)
	require.Equal(t, 3, results[1].Column)
	require.Equal(t, 6, results[2].Column)
}

func TestFindAllReportsLineAndColumn(t *testing.T) {
	src := &fakeSource{pages: []string{"first line\nsecond line with needle here"}}

	results, err := findAll(context.Background(), src, "needle", false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 1, results[0].Line)
	require.Equal(t, 17, results[0].Column)
}

func TestFindAllMatchAfterCaseLengthChangingRunes(t *testing.T) {
	// Lowercasing Ⱥ (2 bytes) yields ⱥ (3 bytes), so byte offsets in
	// the lowered text run past the end of the original line.
	src := &fakeSource{pages: []string{"ȺȺȺȺȺȺȺȺx"}}

	results, err := findAll(context.Background(), src, "x", false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 8, results[0].Column)
	require.Equal(t, "ȺȺȺȺȺȺȺȺx", results[0].Snippet)
}

func TestFindAllEmptyQuery(t *testing.T) {
	src := &fakeSource{pages: []string{"anything"}}

	results, err := findAll(context.Background(), src, "", false)
	require.NoError(t, err)
	require.Nil(t, results)
}

func TestFindAllCancelledContext(t *testing.T) {
	src := &fakeSource{pages: []string{"match", "match"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := findAll(ctx, src, "match", false)
	require.ErrorIs(t, err, context.Canceled)
}
