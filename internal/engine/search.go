package engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"docgrip/internal/domain"
)

// maxSnippetLen bounds the length of the per-match display snippet.
const maxSnippetLen = 120

// pageSource is what the search scan needs from a document.
type pageSource interface {
	PageCount() int
	PageText(page int) string
}

// findAll scans every page for query and returns matches in page order,
// top to bottom within a page. An empty query matches nothing. The scan
// checks ctx between pages; when cancelled it returns what it has found
// so far together with ctx.Err().
func findAll(ctx context.Context, src pageSource, query string, caseSensitive bool) ([]domain.SearchResult, error) {
	if query == "" {
		return nil, nil
	}

	needle := query
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}

	var results []domain.SearchResult
	pages := src.PageCount()
	for page := 0; page < pages; page++ {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		text := src.PageText(page)
		if text == "" {
			continue
		}

		for lineNo, line := range strings.Split(text, "\n") {
			haystack := line
			if !caseSensitive {
				haystack = strings.ToLower(haystack)
			}

			offset := 0
			for {
				idx := strings.Index(haystack[offset:], needle)
				if idx < 0 {
					break
				}
				byteCol := offset + idx
				// Lowering maps rune to rune, so rune offsets agree
				// between haystack and line even where byte lengths
				// differ. Byte offsets do not; count in the haystack.
				results = append(results, domain.SearchResult{
					Page:    page,
					Line:    lineNo,
					Column:  utf8.RuneCountInString(haystack[:byteCol]),
					Snippet: snippet(line),
				})
				offset = byteCol + len(needle)
				if offset >= len(haystack) {
					break
				}
			}
		}
	}

	return results, nil
}

func snippet(line string) string {
	s := strings.TrimSpace(line)
	if utf8.RuneCountInString(s) <= maxSnippetLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxSnippetLen-1]) + "…"
}
