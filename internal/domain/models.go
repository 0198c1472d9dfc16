package domain

// SearchResult is a single full-text match as produced by the engine.
// Page is 0-based (engine-facing); the conversion to the 1-based
// user-facing page happens in the viewer services.
type SearchResult struct {
	Page    int    // 0-based page index
	Line    int    // 0-based line within the extracted page text
	Column  int    // 0-based rune offset within the line
	Snippet string // the matched line, trimmed for display
}

// OutlineNode is one entry of the document's table of contents.
// The tree is owned by the engine and read-only to the viewer.
type OutlineNode struct {
	Title      string
	TargetPage int // 0-based; NoTargetPage when the node has no resolvable destination
	Children   []*OutlineNode
}

// NoTargetPage marks outline nodes whose destination could not be resolved.
// Selecting such a node is a no-op.
const NoTargetPage = -1

// ZoomMode distinguishes a fixed zoom factor from fit-to-width.
type ZoomMode int

const (
	ZoomFixed ZoomMode = iota
	ZoomFitWidth
)

func (m ZoomMode) String() string {
	if m == ZoomFitWidth {
		return "fit"
	}
	return "fixed"
}

// DocumentInfo describes a successfully loaded document.
type DocumentInfo struct {
	Path       string
	TotalPages int
}
