package navigation

// State holds the page pointer. CurrentPage is 1-based (user-facing);
// 0 means the empty-document state where all navigation is a no-op.
type State struct {
	CurrentPage int
	TotalPages  int
}
