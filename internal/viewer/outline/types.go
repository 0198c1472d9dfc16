package outline

import "docgrip/internal/domain"

// Row is one displayable line of the flattened outline sidebar.
type Row struct {
	Node  *domain.OutlineNode
	Depth int
}
