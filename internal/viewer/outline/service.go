package outline

import (
	"docgrip/internal/domain"
	"docgrip/internal/eventbus"
)

// Service resolves outline selections to page jumps. It holds only a
// read-only reference to the tree the engine produced at load time,
// plus the flattened rows the sidebar renders.
type Service struct {
	bus    eventbus.EventBus
	gotoFn func(int) // jump to a 1-based page, injected at wiring time

	tree []*domain.OutlineNode
	rows []Row
}

// NewService creates a new outline service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// SetGotoFunction sets the page jump callback.
func (s *Service) SetGotoFunction(fn func(int)) {
	s.gotoFn = fn
}

// SetTree installs the outline read from the document. Called once per
// load; the tree is immutable afterwards. Rows handed out earlier keep
// their backing array, so the flattened rows are rebuilt fresh.
func (s *Service) SetTree(tree []*domain.OutlineNode) {
	s.tree = tree
	s.rows = nil
	s.flatten(tree, 0)
}

// Rows returns the flattened sidebar rows.
func (s *Service) Rows() []Row {
	return s.rows
}

// Empty reports whether the document has no outline.
func (s *Service) Empty() bool {
	return len(s.rows) == 0
}

// Select navigates to the node's target page. Nodes without a
// resolvable target are a no-op.
func (s *Service) Select(node *domain.OutlineNode) {
	if node == nil || node.TargetPage == domain.NoTargetPage {
		return
	}
	if s.gotoFn != nil {
		// TargetPage is 0-based as produced by the engine.
		s.gotoFn(node.TargetPage + 1)
	}
	if s.bus != nil {
		s.bus.Publish(domain.OutlineSelectedEvent{
			Title: node.Title,
			Page:  node.TargetPage + 1,
		})
	}
}

func (s *Service) flatten(nodes []*domain.OutlineNode, depth int) {
	for _, n := range nodes {
		s.rows = append(s.rows, Row{Node: n, Depth: depth})
		s.flatten(n.Children, depth+1)
	}
}
