package outline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"docgrip/internal/domain"
)

func newTestService() (*Service, *[]int) {
	jumps := &[]int{}
	s := NewService(nil)
	s.SetGotoFunction(func(page int) {
		*jumps = append(*jumps, page)
	})
	return s, jumps
}

func TestSelectNavigatesToExternalPage(t *testing.T) {
	s, jumps := newTestService()

	// 0-based target page 4 is user-facing page 5.
	s.Select(&domain.OutlineNode{Title: "Chapter 3", TargetPage: 4})
	require.Equal(t, []int{5}, *jumps)
}

func TestSelectWithoutTargetIsNoop(t *testing.T) {
	s, jumps := newTestService()

	s.Select(&domain.OutlineNode{Title: "Unresolved", TargetPage: domain.NoTargetPage})
	s.Select(nil)
	require.Empty(t, *jumps)
}

func TestFlattenPreservesDocumentOrder(t *testing.T) {
	s, _ := newTestService()

	s.SetTree([]*domain.OutlineNode{
		{
			Title:      "Introduction",
			TargetPage: 0,
			Children: []*domain.OutlineNode{
				{Title: "Motivation", TargetPage: 1},
				{Title: "Outline", TargetPage: 2},
			},
		},
		{Title: "Methods", TargetPage: 5},
	})

	rows := s.Rows()
	require.Len(t, rows, 4)
	require.Equal(t, "Introduction", rows[0].Node.Title)
	require.Equal(t, 0, rows[0].Depth)
	require.Equal(t, "Motivation", rows[1].Node.Title)
	require.Equal(t, 1, rows[1].Depth)
	require.Equal(t, "Outline", rows[2].Node.Title)
	require.Equal(t, "Methods", rows[3].Node.Title)
	require.Equal(t, 0, rows[3].Depth)
}

func TestSetTreeReplacesRows(t *testing.T) {
	s, _ := newTestService()

	s.SetTree([]*domain.OutlineNode{{Title: "A", TargetPage: 0}})
	require.False(t, s.Empty())

	s.SetTree(nil)
	require.True(t, s.Empty())
}

func TestSetTreeDoesNotMutateEarlierRows(t *testing.T) {
	s, _ := newTestService()

	s.SetTree([]*domain.OutlineNode{{Title: "Old Chapter", TargetPage: 0}})
	before := s.Rows()

	s.SetTree([]*domain.OutlineNode{{Title: "New Chapter", TargetPage: 3}})

	require.Equal(t, "Old Chapter", before[0].Node.Title)
	require.Equal(t, "New Chapter", s.Rows()[0].Node.Title)
}
