package search

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

func resultsAt(pages ...int) []domain.SearchResult {
	out := make([]domain.SearchResult, len(pages))
	for i, p := range pages {
		out[i] = domain.SearchResult{Page: p}
	}
	return out
}

func TestSetQueryClearsStateAndIssuesSeq(t *testing.T) {
	s, _ := newTestService()

	seq, submitted := s.SetQuery("foo")
	require.True(t, submitted)

	seq2, submitted := s.SetQuery("foobar")
	require.True(t, submitted)
	require.Greater(t, seq2, seq)
	require.Equal(t, 0, s.MatchCount())
	require.Equal(t, NoCursor, s.CursorIndex())
}

func TestSetQueryEmptyClearsWithoutEngineCall(t *testing.T) {
	s, jumps := newTestService()

	seq, submitted := s.SetQuery("foo")
	require.True(t, submitted)
	s.Apply(seq, "foo", resultsAt(0, 2))
	require.Equal(t, 2, s.MatchCount())

	_, submitted = s.SetQuery("")
	require.False(t, submitted)
	require.Equal(t, 0, s.MatchCount())
	require.Equal(t, NoCursor, s.CursorIndex())
	// Only the jump from applying "foo" happened.
	require.Equal(t, []int{1}, *jumps)
}

func TestSetQueryUnchangedIsNotResubmitted(t *testing.T) {
	s, _ := newTestService()

	seq, submitted := s.SetQuery("foo")
	require.True(t, submitted)

	seq2, submitted := s.SetQuery("foo")
	require.False(t, submitted)
	require.Equal(t, seq, seq2)
}

func TestApplyJumpsToFirstResult(t *testing.T) {
	s, jumps := newTestService()

	seq, _ := s.SetQuery("foo")
	s.Apply(seq, "foo", resultsAt(0, 2, 5))

	require.Equal(t, 0, s.CursorIndex())
	// Page 0 (engine) is page 1 (user-facing).
	require.Equal(t, []int{1}, *jumps)
}

func TestApplyEmptyResultSet(t *testing.T) {
	s, jumps := newTestService()

	seq, _ := s.SetQuery("nope")
	s.Apply(seq, "nope", nil)

	require.Equal(t, NoCursor, s.CursorIndex())
	require.Empty(t, *jumps)
}

func TestStaleResultsAreDiscarded(t *testing.T) {
	s, jumps := newTestService()

	seqA, _ := s.SetQuery("aaa")
	seqB, _ := s.SetQuery("bbb")

	// B's results land first, then A's straggler arrives.
	s.Apply(seqB, "bbb", resultsAt(3))
	s.Apply(seqA, "aaa", resultsAt(7, 8))

	require.Equal(t, 1, s.MatchCount())
	require.Equal(t, 3, s.Current().Page)
	require.Equal(t, []int{4}, *jumps)
}

func TestAdvanceCyclesThroughResults(t *testing.T) {
	s, jumps := newTestService()

	seq, _ := s.SetQuery("foo")
	// Three results at 0-based pages 0, 2, 5.
	s.Apply(seq, "foo", resultsAt(0, 2, 5))
	require.Equal(t, []int{1}, *jumps)

	s.Advance()
	require.Equal(t, []int{1, 3}, *jumps)
	s.Advance()
	require.Equal(t, []int{1, 3, 6}, *jumps)
	s.Advance() // wraps back to the first result
	require.Equal(t, []int{1, 3, 6, 1}, *jumps)
}

func TestAdvanceNTimesReturnsToStart(t *testing.T) {
	s, _ := newTestService()

	seq, _ := s.SetQuery("x")
	s.Apply(seq, "x", resultsAt(1, 4, 6, 9))

	start := s.CursorIndex()
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	require.Equal(t, start, s.CursorIndex())

	for i := 0; i < 4; i++ {
		s.Retreat()
	}
	require.Equal(t, start, s.CursorIndex())
}

func TestRetreatWrapsToLastResult(t *testing.T) {
	s, jumps := newTestService()

	seq, _ := s.SetQuery("x")
	s.Apply(seq, "x", resultsAt(0, 2, 5))

	s.Retreat()
	require.Equal(t, 2, s.CursorIndex())
	require.Equal(t, 6, (*jumps)[len(*jumps)-1])
}

func TestAdvanceWithoutResultsIsNoop(t *testing.T) {
	s, jumps := newTestService()
	s.Advance()
	s.Retreat()
	require.Empty(t, *jumps)
	require.Equal(t, NoCursor, s.CursorIndex())
}

func TestAbandonDropsInFlightDelivery(t *testing.T) {
	s, jumps := newTestService()

	seq, _ := s.SetQuery("foo")
	s.Abandon()
	s.Apply(seq, "foo", resultsAt(1))

	require.Equal(t, 0, s.MatchCount())
	require.Empty(t, *jumps)
}
