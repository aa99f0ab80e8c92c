package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzePatternsNilBelowFive(t *testing.T) {
	require.Nil(t, AnalyzePatterns(nil))
	require.Nil(t, AnalyzePatterns([]int{1, 2, 3, 4}))
	require.NotNil(t, AnalyzePatterns([]int{1, 2, 3, 4, 5}))
}

func TestAnalyzePatternsIdempotent(t *testing.T) {
	history := []int{1, 1, 1, 2, 3, 1, 2, 3, 1, 2, 3, 9, 9, 9, 9, 0}
	first := AnalyzePatterns(history)
	second := AnalyzePatterns(history)
	require.Equal(t, first, second)
}

func TestFindStreaks(t *testing.T) {
	p := AnalyzePatterns([]int{1, 1, 1, 2, 3})
	require.Len(t, p.Streaks, 1)
	require.Equal(t, Streak{Digit: 1, Count: 3, EndIndex: 2}, p.Streaks[0])

	// Runs of two do not qualify.
	p = AnalyzePatterns([]int{1, 1, 2, 2, 3})
	require.Empty(t, p.Streaks)

	// A trailing run counts.
	p = AnalyzePatterns([]int{5, 2, 7, 7, 7, 7})
	require.Len(t, p.Streaks, 1)
	require.Equal(t, Streak{Digit: 7, Count: 4, EndIndex: 5}, p.Streaks[0])
}

func TestFindStreaksKeepsFiveMostRecent(t *testing.T) {
	var history []int
	for d := 0; d < 7; d++ {
		history = append(history, d, d, d)
	}
	p := AnalyzePatterns(history)
	require.Len(t, p.Streaks, 5)
	require.Equal(t, 2, p.Streaks[0].Digit)
	require.Equal(t, 6, p.Streaks[4].Digit)
}

func TestFindSequences(t *testing.T) {
	// 1,2,3 occurs three times; nothing else repeats.
	p := AnalyzePatterns([]int{1, 2, 3, 1, 2, 3, 1, 2, 3})
	require.NotEmpty(t, p.Sequences)
	require.Equal(t, [3]int{1, 2, 3}, p.Sequences[0].Pattern)
	require.Equal(t, 3, p.Sequences[0].Occurrences)
	for _, s := range p.Sequences {
		require.GreaterOrEqual(t, s.Occurrences, 2)
	}
}

func TestHotAndColdDigits(t *testing.T) {
	history := []int{5, 5, 5, 5, 3, 3, 3, 2, 2, 1}
	p := AnalyzePatterns(history)

	require.Len(t, p.HotDigits, 3)
	require.Equal(t, 5, p.HotDigits[0].Digit)
	require.Equal(t, 4, p.HotDigits[0].Count)
	require.InDelta(t, 40.0, p.HotDigits[0].Percentage, 1e-9)
	for _, h := range p.HotDigits {
		require.Positive(t, h.Count, "hot digits must have appeared")
	}

	require.Len(t, p.ColdDigits, 3)
	for _, cold := range p.ColdDigits {
		require.Zero(t, cold.Count, "unseen digits are the coldest")
	}
}

func TestTransitionsTopTen(t *testing.T) {
	history := []int{1, 2, 1, 2, 1, 2, 3, 4}
	p := AnalyzePatterns(history)
	require.NotEmpty(t, p.Transitions)
	require.Equal(t, Transition{From: 1, To: 2, Count: 3}, p.Transitions[0])
	require.LessOrEqual(t, len(p.Transitions), 10)
}

func TestEvenOddAndHighLowUseTrailingTwenty(t *testing.T) {
	// 30 observations: first 10 are all 9s, trailing 20 alternate 0/5.
	var history []int
	for i := 0; i < 10; i++ {
		history = append(history, 9)
	}
	for i := 0; i < 10; i++ {
		history = append(history, 0, 5)
	}
	p := AnalyzePatterns(history)

	require.Equal(t, 10, p.EvenOdd.Even)
	require.Equal(t, 10, p.EvenOdd.Odd)
	require.InDelta(t, 50.0, p.EvenOdd.EvenPct, 1e-9)

	require.Equal(t, 10, p.HighLow.High)
	require.Equal(t, 10, p.HighLow.Low)
	require.InDelta(t, 50.0, p.HighLow.LowPct, 1e-9)
}
