package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateStatisticsEmpty(t *testing.T) {
	require.Nil(t, CalculateStatistics(nil, make([]int, 10)))
}

func TestCalculateStatistics(t *testing.T) {
	history := []int{2, 4, 4, 4, 5, 5, 7, 9}
	stats := CalculateStatistics(history, CountDigits(history))

	require.InDelta(t, 5.0, stats.Mean, 1e-9)
	require.InDelta(t, 4.0, stats.Variance, 1e-9, "population variance, not sample")
	require.InDelta(t, 2.0, stats.StdDev, 1e-9)
	require.Equal(t, 8, stats.TotalTicks)
	require.Equal(t, 5, stats.UniqueDigits)

	require.Len(t, stats.Distribution, 10)
	four := stats.Distribution[4]
	require.Equal(t, 3, four.Count)
	require.InDelta(t, 37.5, four.Percentage, 1e-9)
	require.InDelta(t, 3-0.8, four.Deviation, 1e-9)

	zero := stats.Distribution[0]
	require.Zero(t, zero.Count)
	require.InDelta(t, -0.8, zero.Deviation, 1e-9)
}
