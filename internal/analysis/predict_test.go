package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func generate(history []int) []Prediction {
	counts := CountDigits(history)
	return GeneratePredictions(history, counts, AnalyzePatterns(history), time.Unix(0, 0).UTC())
}

func TestGeneratePredictionsEmptyWindow(t *testing.T) {
	require.Nil(t, generate(nil))
}

func TestMostFrequentStrategy(t *testing.T) {
	preds := generate([]int{0, 0, 0, 0, 0})
	require.NotEmpty(t, preds)

	var mf *Prediction
	for i := range preds {
		if preds[i].Strategy == StrategyMostFrequent {
			mf = &preds[i]
		}
	}
	require.NotNil(t, mf)
	require.Equal(t, 0, mf.Digit)
	require.InDelta(t, 100.0, mf.Confidence, 1e-9)
}

func TestSequenceStrategyContinuesPattern(t *testing.T) {
	// 1,2,3 repeats and the window ends on 1,2 so the continuation is 3.
	preds := generate([]int{1, 2, 3, 1, 2, 3, 1, 2})

	var seq *Prediction
	for i := range preds {
		if preds[i].Strategy == StrategySequence {
			seq = &preds[i]
		}
	}
	require.NotNil(t, seq)
	require.Equal(t, 3, seq.Digit)
	require.InDelta(t, 2.0/8.0*100, seq.Confidence, 1e-9)
}

func TestTransitionStrategyFollowsLastDigit(t *testing.T) {
	// 7 is almost always followed by 4; the window ends on 7.
	preds := generate([]int{7, 4, 7, 4, 7, 4, 2, 7})

	var tr *Prediction
	for i := range preds {
		if preds[i].Strategy == StrategyTransition {
			tr = &preds[i]
		}
	}
	require.NotNil(t, tr)
	require.Equal(t, 4, tr.Digit)
}

func TestPredictionsSortedByConfidenceDesc(t *testing.T) {
	preds := generate([]int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2})
	require.GreaterOrEqual(t, len(preds), 2)
	for i := 1; i < len(preds); i++ {
		require.GreaterOrEqual(t, preds[i-1].Confidence, preds[i].Confidence)
	}
}
