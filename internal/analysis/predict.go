package analysis

import (
	"sort"
	"time"
)

// Heuristic labels for the four prediction strategies.
const (
	StrategyMostFrequent = "Most Frequent"
	StrategyHotDigit     = "Hot Digit"
	StrategySequence     = "Sequence Pattern"
	StrategyTransition   = "Transition Analysis"
)

// Prediction is one heuristic's candidate next digit. Confidence is a 0-100
// score from a fixed formula, not a calibrated probability.
type Prediction struct {
	Digit       int       `json:"digit"`
	Confidence  float64   `json:"confidence"`
	Strategy    string    `json:"strategy"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GeneratePredictions applies the four independent heuristics to the window
// snapshot and returns candidates sorted by confidence descending. Any subset
// may be absent when its precondition is unmet.
func GeneratePredictions(history, counts []int, patterns *Patterns, now time.Time) []Prediction {
	if len(history) == 0 {
		return nil
	}

	var predictions []Prediction

	// Most frequent digit over the full window.
	maxCount, mostFrequent := 0, 0
	for digit, count := range counts {
		if count > maxCount {
			maxCount, mostFrequent = count, digit
		}
	}
	predictions = append(predictions, Prediction{
		Digit:       mostFrequent,
		Confidence:  float64(maxCount) / float64(len(history)) * 100,
		Strategy:    StrategyMostFrequent,
		GeneratedAt: now,
	})

	// Hottest digit of the trailing slice.
	if patterns != nil && len(patterns.HotDigits) > 0 {
		hot := patterns.HotDigits[0]
		predictions = append(predictions, Prediction{
			Digit:       hot.Digit,
			Confidence:  hot.Percentage,
			Strategy:    StrategyHotDigit,
			GeneratedAt: now,
		})
	}

	// Sequence continuation: the last two observations match the first two
	// elements of a repeating 3-sequence.
	if patterns != nil && len(patterns.Sequences) > 0 && len(history) >= 3 {
		a, b := history[len(history)-2], history[len(history)-1]
		for _, seq := range patterns.Sequences {
			if seq.Pattern[0] == a && seq.Pattern[1] == b {
				predictions = append(predictions, Prediction{
					Digit:       seq.Pattern[2],
					Confidence:  float64(seq.Occurrences) / float64(len(history)) * 100,
					Strategy:    StrategySequence,
					GeneratedAt: now,
				})
				break
			}
		}
	}

	// Most frequent recorded successor of the latest digit.
	if patterns != nil && len(patterns.Transitions) > 0 {
		last := history[len(history)-1]
		for _, tr := range patterns.Transitions {
			if tr.From == last {
				predictions = append(predictions, Prediction{
					Digit:       tr.To,
					Confidence:  float64(tr.Count) / float64(len(history)) * 100,
					Strategy:    StrategyTransition,
					GeneratedAt: now,
				})
				break
			}
		}
	}

	sort.SliceStable(predictions, func(a, b int) bool {
		return predictions[a].Confidence > predictions[b].Confidence
	})
	return predictions
}
