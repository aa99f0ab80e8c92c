package analysis

import "math"

// DigitStat is one digit's full-window distribution entry. Deviation is the
// difference from the uniform expectation count/10.
type DigitStat struct {
	Digit      int     `json:"digit"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Deviation  float64 `json:"deviation"`
}

// Statistics are descriptive statistics over the full window.
type Statistics struct {
	Mean         float64     `json:"mean"`
	Variance     float64     `json:"variance"`
	StdDev       float64     `json:"std_dev"`
	Distribution []DigitStat `json:"distribution"`
	TotalTicks   int         `json:"total_ticks"`
	UniqueDigits int         `json:"unique_digits"`
}

// CalculateStatistics computes mean, population variance, standard deviation
// and the per-digit distribution for the window snapshot. Returns nil for an
// empty window.
func CalculateStatistics(history []int, counts []int) *Statistics {
	if len(history) == 0 {
		return nil
	}

	n := float64(len(history))
	sum := 0.0
	for _, d := range history {
		sum += float64(d)
	}
	mean := sum / n

	variance := 0.0
	for _, d := range history {
		diff := float64(d) - mean
		variance += diff * diff
	}
	variance /= n

	distribution := make([]DigitStat, 10)
	unique := 0
	for digit, count := range counts {
		if count > 0 {
			unique++
		}
		distribution[digit] = DigitStat{
			Digit:      digit,
			Count:      count,
			Percentage: float64(count) / n * 100,
			Deviation:  float64(count) - n/10,
		}
	}

	return &Statistics{
		Mean:         mean,
		Variance:     variance,
		StdDev:       math.Sqrt(variance),
		Distribution: distribution,
		TotalTicks:   len(history),
		UniqueDigits: unique,
	}
}
