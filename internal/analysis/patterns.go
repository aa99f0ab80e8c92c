package analysis

import "sort"

// recentSlice is the number of trailing observations the hot/cold, even/odd
// and high/low views look at.
const recentSlice = 20

// Streak is a maximal run of an identical consecutive digit.
type Streak struct {
	Digit    int `json:"digit"`
	Count    int `json:"count"`
	EndIndex int `json:"end_index"`
}

// Sequence is a repeating length-3 contiguous subsequence.
type Sequence struct {
	Pattern     [3]int `json:"pattern"`
	Occurrences int    `json:"occurrences"`
}

// DigitShare is a digit's count and percentage within the trailing slice.
type DigitShare struct {
	Digit      int     `json:"digit"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Transition is an observed adjacent digit pair.
type Transition struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

// ParitySplit is the even/odd distribution of the trailing slice.
type ParitySplit struct {
	Even    int     `json:"even"`
	Odd     int     `json:"odd"`
	EvenPct float64 `json:"even_pct"`
	OddPct  float64 `json:"odd_pct"`
}

// RangeSplit is the high(5-9)/low(0-4) distribution of the trailing slice.
type RangeSplit struct {
	High    int     `json:"high"`
	Low     int     `json:"low"`
	HighPct float64 `json:"high_pct"`
	LowPct  float64 `json:"low_pct"`
}

// Patterns bundles all derived pattern views of one window snapshot.
type Patterns struct {
	Streaks     []Streak     `json:"streaks"`
	Sequences   []Sequence   `json:"sequences"`
	HotDigits   []DigitShare `json:"hot_digits"`
	ColdDigits  []DigitShare `json:"cold_digits"`
	Transitions []Transition `json:"transitions"`
	EvenOdd     ParitySplit  `json:"even_odd"`
	HighLow     RangeSplit   `json:"high_low"`
}

// AnalyzePatterns derives all pattern views from the window snapshot. It
// returns nil below 5 observations. Re-running on an unchanged snapshot
// yields identical output.
func AnalyzePatterns(history []int) *Patterns {
	if len(history) < 5 {
		return nil
	}
	return &Patterns{
		Streaks:     findStreaks(history),
		Sequences:   findSequences(history),
		HotDigits:   hotDigits(history),
		ColdDigits:  coldDigits(history),
		Transitions: countTransitions(history),
		EvenOdd:     evenOddSplit(history),
		HighLow:     highLowSplit(history),
	}
}

// findStreaks returns maximal runs of length >= 3, keeping the 5 most recent.
func findStreaks(history []int) []Streak {
	var streaks []Streak
	cur := Streak{Digit: history[0], Count: 1, EndIndex: 0}

	for i := 1; i < len(history); i++ {
		if history[i] == cur.Digit {
			cur.Count++
			cur.EndIndex = i
			continue
		}
		if cur.Count >= 3 {
			streaks = append(streaks, cur)
		}
		cur = Streak{Digit: history[i], Count: 1, EndIndex: i}
	}
	if cur.Count >= 3 {
		streaks = append(streaks, cur)
	}

	if len(streaks) > 5 {
		streaks = streaks[len(streaks)-5:]
	}
	return streaks
}

// findSequences groups identical length-3 contiguous subsequences and keeps
// those occurring at least twice, top 5 by occurrence count.
func findSequences(history []int) []Sequence {
	type entry struct {
		seq   Sequence
		first int
	}
	index := map[[3]int]*entry{}
	var order []*entry

	for i := 0; i+3 <= len(history); i++ {
		var pat [3]int
		copy(pat[:], history[i:i+3])
		if e, ok := index[pat]; ok {
			e.seq.Occurrences++
			continue
		}
		e := &entry{seq: Sequence{Pattern: pat, Occurrences: 1}, first: i}
		index[pat] = e
		order = append(order, e)
	}

	var repeating []Sequence
	for _, e := range order {
		if e.seq.Occurrences >= 2 {
			repeating = append(repeating, e.seq)
		}
	}
	sort.SliceStable(repeating, func(a, b int) bool {
		return repeating[a].Occurrences > repeating[b].Occurrences
	})
	if len(repeating) > 5 {
		repeating = repeating[:5]
	}
	return repeating
}

func trailing(history []int) []int {
	if len(history) <= recentSlice {
		return history
	}
	return history[len(history)-recentSlice:]
}

// hotDigits are the 3 highest counts among the trailing slice, nonzero only.
func hotDigits(history []int) []DigitShare {
	recent := trailing(history)
	counts := CountDigits(recent)

	var shares []DigitShare
	for digit, count := range counts {
		if count > 0 {
			shares = append(shares, DigitShare{
				Digit:      digit,
				Count:      count,
				Percentage: float64(count) / float64(len(recent)) * 100,
			})
		}
	}
	sort.SliceStable(shares, func(a, b int) bool { return shares[a].Count > shares[b].Count })
	if len(shares) > 3 {
		shares = shares[:3]
	}
	return shares
}

// coldDigits are the 3 lowest counts among the trailing slice, zeros included.
func coldDigits(history []int) []DigitShare {
	recent := trailing(history)
	counts := CountDigits(recent)

	shares := make([]DigitShare, 10)
	for digit, count := range counts {
		shares[digit] = DigitShare{
			Digit:      digit,
			Count:      count,
			Percentage: float64(count) / float64(len(recent)) * 100,
		}
	}
	sort.SliceStable(shares, func(a, b int) bool { return shares[a].Count < shares[b].Count })
	return shares[:3]
}

// countTransitions counts every adjacent digit pair across the full window,
// keeping the top 10 by frequency.
func countTransitions(history []int) []Transition {
	type pair struct{ from, to int }
	index := map[pair]*Transition{}
	var order []*Transition

	for i := 0; i+1 < len(history); i++ {
		p := pair{history[i], history[i+1]}
		if t, ok := index[p]; ok {
			t.Count++
			continue
		}
		t := &Transition{From: p.from, To: p.to, Count: 1}
		index[p] = t
		order = append(order, t)
	}

	out := make([]Transition, len(order))
	for i, t := range order {
		out[i] = *t
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

func evenOddSplit(history []int) ParitySplit {
	recent := trailing(history)
	even := 0
	for _, d := range recent {
		if d%2 == 0 {
			even++
		}
	}
	odd := len(recent) - even
	return ParitySplit{
		Even:    even,
		Odd:     odd,
		EvenPct: float64(even) / float64(len(recent)) * 100,
		OddPct:  float64(odd) / float64(len(recent)) * 100,
	}
}

func highLowSplit(history []int) RangeSplit {
	recent := trailing(history)
	high := 0
	for _, d := range recent {
		if d >= 5 {
			high++
		}
	}
	low := len(recent) - high
	return RangeSplit{
		High:    high,
		Low:     low,
		HighPct: float64(high) / float64(len(recent)) * 100,
		LowPct:  float64(low) / float64(len(recent)) * 100,
	}
}
