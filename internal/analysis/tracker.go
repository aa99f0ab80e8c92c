package analysis

import "time"

// trackerCap bounds the trailing match log, independent of window eviction.
const trackerCap = 50

// MatchRecord compares one prediction against the observation that followed it.
type MatchRecord struct {
	Predicted  int       `json:"predicted"`
	Actual     int       `json:"actual"`
	Matched    bool      `json:"matched"`
	Confidence float64   `json:"confidence"`
	At         time.Time `json:"at"`
}

// Tracker keeps the trailing log of prediction outcomes. It is not safe for
// concurrent use; Session serializes access.
type Tracker struct {
	records []MatchRecord
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends the outcome for the active prediction, dropping the oldest
// entry once the log is full.
func (t *Tracker) Record(p Prediction, actual int, now time.Time) {
	if len(t.records) == trackerCap {
		copy(t.records, t.records[1:])
		t.records = t.records[:trackerCap-1]
	}
	t.records = append(t.records, MatchRecord{
		Predicted:  p.Digit,
		Actual:     actual,
		Matched:    p.Digit == actual,
		Confidence: p.Confidence,
		At:         now,
	})
}

// Records returns a copy of the log, oldest first.
func (t *Tracker) Records() []MatchRecord {
	out := make([]MatchRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Accuracy is the running hit percentage, recomputed on read. Empty logs
// score 0, not NaN.
func (t *Tracker) Accuracy() float64 {
	if len(t.records) == 0 {
		return 0
	}
	hits := 0
	for _, r := range t.records {
		if r.Matched {
			hits++
		}
	}
	return float64(hits) / float64(len(t.records)) * 100
}

// Reset drops the log.
func (t *Tracker) Reset() {
	t.records = nil
}
