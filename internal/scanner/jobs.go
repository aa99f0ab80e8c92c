package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobStatus is the lifecycle state of an async sweep.
type JobStatus string

const (
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// ErrScanInFlight is returned when a sweep is already running.
var ErrScanInFlight = errors.New("a scan is already in progress")

// ErrJobNotFound is returned for unknown job ids.
var ErrJobNotFound = errors.New("scan job not found")

// JobView is a point-in-time copy of a sweep's state.
type JobView struct {
	ID         string       `json:"id"`
	Status     JobStatus    `json:"status"`
	Progress   float64      `json:"progress"`
	Live       []MarketLive `json:"live,omitempty"`
	Signals    []Signal     `json:"signals,omitempty"`
	Error      string       `json:"error,omitempty"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

type job struct {
	mu         sync.RWMutex
	id         string
	status     JobStatus
	progress   float64
	live       []MarketLive
	signals    []Signal
	err        string
	startedAt  time.Time
	finishedAt *time.Time
}

func (j *job) view() JobView {
	j.mu.RLock()
	defer j.mu.RUnlock()
	v := JobView{
		ID:        j.id,
		Status:    j.status,
		Progress:  j.progress,
		Live:      append([]MarketLive(nil), j.live...),
		Signals:   append([]Signal(nil), j.signals...),
		Error:     j.err,
		StartedAt: j.startedAt,
	}
	if j.finishedAt != nil {
		t := *j.finishedAt
		v.FinishedAt = &t
	}
	return v
}

// Registry owns at most one running sweep and remembers finished ones so
// clients can poll for results.
type Registry struct {
	scanner *Scanner
	onDone  func(JobView)

	mu      sync.Mutex
	jobs    map[string]*job
	current *job
}

// NewRegistry wraps a scanner for async use. onDone, if set, fires once per
// completed sweep with the final view.
func NewRegistry(s *Scanner, onDone func(JobView)) *Registry {
	return &Registry{scanner: s, onDone: onDone, jobs: make(map[string]*job)}
}

// Start kicks off a sweep and returns its job id. Only one sweep runs at a
// time.
func (r *Registry) Start(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.current != nil {
		id := r.current.id
		r.mu.Unlock()
		logger.Debug("scan start rejected", zap.String("running", id))
		return "", ErrScanInFlight
	}
	j := &job{
		id:        uuid.NewString(),
		status:    JobRunning,
		startedAt: time.Now().UTC(),
	}
	r.jobs[j.id] = j
	r.current = j
	r.mu.Unlock()

	go r.run(ctx, j)
	return j.id, nil
}

func (r *Registry) run(ctx context.Context, j *job) {
	signals, err := r.scanner.Run(ctx, func(pct float64, live []MarketLive) {
		j.mu.Lock()
		j.progress = pct
		j.live = live
		j.mu.Unlock()
	})

	now := time.Now().UTC()
	j.mu.Lock()
	j.finishedAt = &now
	if err != nil {
		j.status = JobFailed
		j.err = err.Error()
	} else {
		j.status = JobDone
		j.progress = 100
		j.signals = signals
	}
	j.mu.Unlock()

	r.mu.Lock()
	r.current = nil
	r.mu.Unlock()

	if err == nil && r.onDone != nil {
		r.onDone(j.view())
	}
}

// Get returns the current view of a job.
func (r *Registry) Get(id string) (JobView, error) {
	r.mu.Lock()
	j, ok := r.jobs[id]
	r.mu.Unlock()
	if !ok {
		return JobView{}, ErrJobNotFound
	}
	return j.view(), nil
}

// Latest returns the most recently started job, if any.
func (r *Registry) Latest() (JobView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *job
	for _, j := range r.jobs {
		if latest == nil || j.startedAt.After(latest.startedAt) {
			latest = j
		}
	}
	if latest == nil {
		return JobView{}, false
	}
	return latest.view(), true
}
