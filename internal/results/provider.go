package results

import (
	"time"

	"github.com/veranemoloko/resumatch/internal/domain"
	"github.com/veranemoloko/resumatch/internal/worker"
)

const (
	DefaultAnalysisDelay  = 3 * time.Second
	DefaultJobSearchDelay = 2 * time.Second
)

const (
	ViewAnalysis = "analysis"
	ViewJobs     = "jobs"
)

// Provider stands in for a backend: after a fixed delay it hands out the
// same payload every time. It never fails.
type Provider[T any] struct {
	name    string
	delay   time.Duration
	payload T
	clone   func(T) T
}

// NewProvider creates a provider. clone is applied to every delivery so
// consumers never share the fixture.
func NewProvider[T any](name string, delay time.Duration, payload T, clone func(T) T) *Provider[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Provider[T]{name: name, delay: delay, payload: payload, clone: clone}
}

// NewAnalysisProvider serves the canned resume analysis.
func NewAnalysisProvider(f *Fixtures, delay time.Duration) *Provider[domain.AnalysisResult] {
	return NewProvider(ViewAnalysis, delay, f.Analysis, CloneAnalysis)
}

// NewJobProvider serves the canned job listings.
func NewJobProvider(f *Fixtures, delay time.Duration) *Provider[[]domain.JobListing] {
	return NewProvider(ViewJobs, delay, f.Jobs, CloneJobs)
}

func (p *Provider[T]) Name() string         { return p.name }
func (p *Provider[T]) Delay() time.Duration { return p.delay }

// Start schedules delivery on d. Call it from inside d's loop.
func (p *Provider[T]) Start(d worker.Dispatcher, onDone func(T)) *worker.DelayedTask {
	return worker.Schedule(d, p.delay, func() {
		onDone(p.clone(p.payload))
	})
}
