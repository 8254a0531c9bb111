package navigator

import (
	"fmt"

	"github.com/veranemoloko/resumatch/internal/domain"
	errpkg "github.com/veranemoloko/resumatch/internal/errors"
	"github.com/veranemoloko/resumatch/internal/metrics"
)

// ChangeFunc observes a step change.
type ChangeFunc func(from, to domain.Step)

// Navigator tracks which screen a session shows.
//
//	landing -> upload -> analysis -> jobs
//	                        ^          |
//	                        +---back---+
//
// It is not safe for concurrent use; the owning session serializes calls.
type Navigator struct {
	step     domain.Step
	fileName string
	onChange ChangeFunc
}

// New returns a navigator on the landing step.
func New(onChange ChangeFunc) *Navigator {
	if onChange == nil {
		onChange = func(domain.Step, domain.Step) {}
	}
	return &Navigator{
		step:     domain.StepLanding,
		onChange: onChange,
	}
}

// Step returns the current step.
func (n *Navigator) Step() domain.Step {
	return n.step
}

// FileName returns the display name of the accepted upload, if any.
func (n *Navigator) FileName() string {
	return n.fileName
}

// Start moves from the landing page to the upload screen.
func (n *Navigator) Start() error {
	return n.move(domain.StepLanding, domain.StepUpload)
}

// CompleteUpload moves to the analysis screen carrying the file's name.
func (n *Navigator) CompleteUpload(fileName string) error {
	if n.step != domain.StepUpload {
		return n.invalid(domain.StepAnalysis)
	}
	n.fileName = fileName
	return n.move(domain.StepUpload, domain.StepAnalysis)
}

// Continue moves from the analysis results to the job matches.
func (n *Navigator) Continue() error {
	return n.move(domain.StepAnalysis, domain.StepJobs)
}

// Back returns from the job matches to the analysis results.
func (n *Navigator) Back() error {
	return n.move(domain.StepJobs, domain.StepAnalysis)
}

func (n *Navigator) move(from, to domain.Step) error {
	if n.step != from {
		return n.invalid(to)
	}
	n.step = to
	metrics.StepTransitions.WithLabelValues(string(from), string(to)).Inc()
	n.onChange(from, to)
	return nil
}

func (n *Navigator) invalid(to domain.Step) error {
	return fmt.Errorf("%w: %s -> %s", errpkg.ErrInvalidTransition, n.step, to)
}
