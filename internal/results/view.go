package results

import (
	"log/slog"

	"github.com/veranemoloko/resumatch/internal/metrics"
	"github.com/veranemoloko/resumatch/internal/worker"
)

// View is a result screen. Mounting starts its provider; unmounting cancels a
// delivery that has not happened yet. A view is only touched from its loop.
type View[T any] struct {
	provider   *Provider[T]
	dispatcher worker.Dispatcher
	logger     *slog.Logger

	task    *worker.DelayedTask
	mounted bool
	result  *T
}

// NewView creates an unmounted view.
func NewView[T any](provider *Provider[T], dispatcher worker.Dispatcher, logger *slog.Logger) *View[T] {
	return &View[T]{
		provider:   provider,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Mount shows the loading state and starts the provider. Mounting an already
// mounted view restarts it.
func (v *View[T]) Mount() {
	v.Unmount()

	v.mounted = true
	v.result = nil
	v.task = v.provider.Start(v.dispatcher, func(result T) {
		v.task = nil
		v.result = &result
		metrics.ResultsDelivered.WithLabelValues(v.provider.Name()).Inc()
		v.logger.Debug("results delivered", "view", v.provider.Name())
	})
	v.logger.Debug("view mounted", "view", v.provider.Name(), "delay", v.provider.Delay())
}

// Unmount tears the view down and drops its result.
func (v *View[T]) Unmount() {
	if !v.mounted {
		return
	}
	if v.task.Cancel() {
		v.logger.Debug("pending results cancelled", "view", v.provider.Name())
	}
	v.task = nil
	v.mounted = false
	v.result = nil
}

func (v *View[T]) Mounted() bool { return v.mounted }

// Loading reports whether the view is mounted and still waiting.
func (v *View[T]) Loading() bool {
	return v.mounted && v.result == nil
}

// Result returns the delivered payload.
func (v *View[T]) Result() (T, bool) {
	if v.result == nil {
		var zero T
		return zero, false
	}
	return *v.result, true
}
