package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resumatch_sessions_created_total",
		Help: "Total number of sessions created",
	})

	SessionsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resumatch_sessions_expired_total",
		Help: "Total number of sessions evicted after being idle",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "resumatch_sessions_active",
		Help: "Number of sessions currently held in memory",
	})

	UploadsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resumatch_uploads_accepted_total",
		Help: "Total number of files that passed validation",
	})

	UploadsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resumatch_uploads_rejected_total",
		Help: "Total number of files rejected by validation",
	}, []string{"reason"})

	UploadsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resumatch_uploads_completed_total",
		Help: "Total number of uploads that reached success",
	})

	UploadsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resumatch_uploads_failed_total",
		Help: "Total number of accepted uploads that failed to complete",
	})

	UploadSizeBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resumatch_upload_size_bytes",
		Help:    "Size of accepted uploads in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	StepTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resumatch_step_transitions_total",
		Help: "Total number of step changes",
	}, []string{"from", "to"})

	ResultsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resumatch_results_delivered_total",
		Help: "Total number of canned result payloads delivered to a mounted view",
	}, []string{"view"})
)
