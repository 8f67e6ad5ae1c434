// Package metrics holds the prometheus collectors of the levelup service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// AIRequests counts text-generation calls by outcome ("ok" or "fallback").
	AIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "levelup", Name: "ai_requests_total", Help: "Number of text-generation calls by outcome."},
		[]string{"outcome"},
	)
	// AIFallbacks counts fallback substitutions by reason.
	AIFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "levelup", Name: "ai_fallbacks_total", Help: "Number of fallback substitutions by reason."},
		[]string{"reason"},
	)
	// QuizFallbacks counts generated quizzes replaced by the fallback template.
	QuizFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "levelup", Name: "quiz_fallbacks_total", Help: "Number of quizzes replaced by the fallback template."},
	)
	// RateLimitRejected counts AI requests rejected by the rate limiter.
	RateLimitRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "levelup", Name: "rate_limit_rejected_total", Help: "Number of AI requests rejected by the rate limiter."},
	)
	// StorageWrites counts full-collection rewrites by result.
	StorageWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "levelup", Name: "storage_writes_total", Help: "Number of document collection rewrites by result."},
		[]string{"result"},
	)
)

// RegisterCollectors registers every collector of this package on reg.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(AIRequests)
	reg.MustRegister(AIFallbacks)
	reg.MustRegister(QuizFallbacks)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StorageWrites)
}
