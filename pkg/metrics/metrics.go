package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nova", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nova", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	SyncDocumentsPushed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nova", Name: "sync_documents_pushed_total", Help: "Documents uploaded to the remote backup."},
	)
	SyncDocumentsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nova", Name: "sync_documents_skipped_total", Help: "Documents skipped during push because of per-document failures."},
	)
	SyncDocumentsPulled = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nova", Name: "sync_documents_pulled_total", Help: "Documents downloaded from the remote backup."},
	)
	AIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nova", Name: "ai_requests_total", Help: "AI generation requests by outcome."},
		[]string{"status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(SyncDocumentsPushed)
	reg.MustRegister(SyncDocumentsSkipped)
	reg.MustRegister(SyncDocumentsPulled)
	reg.MustRegister(AIRequests)
}
