package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Maxito7/marea_backend/internal/domain"
)

// Recorder registra los resultados del chat en Prometheus
type Recorder struct {
	replies *prometheus.CounterVec
	scores  prometheus.Histogram
}

// NewRecorder crea las métricas y las registra en reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		replies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "faq_replies_total",
			Help: "Chat replies by kind and fallback reason",
		}, []string{"kind", "reason"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "faq_match_score",
			Help:    "Score of the best FAQ candidate (0 = exact match)",
			Buckets: []float64{0, 0.05, 0.1, 0.2, 0.35, 0.5, 0.6, 0.8, 1},
		}),
	}
	reg.MustRegister(r.replies, r.scores)
	return r
}

// ObserveResult cuenta la respuesta. El puntaje se registra solo cuando hubo candidato.
func (r *Recorder) ObserveResult(res domain.MatchResult) {
	reason := string(res.Reason)
	if reason == "" {
		reason = "none"
	}
	r.replies.WithLabelValues(string(res.Kind), reason).Inc()

	if res.Kind == domain.MatchKindAnswer || res.Reason == domain.ReasonLowConfidence {
		r.scores.Observe(res.Score)
	}
}
