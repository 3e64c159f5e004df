package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Maxito7/marea_backend/internal/domain"
)

func TestRecorder_ObserveResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveResult(domain.MatchResult{Kind: domain.MatchKindAnswer, Score: 0})
	r.ObserveResult(domain.MatchResult{Kind: domain.MatchKindAnswer, Score: 0.2})
	r.ObserveResult(domain.MatchResult{Kind: domain.MatchKindFallback, Reason: domain.ReasonOffDomain, Score: 1})
	r.ObserveResult(domain.MatchResult{Kind: domain.MatchKindFallback, Reason: domain.ReasonLowConfidence, Score: 0.5})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.replies.WithLabelValues("answer", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.replies.WithLabelValues("fallback", "off_domain")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.replies.WithLabelValues("fallback", "low_confidence")))
	assert.Equal(t, 3, testutil.CollectAndCount(r.replies, "faq_replies_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(r.scores))
}
