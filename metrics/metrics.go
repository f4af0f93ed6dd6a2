package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_post_views_total",
		Help: "Number of post detail fetches.",
	})

	commentEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_comment_events_total",
		Help: "Number of comment mutations grouped by action.",
	}, []string{"action"})

	likeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_like_toggles_total",
		Help: "Number of like toggles grouped by target type.",
	}, []string{"target"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncPostView increments the post view counter.
func IncPostView() {
	postViews.Inc()
}

// IncCommentEvent increments the comment mutation counter.
func IncCommentEvent(action string) {
	commentEvents.WithLabelValues(action).Inc()
}

// IncLikeToggle increments the like toggle counter.
func IncLikeToggle(target string) {
	likeToggles.WithLabelValues(target).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
