package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

const MetricsPath = "/metrics"

// 매칭되지 않은 경로는 하나의 라벨로 묶음
const unmatchedRoute = "unmatched"

var submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "contact_form",
	Name:      "submissions_total",
	Help:      "Contact form submissions by outcome (ok or error kind).",
}, []string{"outcome"})

// Use installs request metrics on the router and exposes them at MetricsPath.
func Use(router *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	p.MetricsPath = MetricsPath
	p.ReqCntURLLabelMappingFn = RouteLabel
	p.Use(router)
}

// RouteLabel returns the matched route template so query strings and unknown
// paths never create new series.
func RouteLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

func ObserveSubmission(outcome string) {
	SubmissionCounter(outcome).Inc()
}

func SubmissionCounter(outcome string) prometheus.Counter {
	return submissions.WithLabelValues(outcome)
}
