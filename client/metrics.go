package client

import (
	"strconv"
	"time"

	"github.com/indigo-web/request/http/method"
	"github.com/indigo-web/request/http/status"
	"github.com/prometheus/client_golang/prometheus"
)

// Stages are used as values of the stage label of the errors counter.
const (
	StageConnect  = "connect"
	StageSend     = "send"
	StageReceive  = "receive"
	StageRedirect = "redirect"
)

// Metrics collects per-request statistics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests  *prometheus.CounterVec
	redirects prometheus.Counter
	errors    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them. It panics if any of them
// is already registered, the same way prometheus.MustRegister does.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "request_client_requests_total",
			Help: "Total number of responses received, by method and status code",
		}, []string{"method", "code"}),
		redirects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "request_client_redirects_total",
			Help: "Total number of redirects followed",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "request_client_errors_total",
			Help: "Total number of failed requests, by the stage they failed at",
		}, []string{"stage"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "request_client_request_duration_seconds",
			Help:    "Time spent on a single hop, from dialing until the response is parsed",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}

	if registerer != nil {
		registerer.MustRegister(m.requests, m.redirects, m.errors, m.duration)
	}

	return m
}

func (m *Metrics) response(meth method.Method, code status.Code, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(meth.String(), strconv.Itoa(int(code))).Inc()
	m.duration.WithLabelValues(meth.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) redirect() {
	if m == nil {
		return
	}

	m.redirects.Inc()
}

func (m *Metrics) failure(stage string) {
	if m == nil {
		return
	}

	m.errors.WithLabelValues(stage).Inc()
}
