package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	ActivityRequests Counter

	UpstreamRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

// NewTestCounters registers on a private registry so tests can build many.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		ActivityRequests: newPrometheusCounter(reg,
			"activity_requests_total",
			"Number of activity endpoint requests",
			[]string{"method", "status"},
		),
		UpstreamRequests: newPrometheusCounter(reg,
			"upstream_requests_total",
			"Number of WakaTime summaries requests",
			[]string{"status"},
		),
	}
}
