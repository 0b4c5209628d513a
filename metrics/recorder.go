// Package metrics owns the request counter and latency histogram that back
// the /metrics endpoint.
package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	RequestsTotalName   = "http_requests_total"
	RequestDurationName = "http_request_duration_seconds"
)

type Options struct {
	// RuntimeCollectors adds the go_* and process_* series.
	RuntimeCollectors bool
	// Buckets for the duration histogram, prometheus.DefBuckets when nil.
	Buckets []float64
}

// Recorder aggregates per-request metrics in its own registry, so every
// instance starts from zero and can be handed to a router explicitly.
// All methods are safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New(opts Options) (*Recorder, error) {
	buckets := opts.Buckets
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: RequestsTotalName,
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    RequestDurationName,
				Help:    "HTTP request duration in seconds",
				Buckets: buckets,
			},
			[]string{"method", "path"},
		),
	}

	toRegister := []prometheus.Collector{r.requests, r.duration}
	if opts.RuntimeCollectors {
		toRegister = append(toRegister,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	for _, c := range toRegister {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return r, nil
}

// Observe records one completed request: the elapsed time goes into the
// histogram under (method, path) and the counter for (method, path, status)
// is incremented. Both updates are atomic per series.
func (r *Recorder) Observe(method, path string, status int, elapsed time.Duration) error {
	method, path = LabelValue(method), LabelValue(path)

	histogram, err := r.duration.GetMetricWithLabelValues(method, path)
	if err != nil {
		return fmt.Errorf("duration series %s %s: %w", method, path, err)
	}
	counter, err := r.requests.GetMetricWithLabelValues(method, path, strconv.Itoa(status))
	if err != nil {
		return fmt.Errorf("request series %s %s %d: %w", method, path, status, err)
	}

	histogram.Observe(elapsed.Seconds())
	counter.Inc()
	return nil
}

// LabelValue replaces invalid UTF-8 so any request path or method can be
// used as a label value. Distinct invalid paths may share one series.
func LabelValue(v string) string {
	return strings.ToValidUTF8(v, "\uFFFD")
}

// Registry exposes the underlying registry, e.g. for promhttp instrumentation.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RequestsTotal returns the counter vector.
func (r *Recorder) RequestsTotal() *prometheus.CounterVec {
	return r.requests
}

// RequestDuration returns the histogram vector.
func (r *Recorder) RequestDuration() *prometheus.HistogramVec {
	return r.duration
}
