// Package metrics provides the counters and histograms exposed by the homepage server.
package metrics

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds all application metrics.
type Metrics struct {
	namespace string

	// Render passes, labelled by result ("ok", "duplicate_key", ...)
	Renders        *CounterVec
	RenderDuration *Histogram
	PageBytes      *Gauge
	Features       *Gauge

	// HTTP
	Requests *CounterVec
	Panics   *Counter

	// Content reloads, labelled by result
	Reloads *CounterVec
}

// NewMetrics creates a new metrics instance.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		namespace:      namespace,
		Renders:        NewCounterVec("render_total", "Render passes", "result"),
		RenderDuration: NewHistogram("render_duration_seconds", "Render pass duration"),
		PageBytes:      NewGauge("page_bytes", "Size of the current homepage document"),
		Features:       NewGauge("features", "Number of feature cards on the current page"),
		Requests:       NewCounterVec("requests_total", "HTTP requests", "route"),
		Panics:         NewCounter("panics_total", "Panics recovered in handlers"),
		Reloads:        NewCounterVec("reloads_total", "Content reloads", "result"),
	}
}

// RecordRender records one render pass.
func (m *Metrics) RecordRender(result string, d time.Duration, pageBytes, features int) {
	m.Renders.Inc(result)
	m.RenderDuration.ObserveDuration(d)
	if result == "ok" {
		m.PageBytes.Set(float64(pageBytes))
		m.Features.Set(float64(features))
	}
}

// Handler returns an HTTP handler serving the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		m.WriteTo(w)
	})
}

// WriteTo writes every metric in a stable order.
func (m *Metrics) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	m.writeVec(cw, m.Renders)
	m.writeHistogram(cw, m.RenderDuration)
	m.writeScalar(cw, "gauge", m.PageBytes.name, m.PageBytes.help, m.PageBytes.Value())
	m.writeScalar(cw, "gauge", m.Features.name, m.Features.help, m.Features.Value())
	m.writeVec(cw, m.Requests)
	m.writeScalar(cw, "counter", m.Panics.name, m.Panics.help, m.Panics.Value())
	m.writeVec(cw, m.Reloads)
	return cw.n, cw.err
}

func (m *Metrics) fullName(name string) string {
	if m.namespace == "" {
		return name
	}
	return m.namespace + "_" + name
}

func (m *Metrics) writeScalar(w io.Writer, kind, name, help string, value float64) {
	name = m.fullName(name)
	fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s %s\n%s %g\n", name, help, name, kind, name, value)
}

func (m *Metrics) writeVec(w io.Writer, cv *CounterVec) {
	name := m.fullName(cv.name)
	fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n", name, cv.help, name)

	values := cv.Values()
	labels := make([]string, 0, len(values))
	for l := range values {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		fmt.Fprintf(w, "%s{%s=%q} %g\n", name, cv.label, l, values[l])
	}
}

func (m *Metrics) writeHistogram(w io.Writer, h *Histogram) {
	name := m.fullName(h.name)
	s := h.Stats()
	fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s summary\n", name, h.help, name)
	fmt.Fprintf(w, "%s_sum %g\n%s_count %d\n", name, s.Sum, name, s.Count)
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

// Counter is a monotonically increasing counter.
type Counter struct {
	name  string
	help  string
	value atomic.Int64
}

// NewCounter creates a new counter.
func NewCounter(name, help string) *Counter {
	return &Counter{name: name, help: help}
}

// Inc increments the counter by 1.
func (c *Counter) Inc() {
	c.value.Add(1)
}

// Value returns the current counter value.
func (c *Counter) Value() float64 {
	return float64(c.value.Load())
}

// Gauge is a value that can go up and down.
type Gauge struct {
	name  string
	help  string
	value atomic.Int64
}

// NewGauge creates a new gauge.
func NewGauge(name, help string) *Gauge {
	return &Gauge{name: name, help: help}
}

// Set sets the gauge to a value.
func (g *Gauge) Set(value float64) {
	g.value.Store(int64(value))
}

// Value returns the current gauge value.
func (g *Gauge) Value() float64 {
	return float64(g.value.Load())
}

// CounterVec is a counter with one label.
type CounterVec struct {
	name   string
	help   string
	label  string
	values map[string]*Counter
	mu     sync.RWMutex
}

// NewCounterVec creates a new counter vector.
func NewCounterVec(name, help, label string) *CounterVec {
	return &CounterVec{
		name:   name,
		help:   help,
		label:  label,
		values: make(map[string]*Counter),
	}
}

// WithLabel returns a counter for the given label value.
func (cv *CounterVec) WithLabel(value string) *Counter {
	cv.mu.RLock()
	c, ok := cv.values[value]
	cv.mu.RUnlock()
	if ok {
		return c
	}

	cv.mu.Lock()
	defer cv.mu.Unlock()
	if c, ok := cv.values[value]; ok {
		return c
	}
	c = NewCounter(cv.name, cv.help)
	cv.values[value] = c
	return c
}

// Inc increments the counter for the given label.
func (cv *CounterVec) Inc(label string) {
	cv.WithLabel(label).Inc()
}

// Values returns all counter values.
func (cv *CounterVec) Values() map[string]float64 {
	cv.mu.RLock()
	defer cv.mu.RUnlock()

	result := make(map[string]float64, len(cv.values))
	for label, counter := range cv.values {
		result[label] = counter.Value()
	}
	return result
}

// Histogram tracks the count and sum of observations.
type Histogram struct {
	name  string
	help  string
	sum   float64
	count int64
	min   float64
	max   float64
	mu    sync.Mutex
}

// NewHistogram creates a new histogram.
func NewHistogram(name, help string) *Histogram {
	return &Histogram{name: name, help: help, min: -1}
}

// Observe records a value.
func (h *Histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sum += value
	h.count++
	if h.min < 0 || value < h.min {
		h.min = value
	}
	if value > h.max {
		h.max = value
	}
}

// ObserveDuration records a duration value in seconds.
func (h *Histogram) ObserveDuration(d time.Duration) {
	h.Observe(d.Seconds())
}

// Stats returns histogram statistics.
func (h *Histogram) Stats() HistogramStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := HistogramStats{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
	if h.count > 0 {
		stats.Avg = h.sum / float64(h.count)
	}
	return stats
}

// HistogramStats contains histogram statistics.
type HistogramStats struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Avg   float64
}
