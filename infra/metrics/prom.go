package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/StevenSignal/dtek-schedule/core/factory"
	coremetrics "github.com/StevenSignal/dtek-schedule/core/metrics"
)

func init() {
	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.Sink, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			return nil, fmt.Errorf("prometheus sink: path is required")
		}
		return NewPromSink(c.Path), nil
	})
}

// PromSink records run metrics on a private registry and exports them as a
// node_exporter textfile on Flush. A one-shot collector has no lifetime to
// serve /metrics from, so the textfile collector is the integration point.
type PromSink struct {
	reg  *prometheus.Registry
	path string

	runs         *prometheus.CounterVec
	fetchSeconds prometheus.Gauge
	pageBytes    prometheus.Gauge
	groups       prometheus.Gauge
	lastSuccess  prometheus.Gauge
}

// NewPromSink creates a sink exporting to the given textfile path.
func NewPromSink(path string) *PromSink {
	reg := prometheus.NewRegistry()
	s := &PromSink{
		reg:  reg,
		path: path,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dtek_collector_runs_total",
			Help: "Collection cycles by result and failed stage",
		}, []string{"result", "stage"}),
		fetchSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dtek_collector_fetch_duration_seconds",
			Help: "Duration of the page fetch in the last run",
		}),
		pageBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dtek_collector_page_bytes",
			Help: "Size of the fetched page in the last run",
		}),
		groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dtek_collector_groups",
			Help: "Groups with schedule data in the last run",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dtek_collector_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}),
	}
	reg.MustRegister(s.runs, s.fetchSeconds, s.pageBytes, s.groups, s.lastSuccess)
	return s
}

// RecordRun updates the run metrics.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	result := "success"
	if !ev.Success {
		result = "failure"
	}
	s.runs.WithLabelValues(result, ev.Stage).Inc()
	s.fetchSeconds.Set(ev.FetchTime.Seconds())
	s.pageBytes.Set(float64(ev.PageBytes))
	s.groups.Set(float64(ev.Groups))
	if ev.Success {
		s.lastSuccess.Set(float64(ev.Time.Unix()))
	}
	return nil
}

// Flush writes the registry to the textfile.
func (s *PromSink) Flush() error {
	return prometheus.WriteToTextfile(s.path, s.reg)
}
