package metrics

import "time"

// RunEvent captures the outcome of one collection cycle.
type RunEvent struct {
	RunID      string
	Success    bool
	Stage      string // pipeline stage that failed: fetch, guard, extract, decode or store
	Error      string
	FetchTime  time.Duration
	PageBytes  int
	Groups     int
	UpdateTime string
	Time       time.Time
}

// GroupEvent summarizes the built schedule for one group.
type GroupEvent struct {
	RunID      string
	Group      string
	Days       int
	HoursOff   int
	HoursMaybe int
	Time       time.Time
}

// Sink records collection events for observability purposes.
type Sink interface {
	RecordRun(ev RunEvent) error
}

// GroupRecorder records per-group schedule summaries.
type GroupRecorder interface {
	RecordGroup(ev GroupEvent) error
}

// Flusher is implemented by sinks that buffer events until the end of a run.
type Flusher interface {
	Flush() error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error     { return nil }
func (NopSink) RecordGroup(GroupEvent) error { return nil }
