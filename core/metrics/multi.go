package metrics

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the run event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRun(ev RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordGroup forwards group summaries to sinks that record them.
func (m *MultiSink) RecordGroup(ev GroupEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(GroupRecorder); ok {
			if err := rec.RecordGroup(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes sinks that buffer until the end of a run.
func (m *MultiSink) Flush() error {
	for _, s := range m.Sinks {
		if fl, ok := s.(Flusher); ok {
			if err := fl.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}
