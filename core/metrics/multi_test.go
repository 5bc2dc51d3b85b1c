package metrics

import (
	"errors"
	"testing"
)

type recordingSink struct {
	runs    []RunEvent
	groups  []GroupEvent
	flushed int
	fail    bool
}

func (s *recordingSink) RecordRun(ev RunEvent) error {
	if s.fail {
		return errors.New("sink failure")
	}
	s.runs = append(s.runs, ev)
	return nil
}

func (s *recordingSink) RecordGroup(ev GroupEvent) error {
	s.groups = append(s.groups, ev)
	return nil
}

func (s *recordingSink) Flush() error {
	s.flushed++
	return nil
}

func TestMultiSinkFanout(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	m := NewMultiSink(a, b, NopSink{})

	if err := m.RecordRun(RunEvent{RunID: "r1", Success: true}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := m.RecordGroup(GroupEvent{Group: "GPV1.1"}); err != nil {
		t.Fatalf("record group: %v", err)
	}
	if err := m.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	for i, s := range []*recordingSink{a, b} {
		if len(s.runs) != 1 || len(s.groups) != 1 || s.flushed != 1 {
			t.Fatalf("sink %d: runs=%d groups=%d flushed=%d", i, len(s.runs), len(s.groups), s.flushed)
		}
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	m := NewMultiSink(&recordingSink{fail: true}, &recordingSink{})
	if err := m.RecordRun(RunEvent{}); err == nil {
		t.Fatalf("expected error from failing sink")
	}
}

func TestNewSinkEmptyConfig(t *testing.T) {
	s, err := NewSink(nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := s.(NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}
}
