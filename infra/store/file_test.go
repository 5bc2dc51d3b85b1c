package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/StevenSignal/dtek-schedule/core/schedule"
)

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	doc := &schedule.OutputDocument{
		FetchedAt:  "2026-08-26T08:00:00+03:00",
		UpdateTime: "12:00",
		Groups: map[string]schedule.GroupDaySchedule{
			"GPV1.1": {
				"2026-08-26": {"00:00-01:00": "light_on"},
			},
		},
	}

	if err := NewFileWriter(path).Write(doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.UpdateTime != doc.UpdateTime {
		t.Fatalf("update_time %q, want %q", got.UpdateTime, doc.UpdateTime)
	}
	if got.Groups["GPV1.1"]["2026-08-26"]["00:00-01:00"] != "light_on" {
		t.Fatalf("schedule entry lost: %+v", got.Groups)
	}
}

func TestFileWriterFormatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	doc := &schedule.OutputDocument{
		FetchedAt:  "2026-08-26T08:00:00+03:00",
		UpdateTime: "оновлено о 12:00", // non-ASCII must stay literal
		Groups:     map[string]schedule.GroupDaySchedule{},
	}
	if err := NewFileWriter(path).Write(doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "оновлено о 12:00") {
		t.Fatalf("non-ASCII escaped: %s", s)
	}
	if !strings.Contains(s, "\n  \"update_time\"") {
		t.Fatalf("output not indented: %s", s)
	}
}

func TestFileWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriter(path)
	first := &schedule.OutputDocument{UpdateTime: "old", Groups: map[string]schedule.GroupDaySchedule{}}
	second := &schedule.OutputDocument{UpdateTime: "new", Groups: map[string]schedule.GroupDaySchedule{}}
	if err := w.Write(first); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write(second); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.UpdateTime != "new" {
		t.Fatalf("expected overwrite, got %q", got.UpdateTime)
	}
}
