package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	coremetrics "github.com/StevenSignal/dtek-schedule/core/metrics"
)

func TestInfluxSink_RecordRun(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	ev := coremetrics.RunEvent{
		RunID:      "run-1",
		Success:    true,
		FetchTime:  1500 * time.Millisecond,
		PageBytes:  20480,
		Groups:     12,
		UpdateTime: "12:00",
		Time:       time.Now(),
	}
	if err := sink.RecordRun(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if !strings.HasPrefix(body, "collector_run,") {
		t.Fatalf("unexpected measurement: %s", body)
	}
	for _, want := range []string{"run_id=run-1", "success=true", "fetch_ms=1500i", "groups=12i"} {
		if !strings.Contains(body, want) {
			t.Fatalf("line protocol missing %q: %s", want, body)
		}
	}
}

func TestInfluxSink_RecordGroup(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	ev := coremetrics.GroupEvent{
		RunID:      "run-1",
		Group:      "GPV1.1",
		Days:       2,
		HoursOff:   8,
		HoursMaybe: 3,
		Time:       time.Now(),
	}
	if err := sink.RecordGroup(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	for _, want := range []string{"group_schedule,", "group=GPV1.1", "hours_off=8i"} {
		if !strings.Contains(body, want) {
			t.Fatalf("line protocol missing %q: %s", want, body)
		}
	}
}

func TestInfluxSinkFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL, "token", "org", "bucket")
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink fallback, got %T", sink)
	}
}
