package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/StevenSignal/dtek-schedule/config"
	"github.com/StevenSignal/dtek-schedule/core/metrics"
	"github.com/StevenSignal/dtek-schedule/core/schedule"
	"github.com/StevenSignal/dtek-schedule/infra/fetch"
	"github.com/StevenSignal/dtek-schedule/infra/logger"
	_ "github.com/StevenSignal/dtek-schedule/infra/metrics" // sink factories
	"github.com/StevenSignal/dtek-schedule/infra/mqtt"
	"github.com/StevenSignal/dtek-schedule/infra/store"
)

// Writer persists the assembled output document.
type Writer interface {
	Write(doc *schedule.OutputDocument) error
}

// Service runs one fetch-parse-format-persist cycle. Any failure before the
// file write aborts the run with no partial output; metrics and publishing
// are best-effort and never change the outcome.
type Service struct {
	cfg     *config.Config
	fetcher schedule.Fetcher
	writer  Writer
	sink    metrics.Sink
	pub     mqtt.Publisher
	log     logger.Logger
	now     func() time.Time
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	sink, err := metrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sinks: %w", err)
	}
	var pub mqtt.Publisher
	if cfg.MQTT.Enabled {
		p, err := mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		pub = p
	}
	return &Service{
		cfg:     cfg,
		fetcher: fetch.NewHTTPFetcher(cfg.Source),
		writer:  store.NewFileWriter(cfg.Output.Path),
		sink:    sink,
		pub:     pub,
		log:     logger.New("service"),
		now:     time.Now,
	}, nil
}

// Run executes the pipeline once and records the outcome.
func (s *Service) Run(ctx context.Context) error {
	runID := uuid.NewString()
	ev := metrics.RunEvent{RunID: runID, Time: s.now()}

	err := s.collect(ctx, runID, &ev)
	ev.Success = err == nil
	if err != nil {
		ev.Error = err.Error()
		s.log.Errorf("run %s failed at %s: %v", runID, ev.Stage, err)
	}
	if rerr := s.sink.RecordRun(ev); rerr != nil {
		s.log.Errorf("record run: %v", rerr)
	}
	if fl, ok := s.sink.(metrics.Flusher); ok {
		if ferr := fl.Flush(); ferr != nil {
			s.log.Errorf("flush metrics: %v", ferr)
		}
	}
	return err
}

func (s *Service) collect(ctx context.Context, runID string, ev *metrics.RunEvent) error {
	s.log.Infof("fetching %s", s.cfg.Source.URL)
	fetchStart := s.now()
	page, err := s.fetcher.Fetch(ctx)
	ev.FetchTime = s.now().Sub(fetchStart)
	if err != nil {
		ev.Stage = "fetch"
		return fmt.Errorf("fetch: %w", err)
	}
	if page.Status != http.StatusOK {
		ev.Stage = "fetch"
		return &schedule.FetchError{Status: page.Status}
	}
	ev.PageBytes = len(page.Body)
	s.log.Infof("page received, %d bytes", len(page.Body))

	if err := schedule.CheckContent(page.Body); err != nil {
		ev.Stage = "guard"
		return err
	}

	res, err := schedule.Parse(string(page.Body))
	if err != nil {
		ev.Stage = parseStage(err)
		return err
	}

	built := schedule.Build(res.Fact, s.cfg.Groups)
	doc := &schedule.OutputDocument{
		FetchedAt:  ev.Time.Format(time.RFC3339),
		UpdateTime: res.Fact.Update,
		Groups:     built,
	}
	if doc.UpdateTime == "" {
		doc.UpdateTime = "unknown"
	}

	if err := s.writer.Write(doc); err != nil {
		ev.Stage = "store"
		return fmt.Errorf("write output: %w", err)
	}
	ev.Groups = len(built)
	ev.UpdateTime = doc.UpdateTime
	s.log.Infof("schedule saved to %s, %d groups with data", s.cfg.Output.Path, len(built))

	s.recordGroups(runID, built)
	s.publish(doc)
	for _, line := range Summary(doc, s.cfg.Groups, s.now().Format("2006-01-02")) {
		s.log.Infof("%s", line)
	}
	return nil
}

func parseStage(err error) string {
	var derr *schedule.DecodeError
	if errors.As(err, &derr) {
		return "decode"
	}
	return "extract"
}

func (s *Service) recordGroups(runID string, built map[string]schedule.GroupDaySchedule) {
	rec, ok := s.sink.(metrics.GroupRecorder)
	if !ok {
		return
	}
	for group, days := range built {
		ev := metrics.GroupEvent{RunID: runID, Group: group, Days: len(days), Time: s.now()}
		for _, ranges := range days {
			for _, label := range ranges {
				switch label {
				case schedule.StatusLightOff:
					ev.HoursOff++
				case schedule.StatusPossibleOutage:
					ev.HoursMaybe++
				}
			}
		}
		if err := rec.RecordGroup(ev); err != nil {
			s.log.Errorf("record group %s: %v", group, err)
		}
	}
}

func (s *Service) publish(doc *schedule.OutputDocument) {
	if s.pub == nil {
		return
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		s.log.Errorf("marshal for publish: %v", err)
		return
	}
	if err := s.pub.Publish(payload); err != nil {
		s.log.Errorf("publish schedule: %v", err)
	}
}

// Close releases long-lived resources.
func (s *Service) Close() error {
	if s.pub != nil {
		s.pub.Close()
	}
	return nil
}
