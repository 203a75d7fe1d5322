package analytics

import "context"

// LogSink пишет события в лог
type LogSink struct {
	log Logger
}

func NewLogSink(log Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Publish(_ context.Context, event Event) error {
	s.log.Info("[Analytics] Event: %s %v", event.Name, event.Properties)
	return nil
}

// EventCounter счетчик событий (реализуется pkg/metrics.Metrics)
type EventCounter interface {
	RecordAnalyticsEvent(event string)
}

// MetricsSink считает события в prometheus
type MetricsSink struct {
	counter EventCounter
}

func NewMetricsSink(counter EventCounter) *MetricsSink {
	return &MetricsSink{counter: counter}
}

func (s *MetricsSink) Name() string { return "metrics" }

func (s *MetricsSink) Publish(_ context.Context, event Event) error {
	s.counter.RecordAnalyticsEvent(metricLabel(event.Name))
	return nil
}

// metricLabel ограничивает кардинальность метки: произвольные названия
// из POST /analytics/events схлопываются в EventOther
func metricLabel(name string) string {
	switch name {
	case EventPageView, EventClassBooked, EventContactSubmitted, EventMembershipSelect:
		return name
	default:
		return EventOther
	}
}
