package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TahaKotwal12/247-gym/pkg/logger"
)

type recordingSink struct {
	events []Event
	err    error
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Publish(_ context.Context, event Event) error {
	s.events = append(s.events, event)
	return s.err
}

type fakePublisher struct {
	subject string
	data    []byte
	err     error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	p.subject = subject
	p.data = data
	return p.err
}

// blockingSink не возвращается из Publish, пока не закрыт release
type blockingSink struct {
	release chan struct{}
	events  []Event
}

func (s *blockingSink) Name() string { return "blocking" }

func (s *blockingSink) Publish(_ context.Context, event Event) error {
	<-s.release
	s.events = append(s.events, event)
	return nil
}

type ctxSink struct {
	errs []error
}

func (s *ctxSink) Name() string { return "ctx" }

func (s *ctxSink) Publish(ctx context.Context, _ Event) error {
	s.errs = append(s.errs, ctx.Err())
	return nil
}

type countingCounter map[string]int

func (c countingCounter) RecordAnalyticsEvent(event string) { c[event]++ }

func TestClient_TrackBooking(t *testing.T) {
	sink := &recordingSink{}
	client := NewClient(logger.Nop(), sink)
	client.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }

	client.TrackBooking(context.Background(), "slot-1", "Power Lifting")
	client.Close()

	require.Len(t, sink.events, 1)
	ev := sink.events[0]
	assert.Equal(t, EventClassBooked, ev.Name)
	assert.Equal(t, "slot-1", ev.Properties["slotId"])
	assert.Equal(t, "Power Lifting", ev.Properties["className"])
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), ev.OccurredAt)
}

func TestClient_SinkErrorsAreNotReturned(t *testing.T) {
	failing := &recordingSink{err: errors.New("boom")}
	healthy := &recordingSink{}
	client := NewClient(logger.Nop(), failing, healthy)

	err := client.Track(context.Background(), EventContactSubmitted, nil)
	client.Close()

	require.NoError(t, err)
	assert.Len(t, healthy.events, 1)
}

func TestClient_RejectsEmptyName(t *testing.T) {
	client := NewClient(logger.Nop())
	defer client.Close()

	err := client.Track(context.Background(), "  ", nil)
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestClient_TrackDoesNotWaitForSinks(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{})}
	client := NewClient(logger.Nop(), sink)

	returned := make(chan error, 1)
	go func() {
		returned <- client.Track(context.Background(), EventClassBooked, nil)
	}()

	select {
	case err := <-returned:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Track blocked on a slow sink")
	}

	close(sink.release)
	client.Close()
	assert.Len(t, sink.events, 1)
}

func TestClient_DropsEventsWhenQueueIsFull(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{})}
	client := NewClientWithQueue(1, logger.Nop(), sink)

	// Первое событие забирает воркер и висит в sink, очередь вмещает еще одно
	for i := 0; i < 10; i++ {
		require.NoError(t, client.Track(context.Background(), EventPageView, nil))
	}

	close(sink.release)
	client.Close()

	assert.LessOrEqual(t, len(sink.events), 2)
	assert.NotEmpty(t, sink.events)
}

func TestClient_DeliversAfterRequestContextIsCanceled(t *testing.T) {
	sink := &ctxSink{}
	client := NewClient(logger.Nop(), sink)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, client.Track(ctx, EventContactSubmitted, nil))
	cancel()
	client.Close()

	require.Len(t, sink.errs, 1)
	assert.NoError(t, sink.errs[0])
}

func TestClient_TrackAfterClose(t *testing.T) {
	sink := &recordingSink{}
	client := NewClient(logger.Nop(), sink)
	client.Close()
	client.Close()

	err := client.Track(context.Background(), EventPageView, nil)

	assert.ErrorIs(t, err, ErrClosed)
	assert.Empty(t, sink.events)
}

func TestMetricsSink(t *testing.T) {
	counter := countingCounter{}
	client := NewClient(logger.Nop(), NewMetricsSink(counter))

	client.TrackPageView(context.Background(), "/schedule")
	client.TrackPageView(context.Background(), "/pricing")
	client.TrackMembershipSelect(context.Background(), "plan-yearly")
	client.Close()

	assert.Equal(t, 2, counter[EventPageView])
	assert.Equal(t, 1, counter[EventMembershipSelect])
}

func TestMetricsSink_CollapsesArbitraryNames(t *testing.T) {
	counter := countingCounter{}
	sink := NewMetricsSink(counter)

	for i := 0; i < 100; i++ {
		require.NoError(t, sink.Publish(context.Background(), Event{Name: fmt.Sprintf("Custom Event %d", i)}))
	}
	require.NoError(t, sink.Publish(context.Background(), Event{Name: EventClassBooked}))
	require.NoError(t, sink.Publish(context.Background(), Event{Name: EventContactSubmitted}))

	assert.Len(t, counter, 3)
	assert.Equal(t, 100, counter[EventOther])
	assert.Equal(t, 1, counter[EventClassBooked])
	assert.Equal(t, 1, counter[EventContactSubmitted])
}

func TestNATSSink_PublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	sink := &NATSSink{pub: pub, subject: "gym.analytics"}

	err := sink.Publish(context.Background(), Event{ID: "e1", Name: EventClassBooked})
	require.NoError(t, err)
	assert.Equal(t, "gym.analytics", pub.subject)

	var decoded Event
	require.NoError(t, json.Unmarshal(pub.data, &decoded))
	assert.Equal(t, "e1", decoded.ID)
	assert.Equal(t, EventClassBooked, decoded.Name)
}

func TestNATSSink_PublishError(t *testing.T) {
	sink := &NATSSink{pub: &fakePublisher{err: errors.New("no responders")}, subject: "gym.analytics"}
	err := sink.Publish(context.Background(), Event{Name: EventPageView})
	assert.ErrorIs(t, err, ErrPublish)
}
