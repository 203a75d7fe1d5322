package analytics

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultQueueSize размер очереди событий по умолчанию
const DefaultQueueSize = 256

// Sink получатель событий
type Sink interface {
	Name() string
	Publish(ctx context.Context, event Event) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type queuedEvent struct {
	ctx   context.Context
	event Event
}

// Client рассылает события по всем sink'ам в фоновой горутине.
// Track не ждет доставки: ошибки sink'ов только логируются,
// при переполненной очереди событие отбрасывается
type Client struct {
	sinks []Sink
	log   Logger
	now   func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	done   chan struct{}
}

// NewClient создает клиент аналитики и запускает доставку событий
func NewClient(log Logger, sinks ...Sink) *Client {
	return NewClientWithQueue(DefaultQueueSize, log, sinks...)
}

// NewClientWithQueue создает клиент с очередью заданного размера
func NewClientWithQueue(size int, log Logger, sinks ...Sink) *Client {
	if size < 1 {
		size = 1
	}

	c := &Client{
		sinks: sinks,
		log:   log,
		now:   time.Now,
		queue: make(chan queuedEvent, size),
		done:  make(chan struct{}),
	}
	go c.run()

	return c
}

// Track ставит событие в очередь на отправку
func (c *Client) Track(ctx context.Context, name string, properties map[string]interface{}) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEvent)
	}

	event := Event{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: properties,
		OccurredAt: c.now().UTC(),
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClosed
	}

	// Контекст запроса отменяется сразу после ответа, значения (request id) сохраняем
	select {
	case c.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		c.log.Warn("Analytics: queue is full, dropping event=%q", name)
	}

	return nil
}

// Close прекращает прием событий и ждет отправки уже поставленных в очередь
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		<-c.done
		return
	}
	c.closed = true
	close(c.queue)
	c.mu.Unlock()

	<-c.done
}

func (c *Client) run() {
	defer close(c.done)

	for item := range c.queue {
		c.publish(item.ctx, item.event)
	}
}

func (c *Client) publish(ctx context.Context, event Event) {
	for _, sink := range c.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			c.log.Warn("Analytics: sink=%s failed to publish event=%q: %v", sink.Name(), event.Name, err)
		}
	}
}

func (c *Client) TrackBooking(ctx context.Context, slotID, className string) {
	_ = c.Track(ctx, EventClassBooked, map[string]interface{}{
		"slotId":    slotID,
		"className": className,
	})
}

func (c *Client) TrackContactSubmit(ctx context.Context) {
	_ = c.Track(ctx, EventContactSubmitted, nil)
}

func (c *Client) TrackPageView(ctx context.Context, path string) {
	_ = c.Track(ctx, EventPageView, map[string]interface{}{"path": path})
}

func (c *Client) TrackMembershipSelect(ctx context.Context, planID string) {
	_ = c.Track(ctx, EventMembershipSelect, map[string]interface{}{"planId": planID})
}
