package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// publisher подмножество *nats.Conn, используемое sink'ом
type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink публикует события в NATS как JSON
type NATSSink struct {
	conn    *nats.Conn
	pub     publisher
	subject string
}

// NewNATSSink подключается к NATS и создает sink
func NewNATSSink(url, subject string, timeout time.Duration, log Logger) (*NATSSink, error) {
	conn, err := nats.Connect(url,
		nats.Name("247-gym-analytics"),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("Analytics: NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("Analytics: NATS reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, url, err)
	}

	return &NATSSink{conn: conn, pub: conn, subject: subject}, nil
}

func (s *NATSSink) Name() string { return "nats" }

func (s *NATSSink) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}
	if err := s.pub.Publish(s.subject, data); err != nil {
		return fmt.Errorf("%w: subject=%s: %v", ErrPublish, s.subject, err)
	}
	return nil
}

// Close дожидается отправки буферизованных сообщений и закрывает соединение
func (s *NATSSink) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Drain()
}
