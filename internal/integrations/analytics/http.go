package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPSink отправляет события во внешний коллектор по HTTP
type HTTPSink struct {
	endpoint   string
	httpClient *http.Client
	log        Logger
}

// NewHTTPSink создает sink, публикующий события в <baseURL>/events
func NewHTTPSink(baseURL string, timeout time.Duration, log Logger) *HTTPSink {
	return &HTTPSink{
		endpoint: strings.TrimRight(baseURL, "/") + "/events",
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (s *HTTPSink) Name() string { return "http" }

func (s *HTTPSink) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrPublish, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrPublish, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		s.log.Warn("Analytics: collector rejected event id=%s name=%q status=%d", event.ID, event.Name, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrPublish, resp.StatusCode, string(respBody))
	}
}
