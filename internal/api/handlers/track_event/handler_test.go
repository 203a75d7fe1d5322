package track_event

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TahaKotwal12/247-gym/internal/domain"
	"github.com/TahaKotwal12/247-gym/internal/integrations/analytics"
	"github.com/TahaKotwal12/247-gym/internal/service/catalog"
	"github.com/TahaKotwal12/247-gym/pkg/logger"
)

// fakeTracker синхронно запоминает события, как их отправил бы analytics.Client
type fakeTracker struct {
	events []analytics.Event
	err    error
}

func (t *fakeTracker) Track(_ context.Context, name string, properties map[string]interface{}) error {
	if strings.TrimSpace(name) == "" {
		return analytics.ErrInvalidEvent
	}
	if t.err != nil {
		return t.err
	}
	t.events = append(t.events, analytics.Event{Name: name, Properties: properties})
	return nil
}

func (t *fakeTracker) TrackPageView(ctx context.Context, path string) {
	_ = t.Track(ctx, analytics.EventPageView, map[string]interface{}{"path": path})
}

func (t *fakeTracker) TrackMembershipSelect(ctx context.Context, planID string) {
	_ = t.Track(ctx, analytics.EventMembershipSelect, map[string]interface{}{"planId": planID})
}

func newHandler() (*Handler, *fakeTracker) {
	tracker := &fakeTracker{}
	plans := catalog.NewService(&domain.Catalog{
		Plans: []domain.MembershipPlan{{ID: "plan-yearly", Name: "Elite"}},
	}, 0, logger.Nop())

	return NewHandler(tracker, plans, logger.Nop()), tracker
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/analytics/events", strings.NewReader(body)))
	return rec
}

func TestHandler_MembershipSelect(t *testing.T) {
	h, sink := newHandler()

	rec := post(h, `{"event":"Membership Plan Selected","properties":{"planId":"plan-yearly"}}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, sink.events, 1)
	assert.Equal(t, analytics.EventMembershipSelect, sink.events[0].Name)
	assert.Equal(t, "plan-yearly", sink.events[0].Properties["planId"])

	rec = post(h, `{"event":"Membership Plan Selected","properties":{"planId":"plan-forever"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, sink.events, 1)
}

func TestHandler_PageView(t *testing.T) {
	h, sink := newHandler()

	rec := post(h, `{"event":"Page View","properties":{"path":"/schedule"}}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "/schedule", sink.events[0].Properties["path"])

	rec = post(h, `{"event":"Page View"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CustomEvent(t *testing.T) {
	h, sink := newHandler()

	rec := post(h, `{"event":"Trainer Profile Opened","properties":{"trainerId":"trainer-2"}}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"success":true,"event":"Trainer Profile Opened"}`, rec.Body.String())
	require.Len(t, sink.events, 1)
}

func TestHandler_Invalid(t *testing.T) {
	h, _ := newHandler()

	assert.Equal(t, http.StatusBadRequest, post(h, `{"event":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `[`).Code)
}

func TestHandler_TrackerClosed(t *testing.T) {
	h, tracker := newHandler()
	tracker.err = analytics.ErrClosed

	rec := post(h, `{"event":"Trainer Profile Opened"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, tracker.events)
}

func TestHandler_WithAnalyticsClient(t *testing.T) {
	plans := catalog.NewService(&domain.Catalog{}, 0, logger.Nop())
	client := analytics.NewClient(logger.Nop())
	h := NewHandler(client, plans, logger.Nop())

	assert.Equal(t, http.StatusAccepted, post(h, `{"event":"Trainer Profile Opened"}`).Code)

	client.Close()
	assert.Equal(t, http.StatusInternalServerError, post(h, `{"event":"Trainer Profile Opened"}`).Code)
}
