package track_event

import (
	"errors"
	"net/http"

	"github.com/TahaKotwal12/247-gym/internal/api/handlers"
	"github.com/TahaKotwal12/247-gym/internal/integrations/analytics"
	"github.com/TahaKotwal12/247-gym/internal/service/catalog"
)

const (
	msgInvalidEvent = "Event name is required."
	msgUnknownPlan  = "Unknown membership plan."
	msgMissingPath  = "Page path is required."
)

type Handler struct {
	tracker AnalyticsTracker
	plans   PlanLookup
	logger  Logger
}

func NewHandler(tracker AnalyticsTracker, plans PlanLookup, logger Logger) *Handler {
	return &Handler{
		tracker: tracker,
		plans:   plans,
		logger:  logger,
	}
}

// Handle POST /api/v1/analytics/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TrackEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /analytics/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	switch req.Event {
	case analytics.EventMembershipSelect:
		planID := req.stringProperty("planId")
		if _, err := h.plans.Plan(r.Context(), planID); err != nil {
			if errors.Is(err, catalog.ErrPlanNotFound) {
				h.logger.Warn("POST /analytics/events - Unknown plan: plan_id=%q", planID)
				handlers.RespondBadRequest(w, msgUnknownPlan)
				return
			}
			h.logger.Error("POST /analytics/events - Failed to get plan: plan_id=%q, error=%v", planID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.tracker.TrackMembershipSelect(r.Context(), planID)

	case analytics.EventPageView:
		path := req.stringProperty("path")
		if path == "" {
			h.logger.Warn("POST /analytics/events - Page view without path")
			handlers.RespondBadRequest(w, msgMissingPath)
			return
		}
		h.tracker.TrackPageView(r.Context(), path)

	default:
		if err := h.tracker.Track(r.Context(), req.Event, req.Properties); err != nil {
			switch {
			case errors.Is(err, analytics.ErrInvalidEvent):
				h.logger.Warn("POST /analytics/events - Invalid event: %v", err)
				handlers.RespondBadRequest(w, msgInvalidEvent)

			default:
				h.logger.Error("POST /analytics/events - Failed to track event: error=%v", err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	handlers.RespondJSON(w, http.StatusAccepted, &TrackEventResponse{Success: true, Event: req.Event})
}
