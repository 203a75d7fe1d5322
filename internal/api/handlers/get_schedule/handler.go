package get_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TahaKotwal12/247-gym/internal/api/handlers"
	getSchedule "github.com/TahaKotwal12/247-gym/internal/usecase/get_schedule"
)

const (
	msgInvalidDay   = "Invalid day of week."
	msgSlotNotFound = "Invalid class slot selected."
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?day=Monday
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")

	result, err := h.useCase.Execute(r.Context(), &getSchedule.Request{Day: day})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidDay):
			h.logger.Warn("GET /schedule - Invalid day: %q", day)
			handlers.RespondBadRequest(w, msgInvalidDay)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved: slots=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleSlot GET /api/v1/schedule/{slotId}
func (h *Handler) HandleSlot(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	slot, err := h.useCase.GetSlot(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrSlotNotFound):
			h.logger.Warn("GET /schedule/{id} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /schedule/{id} - Failed to get slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{id} - Slot retrieved: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseSlot(slot))
}
