package book_class

import (
	"net/http"

	"github.com/TahaKotwal12/247-gym/internal/api/handlers"
	"github.com/TahaKotwal12/247-gym/internal/domain"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /book - Failed to book class: slot_id=%s, error=%v", req.SlotID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	switch result.Outcome {
	case domain.OutcomeSuccess:
		h.logger.Info("POST /book - Class booked successfully: booking_id=%s, slot_id=%s", result.BookingID, req.SlotID)
		handlers.RespondJSON(w, http.StatusCreated, response)

	case domain.OutcomeNotFound:
		h.logger.Warn("POST /book - Slot not found: slot_id=%s", req.SlotID)
		handlers.RespondJSON(w, http.StatusNotFound, response)

	case domain.OutcomeCapacityError:
		h.logger.Warn("POST /book - Slot fully booked: slot_id=%s", req.SlotID)
		handlers.RespondJSON(w, http.StatusConflict, response)

	default:
		h.logger.Warn("POST /book - Validation failed: slot_id=%s, message=%q", req.SlotID, result.Message)
		handlers.RespondJSON(w, http.StatusBadRequest, response)
	}
}
