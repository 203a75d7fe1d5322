package send_contact

import (
	"net/http"

	"github.com/TahaKotwal12/247-gym/internal/api/handlers"
)

type Handler struct {
	useCase SendContactUseCase
	logger  Logger
}

func NewHandler(useCase SendContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /contact - Failed to send message: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &ContactResponse{Success: result.Success, Message: result.Message}
	if !result.Success {
		h.logger.Warn("POST /contact - Validation failed: message=%q", result.Message)
		handlers.RespondJSON(w, http.StatusBadRequest, response)
		return
	}

	h.logger.Info("POST /contact - Message accepted")
	handlers.RespondJSON(w, http.StatusOK, response)
}
