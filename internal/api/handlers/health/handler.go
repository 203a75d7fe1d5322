package health

import (
	"net/http"

	"github.com/TahaKotwal12/247-gym/internal/api/handlers"
)

type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct {
	serviceName string
}

func NewHandler(serviceName string) *Handler {
	return &Handler{serviceName: serviceName}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &Response{Status: "ok", Service: h.serviceName})
}
