package get_catalog

import (
	"net/http"

	"github.com/TahaKotwal12/247-gym/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleTrainers GET /api/v1/trainers
func (h *Handler) HandleTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.service.Trainers(r.Context())
	if err != nil {
		h.logger.Error("GET /trainers - Failed to get trainers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /trainers - Trainers retrieved: count=%d", len(trainers))
	handlers.RespondJSON(w, http.StatusOK, fromTrainers(trainers))
}

// HandleClasses GET /api/v1/classes
func (h *Handler) HandleClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.Classes(r.Context())
	if err != nil {
		h.logger.Error("GET /classes - Failed to get classes: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromClasses(classes))
}

// HandlePlans GET /api/v1/plans
func (h *Handler) HandlePlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.Plans(r.Context())
	if err != nil {
		h.logger.Error("GET /plans - Failed to get plans: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromPlans(plans))
}
