package get_catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TahaKotwal12/247-gym/internal/infra/storage/catalog"
	catalogService "github.com/TahaKotwal12/247-gym/internal/service/catalog"
	"github.com/TahaKotwal12/247-gym/pkg/logger"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return NewHandler(catalogService.NewService(c, 0, logger.Nop()), logger.Nop())
}

func TestHandler_Trainers(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).HandleTrainers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/trainers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []TrainerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 4)
	assert.NotEmpty(t, body[0].Name)
}

func TestHandler_ClassesAndPlans(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.HandleClasses(rec, httptest.NewRequest(http.MethodGet, "/api/v1/classes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var classes []ClassResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &classes))
	assert.Len(t, classes, 6)
	assert.Equal(t, "Power Lifting", classes[0].Name)

	rec = httptest.NewRecorder()
	h.HandlePlans(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var plans []PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	assert.Len(t, plans, 3)
}
