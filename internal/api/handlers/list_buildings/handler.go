package list_buildings

import (
	"net/http"

	"github.com/m04kA/CRS-AvailabilityService/internal/api/handlers"
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

// Handle GET /api/v1/buildings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBuildings(r.Context())
	if err != nil {
		h.logger.Error("GET /buildings - Failed to list buildings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /buildings - Buildings retrieved: count=%d", len(response.Buildings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
