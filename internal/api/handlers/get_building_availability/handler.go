package get_building_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CRS-AvailabilityService/internal/api/handlers"
	resolveBuilding "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_building_availability"
)

const (
	msgInvalidWindow    = "некорректное окно запроса: start и end задаются вместе в формате RFC3339"
	msgInvalidTimeRange = "начало окна позже его конца"
	msgBuildingNotFound = "корпус не найден"
)

type Handler struct {
	useCase ResolveBuildingAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveBuildingAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/buildings/{buildingCode}/availability
// Query params: start, end (опциональные, RFC3339, задаются вместе)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	buildingCode := vars["buildingCode"]

	// Формируем запрос к use case (с парсингом окна)
	useCaseReq, err := ToUseCaseRequest(buildingCode, r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		h.logger.Warn("GET /buildings/{code}/availability - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, resolveBuilding.ErrBuildingNotFound):
			h.logger.Warn("GET /buildings/{code}/availability - Building not found: code=%s", buildingCode)
			handlers.RespondNotFound(w, msgBuildingNotFound)

		case errors.Is(err, resolveBuilding.ErrInvalidTimeRange):
			h.logger.Warn("GET /buildings/{code}/availability - Invalid time range: code=%s", buildingCode)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, resolveBuilding.ErrInvalidInput):
			h.logger.Warn("GET /buildings/{code}/availability - Invalid input: code=%s, error=%v", buildingCode, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /buildings/{code}/availability - Failed to resolve availability: code=%s, error=%v", buildingCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /buildings/{code}/availability - Verdict resolved: code=%s, status=%s, rooms=%d",
		buildingCode, response.Status, response.RoomCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
