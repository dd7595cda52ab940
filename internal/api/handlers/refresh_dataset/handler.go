package refresh_dataset

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRS-AvailabilityService/internal/api/handlers"
	refreshDataset "github.com/m04kA/CRS-AvailabilityService/internal/usecase/refresh_dataset"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoRooms     = "в каталоге нет ни одной аудитории"
)

type Handler struct {
	useCase RefreshDatasetUseCase
	logger  Logger
}

func NewHandler(useCase RefreshDatasetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/dataset/refresh
// Query params: date (опциональный, YYYY-MM-DD; по умолчанию - сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("POST /admin/dataset/refresh - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, refreshDataset.ErrNoRooms):
			h.logger.Warn("POST /admin/dataset/refresh - No rooms in catalog")
			handlers.RespondUnprocessableEntity(w, msgNoRooms)

		default:
			h.logger.Error("POST /admin/dataset/refresh - Refresh failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /admin/dataset/refresh - Refresh done: date=%s, updated=%d, failed=%d",
		response.Date, response.Updated, response.Failed)
	handlers.RespondJSON(w, http.StatusOK, response)
}
