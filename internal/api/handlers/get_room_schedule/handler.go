package get_room_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CRS-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/CRS-AvailabilityService/internal/service/catalog"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

const (
	msgInvalidRoomID = "некорректный ID аудитории"
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound  = "аудитория не найдена"
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

// Handle GET /api/v1/rooms/{roomId}/schedule
// Query params: date (обязательный, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем roomId из URL
	roomIDStr := vars["roomId"]
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/schedule - Missing date: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.ParseCivilDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис каталога
	result, err := h.service.GetRoomSchedule(r.Context(), roomID, date)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/schedule - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/schedule - Failed to get schedule: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromServiceResponse(result)

	h.logger.Info("GET /rooms/{id}/schedule - Schedule retrieved: room_id=%d, date=%s, entries=%d",
		roomID, dateStr, len(response.Entries))
	handlers.RespondJSON(w, http.StatusOK, response)
}
