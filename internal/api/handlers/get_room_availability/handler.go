package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CRS-AvailabilityService/internal/api/handlers"
	resolveRoom "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_room_availability"
)

const (
	msgInvalidRoomID    = "некорректный ID аудитории"
	msgInvalidWindow    = "некорректное окно запроса: start и end задаются вместе в формате RFC3339"
	msgInvalidTimeRange = "начало окна позже его конца"
	msgRoomNotFound     = "аудитория не найдена"
	msgMalformedData    = "расписание аудитории содержит некорректные данные"
)

type Handler struct {
	useCase ResolveRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
// Query params: start, end (опциональные, RFC3339, задаются вместе)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем roomId из URL
	roomIDStr := vars["roomId"]
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Формируем запрос к use case (с парсингом окна)
	useCaseReq, err := ToUseCaseRequest(roomID, r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, resolveRoom.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, resolveRoom.ErrInvalidTimeRange):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid time range: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, resolveRoom.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, resolveRoom.ErrRoomDataMalformed):
			h.logger.Error("GET /rooms/{id}/availability - Malformed schedule data: room_id=%d", roomID)
			handlers.RespondUnprocessableEntity(w, msgMalformedData)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to resolve availability: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/{id}/availability - Verdict resolved: room_id=%d, status=%s", roomID, response.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
