package get_room_availability

import (
	"fmt"
	"time"

	resolveRoom "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_room_availability"
)

// RoomAvailabilityResponse HTTP модель вердикта доступности аудитории
type RoomAvailabilityResponse struct {
	RoomID      int64  `json:"roomId"`
	RoomName    string `json:"roomName"`
	Status      string `json:"status"`
	WindowStart string `json:"windowStart"`
	WindowEnd   string `json:"windowEnd"`

	// AvailableForMinutes сколько минут аудитория останется свободной;
	// отсутствует, если до конца дня ничего не запланировано
	AvailableForMinutes *int `json:"availableForMinutes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveRoom.Response) *RoomAvailabilityResponse {
	result := &RoomAvailabilityResponse{
		RoomID:      resp.RoomID,
		RoomName:    resp.RoomName,
		Status:      string(resp.Status),
		WindowStart: resp.WindowStart.Format(time.RFC3339),
		WindowEnd:   resp.WindowEnd.Format(time.RFC3339),
	}

	if resp.TimeUntilNextTransition != nil {
		minutes := int(resp.TimeUntilNextTransition.Minutes())
		result.AvailableForMinutes = &minutes
	}

	return result
}

// ToUseCaseRequest создает запрос use case из параметров запроса.
// Параметры start и end задаются вместе в формате RFC3339.
func ToUseCaseRequest(roomID int64, startStr, endStr string) (*resolveRoom.Request, error) {
	req := &resolveRoom.Request{RoomID: roomID}

	if startStr == "" && endStr == "" {
		return req, nil
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("parse start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("parse end: %w", err)
	}

	req.Start = &start
	req.End = &end
	return req, nil
}
