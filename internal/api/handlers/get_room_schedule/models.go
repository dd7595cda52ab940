package get_room_schedule

import (
	"github.com/m04kA/CRS-AvailabilityService/internal/service/catalog/models"
)

// ScheduleEntryResponse одно событие дневного расписания
type ScheduleEntryResponse struct {
	EventName string  `json:"eventName"`
	TimeStart float64 `json:"timeStart"`
	TimeEnd   float64 `json:"timeEnd"`
	Status    string  `json:"status"`
}

// RoomScheduleResponse HTTP модель дневного расписания аудитории
type RoomScheduleResponse struct {
	RoomID   int64                   `json:"roomId"`
	RoomName string                  `json:"roomName"`
	Date     string                  `json:"date"`
	Entries  []ScheduleEntryResponse `json:"entries"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RoomScheduleResponse) *RoomScheduleResponse {
	entries := make([]ScheduleEntryResponse, len(resp.Entries))
	for i, entry := range resp.Entries {
		entries[i] = ScheduleEntryResponse{
			EventName: entry.EventName,
			TimeStart: entry.TimeStart,
			TimeEnd:   entry.TimeEnd,
			Status:    string(entry.Status),
		}
	}

	return &RoomScheduleResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Date:     resp.Date.String(),
		Entries:  entries,
	}
}
