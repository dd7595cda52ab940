package get_room_schedule

import (
	"context"

	"github.com/m04kA/CRS-AvailabilityService/internal/service/catalog/models"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

type CatalogService interface {
	GetRoomSchedule(ctx context.Context, roomID int64, date types.CivilDate) (*models.RoomScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
