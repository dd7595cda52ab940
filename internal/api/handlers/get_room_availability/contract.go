package get_room_availability

import (
	"context"

	resolveRoom "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_room_availability"
)

type ResolveRoomAvailabilityUseCase interface {
	Execute(ctx context.Context, req *resolveRoom.Request) (*resolveRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
