package get_building_availability

import (
	"context"

	resolveBuilding "github.com/m04kA/CRS-AvailabilityService/internal/usecase/resolve_building_availability"
)

type ResolveBuildingAvailabilityUseCase interface {
	Execute(ctx context.Context, req *resolveBuilding.Request) (*resolveBuilding.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
