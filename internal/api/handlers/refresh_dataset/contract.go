package refresh_dataset

import (
	"context"

	refreshDataset "github.com/m04kA/CRS-AvailabilityService/internal/usecase/refresh_dataset"
)

type RefreshDatasetUseCase interface {
	Execute(ctx context.Context, req *refreshDataset.Request) (*refreshDataset.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
