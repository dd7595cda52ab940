package list_buildings

import (
	"context"

	"github.com/m04kA/CRS-AvailabilityService/internal/service/catalog/models"
)

type CatalogService interface {
	ListBuildings(ctx context.Context) (*models.BuildingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
