package catalog

import (
	"context"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

// BuildingRepository интерфейс репозитория корпусов
type BuildingRepository interface {
	List(ctx context.Context) ([]*domain.Building, error)
	GetByCode(ctx context.Context, code string) (*domain.Building, error)
}

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
