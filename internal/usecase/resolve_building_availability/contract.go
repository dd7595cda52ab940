package resolve_building_availability

import (
	"context"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

// BuildingRepository интерфейс репозитория корпусов
type BuildingRepository interface {
	// GetByCode получает корпус вместе с аудиториями и их расписаниями
	GetByCode(ctx context.Context, code string) (*domain.Building, error)
}

// Aggregator интерфейс агрегатора доступности по корпусу
type Aggregator interface {
	Resolve(building *domain.Building, query domain.Query) (domain.Verdict, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
