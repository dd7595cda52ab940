package resolve_room_availability

import (
	"context"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	// GetByID получает аудиторию вместе с ее расписанием
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Resolver интерфейс движка доступности для одной аудитории
type Resolver interface {
	Resolve(room *domain.Room, query domain.Query) (domain.Verdict, error)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
