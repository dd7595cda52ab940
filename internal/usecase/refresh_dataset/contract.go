package refresh_dataset

import (
	"context"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	// ListIDs возвращает идентификаторы всех известных аудиторий
	ListIDs(ctx context.Context) ([]int64, error)
	// ReplaceEvents атомарно заменяет расписание аудитории
	ReplaceEvents(ctx context.Context, roomID int64, events []domain.Event) error
}

// ScheduleClient интерфейс клиента внешнего сервиса расписаний
type ScheduleClient interface {
	RoomDayAvailabilityWithGracefulDegradation(ctx context.Context, roomID int64, date types.CivilDate) ([]domain.Event, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder интерфейс для фиксации метрик обновления датасета
type MetricsRecorder interface {
	IncRefreshRoom(result string)
	ObserveRefreshDuration(duration time.Duration)
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
