package resolve_room_availability

import (
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

// Request модель запроса на проверку доступности аудитории.
// Start и End задаются вместе; если окно не задано, применяется политика
// окна по умолчанию (проверка "прямо сейчас").
type Request struct {
	RoomID int64
	Start  *time.Time
	End    *time.Time
}

// Response модель ответа с вердиктом доступности
type Response struct {
	RoomID   int64
	RoomName string
	Status   domain.AvailabilityStatus

	// TimeUntilNextTransition сколько еще аудитория останется свободной;
	// nil - до конца дня ничего не запланировано
	TimeUntilNextTransition *time.Duration

	// WindowStart и WindowEnd фактически проверенное окно
	// (после применения политики окна по умолчанию)
	WindowStart time.Time
	WindowEnd   time.Time
}
