package resolve_building_availability

import (
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
)

// Request модель запроса на проверку доступности корпуса.
// Start и End задаются вместе; если окно не задано, применяется политика
// окна по умолчанию (проверка "прямо сейчас").
type Request struct {
	BuildingCode string
	Start        *time.Time
	End          *time.Time
}

// Response модель ответа с агрегированным вердиктом по корпусу
type Response struct {
	BuildingCode string
	BuildingName string
	Status       domain.AvailabilityStatus
	RoomCount    int

	// WindowStart и WindowEnd фактически проверенное окно
	WindowStart time.Time
	WindowEnd   time.Time
}
