package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// TimeNormalizer приводит произвольный момент времени к настенному времени
// институтского часового пояса. Нормализация выполняется один раз на входе
// в резолвер; вся дальнейшая логика сравнивает только types.LocalDateTime
// и никогда не пересчитывает локальное время заново.
type TimeNormalizer struct {
	loc *time.Location
}

// NewTimeNormalizer загружает часовой пояс по идентификатору IANA
func NewTimeNormalizer(tzName string) (*TimeNormalizer, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("availability: load timezone %q: %w", tzName, err)
	}
	return &TimeNormalizer{loc: loc}, nil
}

// ToLocal конвертирует момент времени в локальное настенное представление.
// Смещение (включая переход на летнее время) берется для конкретной даты.
func (n *TimeNormalizer) ToLocal(t time.Time) types.LocalDateTime {
	return types.NewLocalDateTime(t.In(n.loc))
}

// Location возвращает институтский часовой пояс
func (n *TimeNormalizer) Location() *time.Location {
	return n.loc
}
