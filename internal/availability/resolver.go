package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/ptr"
)

// RoomResolver вычисляет вердикт доступности одной аудитории для одного окна
// запроса. Чистая синхронная функция своих входов: без I/O, без разделяемого
// состояния, безопасна для конкурентных вызовов.
type RoomResolver struct {
	normalizer    *TimeNormalizer
	policy        *CalendarPolicy
	bufferMinutes int
}

// NewRoomResolver создает резолвер с календарной политикой и буфером
// пересечения (в минутах)
func NewRoomResolver(normalizer *TimeNormalizer, policy *CalendarPolicy, bufferMinutes int) *RoomResolver {
	return &RoomResolver{
		normalizer:    normalizer,
		policy:        policy,
		bufferMinutes: bufferMinutes,
	}
}

// Resolve классифицирует аудиторию для окна запроса.
// Проверки идут по порядку, первая сработавшая дает ответ:
// контракт окна -> календарный день -> часы работы -> события дня -> пересечения.
func (r *RoomResolver) Resolve(room *domain.Room, query domain.Query) (domain.Verdict, error) {
	// 1. Нормализуем границы окна к институтскому поясу - единственное место,
	// где появляется локальное время
	localStart := r.normalizer.ToLocal(query.Start)
	localEnd := r.normalizer.ToLocal(query.End)

	// 2. Начало позже конца - нарушение контракта вызывающей стороны
	if query.Start.After(query.End) {
		return domain.Verdict{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidQuery, query.Start.Format(time.RFC3339), query.End.Format(time.RFC3339))
	}

	// 3. Выходной или праздник - кампус закрыт независимо от расписания
	date := localStart.Date()
	if !r.policy.IsOperatingDay(date) {
		return domain.Verdict{Status: domain.StatusClosed}, nil
	}

	// 4. Окно должно целиком попадать в часы работы кампуса:
	// закрыто, если ЛЮБАЯ из границ окна выходит за рабочие часы
	openHour, closeHour := r.policy.OperatingWindow()
	if localStart.HourOfDay() < openHour || localEnd.HourOfDay() > closeHour {
		return domain.Verdict{Status: domain.StatusClosed}, nil
	}

	// 5. События аудитории на локальную дату начала окна
	events, err := EventsOnDate(room, date)
	if err != nil {
		return domain.Verdict{}, err
	}
	if len(events) == 0 {
		// Ничего не запланировано: свободна без ограничения по времени
		return domain.Verdict{Status: domain.StatusAvailable}, nil
	}

	queryStart := localStart.MinutesOfDay()
	queryEnd := localEnd.MinutesOfDay()

	// 6. Проверяем пересечения и попутно ищем ближайшее будущее событие
	minGap := -1
	for _, ev := range events {
		if ev.TimeEnd <= ev.TimeStart {
			return domain.Verdict{}, fmt.Errorf("%w: event %q: time_end %.2f <= time_start %.2f",
				ErrMalformedEvent, ev.EventName, ev.TimeEnd, ev.TimeStart)
		}

		evStart := ev.StartMinutes()
		evEnd := ev.EndMinutes()

		if Overlaps(queryStart, queryEnd, evStart, evEnd, r.bufferMinutes) {
			return domain.Verdict{Status: domain.StatusUnavailable}, nil
		}

		if gap := evStart - queryEnd; gap > 0 && (minGap < 0 || gap < minGap) {
			minGap = gap
		}
	}

	// 7. Пересечений нет: свободна до начала ближайшего события
	verdict := domain.Verdict{Status: domain.StatusAvailable}
	if minGap >= 0 {
		verdict.TimeUntilNextTransition = ptr.Ptr(time.Duration(minGap) * time.Minute)
	}
	return verdict, nil
}
