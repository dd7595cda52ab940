package availability

// Overlaps проверяет пересечение окна запроса и события.
// Все значения - минуты с начала локальных суток.
//
// Оба интервала полуоткрытые [a, b): событие, начинающееся ровно в момент
// конца запроса (или заканчивающееся ровно в момент его начала), пересечением
// НЕ считается.
//
// Буфер сужает интервал СОБЫТИЯ с обеих сторон - это допуск на подготовку и
// освобождение аудитории вокруг события. Окно запроса никогда не расширяется:
// пользователь запросил ровно то, что запросил.
//
// Мгновенный запрос (queryStart == queryEnd) пересекается с событием, если
// eventStart <= queryStart < eventEnd.
func Overlaps(queryStart, queryEnd, eventStart, eventEnd, bufferMinutes int) bool {
	evStart := eventStart + bufferMinutes
	evEnd := eventEnd - bufferMinutes

	// Буфер поглотил событие целиком - пересекаться не с чем
	if evEnd <= evStart {
		return false
	}

	if queryStart == queryEnd {
		return evStart <= queryStart && queryStart < evEnd
	}

	return queryStart < evEnd && evStart < queryEnd
}
