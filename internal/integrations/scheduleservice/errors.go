package scheduleservice

import "errors"

var (
	// ErrRoomNotFound возвращается, когда фид не знает такую аудиторию
	ErrRoomNotFound = errors.New("room not found in schedule feed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе фида
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что фид недоступен: обновление пропускает аудиторию,
	// сохраняя ее предыдущее расписание.
	ErrServiceDegraded = errors.New("scheduleservice unavailable: graceful degradation applied")
)
