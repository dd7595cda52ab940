package resolve_room_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало окна позже его конца.
	// Запрос отклоняется до обращения к движку.
	ErrInvalidTimeRange = errors.New("invalid time range: start is after end")

	// ErrRoomDataMalformed возвращается, когда расписание аудитории содержит
	// некорректные события и вердикт невычислим
	ErrRoomDataMalformed = errors.New("room schedule data is malformed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
