package resolve_building_availability

import "errors"

var (
	// ErrBuildingNotFound возвращается, когда корпус не найден
	ErrBuildingNotFound = errors.New("building not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало окна позже его конца
	ErrInvalidTimeRange = errors.New("invalid time range: start is after end")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
