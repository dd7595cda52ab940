package refresh_dataset

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoRooms возвращается, когда в каталоге нет ни одной аудитории
	ErrNoRooms = errors.New("no rooms in catalog")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
