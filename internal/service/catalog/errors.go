package catalog

import "errors"

var (
	// ErrBuildingNotFound возвращается, когда корпус не найден
	ErrBuildingNotFound = errors.New("building not found")

	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
