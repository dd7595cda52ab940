package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rooms storage: build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rooms storage: execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("rooms storage: scan row")
)
