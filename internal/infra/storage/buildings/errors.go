package buildings

import "errors"

var (
	// ErrBuildingNotFound возвращается, когда корпус не найден
	ErrBuildingNotFound = errors.New("building not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("buildings storage: build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("buildings storage: execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("buildings storage: scan row")
)
