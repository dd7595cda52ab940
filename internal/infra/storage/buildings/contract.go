package buildings

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс исполнителя SQL запросов.
// Ему удовлетворяют *sql.DB и обертка pkg/dbmetrics.DB.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
