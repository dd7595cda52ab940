package dbmetrics

import (
	"context"
	"database/sql"
)

// Executor интерфейс исполнителя SQL запросов.
// Ему удовлетворяют *sql.DB, *sql.Tx и *dbmetrics.DB.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type executorCtxKey struct{}

// WithExecutor кладет исполнитель (обычно открытую транзакцию) в контекст.
// Репозитории достают его через GetExecutor и выполняют запросы внутри
// транзакции вызывающей стороны.
func WithExecutor(ctx context.Context, ex Executor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, ex)
}

// GetExecutor возвращает исполнитель из контекста или fallback,
// если активной транзакции нет
func GetExecutor(ctx context.Context, fallback Executor) Executor {
	if ex, ok := ctx.Value(executorCtxKey{}).(Executor); ok {
		return ex
	}
	return fallback
}
