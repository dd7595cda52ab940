package rooms

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/CRS-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с аудиториями и их расписаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аудиторий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет аудиторию (по внешнему идентификатору фида)
func (r *Repository) Upsert(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"id",
			"building_code",
			"name",
			"room_number",
			"capacity",
			"has_whiteboard",
			"has_projector",
		).
		Values(
			room.ID,
			room.BuildingCode,
			room.Name,
			room.RoomNumber,
			room.Capacity,
			room.HasWhiteboard,
			room.HasProjector,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			building_code = EXCLUDED.building_code,
			name = EXCLUDED.name,
			room_number = EXCLUDED.room_number,
			capacity = EXCLUDED.capacity,
			has_whiteboard = EXCLUDED.has_whiteboard,
			has_projector = EXCLUDED.has_projector`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает аудиторию вместе с ее расписанием
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"building_code",
		"name",
		"room_number",
		"capacity",
		"has_whiteboard",
		"has_projector",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.BuildingCode,
		&room.Name,
		&room.RoomNumber,
		&room.Capacity,
		&room.HasWhiteboard,
		&room.HasProjector,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	events, err := r.getEvents(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	room.Events = events

	return &room, nil
}

// ListIDs возвращает идентификаторы всех аудиторий
// (используется обновлением датасета)
func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("rooms").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListIDs - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListIDs - iterate rows: %v", ErrExecQuery, err)
	}

	return ids, nil
}

// ReplaceEvents атомарно заменяет расписание аудитории свежими данными фида.
// Вызывается внутри транзакции (txmanager кладет ее в контекст), чтобы
// читатели не увидели аудиторию с наполовину удаленным расписанием.
func (r *Repository) ReplaceEvents(ctx context.Context, roomID int64, events []domain.Event) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_events").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceEvents - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceEvents - execute delete: %v", ErrExecQuery, err)
	}

	if len(events) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("room_events").
		Columns("room_id", "event_date", "time_start", "time_end", "event_name", "status")
	for _, ev := range events {
		insert = insert.Values(roomID, ev.Date, ev.TimeStart, ev.TimeEnd, ev.EventName, ev.Status)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceEvents - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceEvents - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getEvents(ctx context.Context, executor dbmetrics.Executor, roomID int64) ([]domain.Event, error) {
	query, args, err := psqlbuilder.Select(
		"event_date",
		"time_start",
		"time_end",
		"event_name",
		"status",
	).
		From("room_events").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			ev   domain.Event
			date time.Time
		)
		if err := rows.Scan(&date, &ev.TimeStart, &ev.TimeEnd, &ev.EventName, &ev.Status); err != nil {
			return nil, fmt.Errorf("%w: getEvents - scan event: %v", ErrScanRow, err)
		}
		ev.Date = date.Format(domain.DateFormat)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getEvents - iterate rows: %v", ErrExecQuery, err)
	}

	return events, nil
}
