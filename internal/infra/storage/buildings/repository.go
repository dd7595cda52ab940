package buildings

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

// Repository репозиторий для работы с корпусами кампуса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория корпусов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет корпус (по коду)
func (r *Repository) Upsert(ctx context.Context, building *domain.Building) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("buildings").
		Columns("code", "name", "building_id", "latitude", "longitude").
		Values(building.Code, building.Name, building.BuildingID, building.Latitude, building.Longitude).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			building_id = EXCLUDED.building_id,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// List возвращает все корпуса с аудиториями (без расписаний - для каталога)
func (r *Repository) List(ctx context.Context) ([]*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "name", "building_id", "latitude", "longitude").
		From("buildings").
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Building
	index := make(map[string]*domain.Building)
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.Code, &b.Name, &b.BuildingID, &b.Latitude, &b.Longitude); err != nil {
			return nil, fmt.Errorf("%w: List - scan building: %v", ErrScanRow, err)
		}
		result = append(result, &b)
		index[b.Code] = &b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	if err := r.attachRooms(ctx, executor, index); err != nil {
		return nil, err
	}

	return result, nil
}

// GetByCode возвращает корпус со всеми аудиториями и их расписаниями
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "name", "building_id", "latitude", "longitude").
		From("buildings").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var building domain.Building
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&building.Code,
		&building.Name,
		&building.BuildingID,
		&building.Latitude,
		&building.Longitude,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBuildingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan building: %v", ErrScanRow, err)
	}

	index := map[string]*domain.Building{building.Code: &building}
	if err := r.attachRooms(ctx, executor, index); err != nil {
		return nil, err
	}
	if err := r.attachEvents(ctx, executor, &building); err != nil {
		return nil, err
	}

	return &building, nil
}

// attachRooms загружает аудитории и раскладывает их по корпусам
func (r *Repository) attachRooms(ctx context.Context, executor dbmetrics.Executor, index map[string]*domain.Building) error {
	if len(index) == 0 {
		return nil
	}

	codes := make([]string, 0, len(index))
	for code := range index {
		codes = append(codes, code)
	}

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
		Where(squirrel.Eq{"building_code": codes}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.BuildingCode,
			&room.Name,
			&room.RoomNumber,
			&room.Capacity,
			&room.HasWhiteboard,
			&room.HasProjector,
		); err != nil {
			return fmt.Errorf("%w: attachRooms - scan room: %v", ErrScanRow, err)
		}

		if b, ok := index[room.BuildingCode]; ok {
			b.Rooms = append(b.Rooms, room)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachRooms - iterate rows: %v", ErrExecQuery, err)
	}

	return nil
}

// attachEvents загружает расписания всех аудиторий корпуса одним запросом
func (r *Repository) attachEvents(ctx context.Context, executor dbmetrics.Executor, building *domain.Building) error {
	if len(building.Rooms) == 0 {
		return nil
	}

	roomIDs := make([]int64, 0, len(building.Rooms))
	roomIndex := make(map[int64]*domain.Room, len(building.Rooms))
	for i := range building.Rooms {
		room := &building.Rooms[i]
		roomIDs = append(roomIDs, room.ID)
		roomIndex[room.ID] = room
	}

	query, args, err := psqlbuilder.Select(
		"room_id",
		"event_date",
		"time_start",
		"time_end",
		"event_name",
		"status",
	).
		From("room_events").
		Where(squirrel.Eq{"room_id": roomIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			roomID int64
			ev     domain.Event
			date   time.Time
		)
		if err := rows.Scan(&roomID, &date, &ev.TimeStart, &ev.TimeEnd, &ev.EventName, &ev.Status); err != nil {
			return fmt.Errorf("%w: attachEvents - scan event: %v", ErrScanRow, err)
		}
		ev.Date = date.Format(domain.DateFormat)

		if room, ok := roomIndex[roomID]; ok {
			room.Events = append(room.Events, ev)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachEvents - iterate rows: %v", ErrExecQuery, err)
	}

	return nil
}
