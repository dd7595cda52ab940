package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	roomsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/rooms"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomsRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeBuildingRepo struct {
	buildings []*domain.Building
}

func (f *fakeBuildingRepo) List(ctx context.Context) ([]*domain.Building, error) {
	return f.buildings, nil
}

func (f *fakeBuildingRepo) GetByCode(ctx context.Context, code string) (*domain.Building, error) {
	for _, b := range f.buildings {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, roomsRepo.ErrRoomNotFound
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func TestGetRoomScheduleSortsAndDeduplicates(t *testing.T) {
	room := &domain.Room{
		ID:   42,
		Name: "ESJ 0202",
		Events: []domain.Event{
			{Date: "2024-03-04", TimeStart: 15.0, TimeEnd: 16.0, EventName: "PHYS161", Status: domain.StatusReserved},
			{Date: "2024-03-04", TimeStart: 9.0, TimeEnd: 10.0, EventName: "MATH140", Status: domain.StatusClassMeeting},
			{Date: "2024-03-04", TimeStart: 9.0, TimeEnd: 10.0, EventName: "MATH140", Status: domain.StatusClassMeeting},
			{Date: "2024-03-05", TimeStart: 11.0, TimeEnd: 12.0, EventName: "other day", Status: domain.StatusReserved},
			{Date: "2024-03-04", TimeStart: 12.0, TimeEnd: 13.0, EventName: "hold", Status: domain.StatusTentative},
		},
	}
	svc := NewService(&fakeBuildingRepo{}, &fakeRoomRepo{rooms: map[int64]*domain.Room{42: room}}, testLogger{})

	schedule, err := svc.GetRoomSchedule(context.Background(), 42, types.NewCivilDate(2024, time.March, 4))
	require.NoError(t, err)

	// Другая дата и предварительная заявка отфильтрованы, дубликат схлопнут,
	// порядок - по времени начала
	require.Len(t, schedule.Entries, 2)
	assert.Equal(t, "MATH140", schedule.Entries[0].EventName)
	assert.Equal(t, "PHYS161", schedule.Entries[1].EventName)
}

func TestGetRoomScheduleRoomNotFound(t *testing.T) {
	svc := NewService(&fakeBuildingRepo{}, &fakeRoomRepo{rooms: map[int64]*domain.Room{}}, testLogger{})

	_, err := svc.GetRoomSchedule(context.Background(), 404, types.NewCivilDate(2024, time.March, 4))
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestListBuildings(t *testing.T) {
	repo := &fakeBuildingRepo{buildings: []*domain.Building{
		{Code: "ESJ", Name: "Edward St. John", Rooms: []domain.Room{{ID: 1}, {ID: 2}}},
		{Code: "PHY", Name: "Physics"},
	}}
	svc := NewService(repo, &fakeRoomRepo{}, testLogger{})

	list, err := svc.ListBuildings(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Buildings, 2)
	assert.Equal(t, 2, list.Buildings[0].RoomCount)
	assert.Equal(t, 0, list.Buildings[1].RoomCount)
}
