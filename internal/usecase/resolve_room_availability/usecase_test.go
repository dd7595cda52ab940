package resolve_room_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-AvailabilityService/internal/availability"
	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	roomsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/rooms"
	"github.com/m04kA/CRS-AvailabilityService/pkg/ptr"
)

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

type fakeResolver struct {
	verdict   domain.Verdict
	err       error
	gotQuery  domain.Query
	callCount int
}

func (f *fakeResolver) Resolve(_ *domain.Room, query domain.Query) (domain.Verdict, error) {
	f.gotQuery = query
	f.callCount++
	return f.verdict, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:           42,
		Name:         "MTH 0102",
		RoomNumber:   "0102",
		BuildingCode: "MTH",
	}
}

func TestExecuteExplicitWindow(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	resolver := &fakeResolver{verdict: domain.Verdict{
		Status:                  domain.StatusAvailable,
		TimeUntilNextTransition: ptr.Ptr(45 * time.Minute),
	}}
	uc := NewUseCase(&fakeRoomRepo{room: testRoom()}, resolver, &fixedTimeProvider{}, 0, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 42, Start: &start, End: &end})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.RoomID)
	assert.Equal(t, "MTH 0102", resp.RoomName)
	assert.Equal(t, domain.StatusAvailable, resp.Status)
	require.NotNil(t, resp.TimeUntilNextTransition)
	assert.Equal(t, 45*time.Minute, *resp.TimeUntilNextTransition)
	assert.Equal(t, start, resp.WindowStart)
	assert.Equal(t, end, resp.WindowEnd)
	assert.Equal(t, start, resolver.gotQuery.Start)
	assert.Equal(t, end, resolver.gotQuery.End)
}

func TestExecuteDefaultWindowFromNow(t *testing.T) {
	now := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)
	resolver := &fakeResolver{verdict: domain.Verdict{Status: domain.StatusUnavailable}}
	uc := NewUseCase(&fakeRoomRepo{room: testRoom()}, resolver, &fixedTimeProvider{now: now}, 30*time.Minute, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 42})
	require.NoError(t, err)

	assert.Equal(t, now, resolver.gotQuery.Start)
	assert.Equal(t, now.Add(30*time.Minute), resolver.gotQuery.End)
	assert.Equal(t, now, resp.WindowStart)
	assert.Equal(t, now.Add(30*time.Minute), resp.WindowEnd)
}

func TestExecuteZeroDefaultWindowIsInstantQuery(t *testing.T) {
	now := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)
	resolver := &fakeResolver{verdict: domain.Verdict{Status: domain.StatusAvailable}}
	uc := NewUseCase(&fakeRoomRepo{room: testRoom()}, resolver, &fixedTimeProvider{now: now}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42})
	require.NoError(t, err)

	assert.True(t, resolver.gotQuery.IsInstant())
}

func TestExecuteInvalidRoomID(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeResolver{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteHalfOpenWindowRejected(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeRoomRepo{}, &fakeResolver{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42, Start: &start})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteStartAfterEndRejected(t *testing.T) {
	start := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	resolver := &fakeResolver{}
	uc := NewUseCase(&fakeRoomRepo{}, resolver, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42, Start: &start, End: &end})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.Zero(t, resolver.callCount)
}

func TestExecuteRoomNotFound(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{err: roomsRepo.ErrRoomNotFound}, &fakeResolver{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteStorageFailureIsInternal(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{err: errors.New("connection reset")}, &fakeResolver{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteMalformedEventMapped(t *testing.T) {
	resolver := &fakeResolver{err: availability.ErrMalformedEvent}
	uc := NewUseCase(&fakeRoomRepo{room: testRoom()}, resolver, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42})
	assert.ErrorIs(t, err, ErrRoomDataMalformed)
}

func TestExecuteResolverInvalidQueryMapped(t *testing.T) {
	resolver := &fakeResolver{err: availability.ErrInvalidQuery}
	uc := NewUseCase(&fakeRoomRepo{room: testRoom()}, resolver, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
