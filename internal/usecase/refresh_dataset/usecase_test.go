package refresh_dataset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

type fakeRoomRepo struct {
	mu       sync.Mutex
	ids      []int64
	listErr  error
	replaced map[int64][]domain.Event
	failFor  map[int64]error
}

func (f *fakeRoomRepo) ListIDs(_ context.Context) ([]int64, error) {
	return f.ids, f.listErr
}

func (f *fakeRoomRepo) ReplaceEvents(_ context.Context, roomID int64, events []domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[roomID]; ok {
		return err
	}
	if f.replaced == nil {
		f.replaced = make(map[int64][]domain.Event)
	}
	f.replaced[roomID] = events
	return nil
}

type fakeScheduleClient struct {
	mu      sync.Mutex
	events  map[int64][]domain.Event
	failFor map[int64]error
	gotDate types.CivilDate
}

func (f *fakeScheduleClient) RoomDayAvailabilityWithGracefulDegradation(_ context.Context, roomID int64, date types.CivilDate) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotDate = date
	if err, ok := f.failFor[roomID]; ok {
		return nil, err
	}
	return f.events[roomID], nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(repo *fakeRoomRepo, client *fakeScheduleClient, workers int) *UseCase {
	now := time.Date(2024, 3, 4, 6, 0, 0, 0, time.UTC)
	return NewUseCase(repo, client, passthroughTxManager{}, &fixedTimeProvider{now: now}, nil, time.UTC, workers, nopLogger{})
}

func TestExecuteRefreshesAllRooms(t *testing.T) {
	date := types.NewCivilDate(2024, 3, 4)
	event := domain.Event{Date: "2024-03-04", TimeStart: 13.0, TimeEnd: 14.5, EventName: "MATH140", Status: domain.StatusClassMeeting}

	repo := &fakeRoomRepo{ids: []int64{1, 2, 3}}
	client := &fakeScheduleClient{events: map[int64][]domain.Event{1: {event}}}
	uc := newTestUseCase(repo, client, 2)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, date, resp.Date)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 3, resp.Updated)
	assert.Zero(t, resp.Failed)
	assert.Equal(t, []domain.Event{event}, repo.replaced[1])
	assert.Empty(t, repo.replaced[2])
}

func TestExecuteZeroDateMeansToday(t *testing.T) {
	repo := &fakeRoomRepo{ids: []int64{1}}
	client := &fakeScheduleClient{}
	uc := newTestUseCase(repo, client, 1)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, types.NewCivilDate(2024, 3, 4), resp.Date)
	assert.Equal(t, types.NewCivilDate(2024, 3, 4), client.gotDate)
}

func TestExecuteFailedRoomDoesNotStopOthers(t *testing.T) {
	repo := &fakeRoomRepo{ids: []int64{1, 2, 3}}
	client := &fakeScheduleClient{failFor: map[int64]error{2: errors.New("feed returned 500")}}
	uc := newTestUseCase(repo, client, 2)

	resp, err := uc.Execute(context.Background(), &Request{Date: types.NewCivilDate(2024, 3, 4)})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Updated)
	assert.Equal(t, 1, resp.Failed)
	assert.Contains(t, repo.replaced, int64(1))
	assert.Contains(t, repo.replaced, int64(3))
	assert.NotContains(t, repo.replaced, int64(2))
}

func TestExecuteStorageFailureCountsAsFailed(t *testing.T) {
	repo := &fakeRoomRepo{ids: []int64{1, 2}, failFor: map[int64]error{1: errors.New("serialization failure")}}
	client := &fakeScheduleClient{}
	uc := newTestUseCase(repo, client, 1)

	resp, err := uc.Execute(context.Background(), &Request{Date: types.NewCivilDate(2024, 3, 4)})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Failed)
}

func TestExecuteNoRooms(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{}, &fakeScheduleClient{}, 1)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrNoRooms)
}

func TestExecuteListFailureIsInternal(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{listErr: errors.New("connection reset")}, &fakeScheduleClient{}, 1)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
