package resolve_building_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRS-AvailabilityService/internal/availability"
	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	buildingsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/buildings"
)

type fakeBuildingRepo struct {
	building *domain.Building
	err      error
}

func (f *fakeBuildingRepo) GetByCode(_ context.Context, _ string) (*domain.Building, error) {
	return f.building, f.err
}

type fakeAggregator struct {
	verdict  domain.Verdict
	err      error
	gotQuery domain.Query
}

func (f *fakeAggregator) Resolve(_ *domain.Building, query domain.Query) (domain.Verdict, error) {
	f.gotQuery = query
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

func testBuilding() *domain.Building {
	return &domain.Building{
		Code: "MTH",
		Name: "Mathematics Building",
		Rooms: []domain.Room{
			{ID: 1, Name: "MTH 0102"},
			{ID: 2, Name: "MTH 0103"},
		},
	}
}

func TestExecuteExplicitWindow(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	agg := &fakeAggregator{verdict: domain.Verdict{Status: domain.StatusAvailable}}
	uc := NewUseCase(&fakeBuildingRepo{building: testBuilding()}, agg, &fixedTimeProvider{}, 0, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BuildingCode: "MTH", Start: &start, End: &end})
	require.NoError(t, err)

	assert.Equal(t, "MTH", resp.BuildingCode)
	assert.Equal(t, "Mathematics Building", resp.BuildingName)
	assert.Equal(t, domain.StatusAvailable, resp.Status)
	assert.Equal(t, 2, resp.RoomCount)
	assert.Equal(t, start, agg.gotQuery.Start)
	assert.Equal(t, end, agg.gotQuery.End)
}

func TestExecuteDefaultWindowFromNow(t *testing.T) {
	now := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)
	agg := &fakeAggregator{verdict: domain.Verdict{Status: domain.StatusClosed}}
	uc := NewUseCase(&fakeBuildingRepo{building: testBuilding()}, agg, &fixedTimeProvider{now: now}, 30*time.Minute, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BuildingCode: "MTH"})
	require.NoError(t, err)

	assert.Equal(t, now, agg.gotQuery.Start)
	assert.Equal(t, now.Add(30*time.Minute), agg.gotQuery.End)
	assert.Equal(t, domain.StatusClosed, resp.Status)
}

func TestExecuteEmptyCodeRejected(t *testing.T) {
	uc := NewUseCase(&fakeBuildingRepo{}, &fakeAggregator{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BuildingCode: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteHalfOpenWindowRejected(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeBuildingRepo{}, &fakeAggregator{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BuildingCode: "MTH", End: &start})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteStartAfterEndRejected(t *testing.T) {
	start := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	uc := NewUseCase(&fakeBuildingRepo{}, &fakeAggregator{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BuildingCode: "MTH", Start: &start, End: &end})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecuteBuildingNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBuildingRepo{err: buildingsRepo.ErrBuildingNotFound}, &fakeAggregator{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BuildingCode: "XYZ"})
	assert.ErrorIs(t, err, ErrBuildingNotFound)
}

func TestExecuteStorageFailureIsInternal(t *testing.T) {
	uc := NewUseCase(&fakeBuildingRepo{err: errors.New("connection reset")}, &fakeAggregator{}, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BuildingCode: "MTH"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteAggregatorInvalidQueryMapped(t *testing.T) {
	agg := &fakeAggregator{err: availability.ErrInvalidQuery}
	uc := NewUseCase(&fakeBuildingRepo{building: testBuilding()}, agg, &fixedTimeProvider{}, 0, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BuildingCode: "MTH"})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
