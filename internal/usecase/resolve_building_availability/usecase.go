package resolve_building_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/availability"
	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	buildingsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/buildings"
)

type UseCase struct {
	buildingRepo  BuildingRepository
	aggregator    Aggregator
	timeProvider  TimeProvider
	defaultWindow time.Duration
	logger        Logger
}

func NewUseCase(buildingRepo BuildingRepository, aggregator Aggregator, timeProvider TimeProvider, defaultWindow time.Duration, logger Logger) *UseCase {
	return &UseCase{
		buildingRepo:  buildingRepo,
		aggregator:    aggregator,
		timeProvider:  timeProvider,
		defaultWindow: defaultWindow,
		logger:        logger,
	}
}

// Execute рассчитывает агрегированный вердикт доступности по корпусу.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Определяем окно запроса
	query := uc.resolveWindow(req)

	// 3. Получаем корпус со всеми аудиториями и расписаниями
	building, err := uc.buildingRepo.GetByCode(ctx, req.BuildingCode)
	if err != nil {
		if errors.Is(err, buildingsRepo.ErrBuildingNotFound) {
			return nil, fmt.Errorf("%w: code = %s", ErrBuildingNotFound, req.BuildingCode)
		}
		uc.logger.Error("Execute - failed to load building %s: %v", req.BuildingCode, err)
		return nil, fmt.Errorf("%w: Execute - failed to load building: %v", ErrInternal, err)
	}

	// 4. Агрегируем вердикты по аудиториям.
	// Аудитории с некорректными данными агрегатор пропускает сам.
	verdict, err := uc.aggregator.Resolve(building, query)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidQuery) {
			return nil, ErrInvalidTimeRange
		}
		uc.logger.Error("Execute - aggregator failed for building %s: %v", req.BuildingCode, err)
		return nil, fmt.Errorf("%w: Execute - aggregator failed: %v", ErrInternal, err)
	}

	// 5. Формируем ответ
	return &Response{
		BuildingCode: building.Code,
		BuildingName: building.Name,
		Status:       verdict.Status,
		RoomCount:    len(building.Rooms),
		WindowStart:  query.Start,
		WindowEnd:    query.End,
	}, nil
}

// resolveWindow применяет политику дефолтного окна
func (uc *UseCase) resolveWindow(req *Request) domain.Query {
	if req.Start != nil {
		return domain.Query{Start: *req.Start, End: *req.End}
	}

	now := uc.timeProvider.Now()
	return domain.Query{Start: now, End: now.Add(uc.defaultWindow)}
}
