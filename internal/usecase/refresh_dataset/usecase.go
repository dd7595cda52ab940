package refresh_dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

const (
	resultUpdated = "updated"
	resultFailed  = "failed"
)

type UseCase struct {
	roomRepo     RoomRepository
	client       ScheduleClient
	txManager    TxManager
	timeProvider TimeProvider
	metrics      MetricsRecorder
	location     *time.Location
	maxWorkers   int
	logger       Logger
}

func NewUseCase(
	roomRepo RoomRepository,
	client ScheduleClient,
	txManager TxManager,
	timeProvider TimeProvider,
	metrics MetricsRecorder,
	location *time.Location,
	maxWorkers int,
	logger Logger,
) *UseCase {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &UseCase{
		roomRepo:     roomRepo,
		client:       client,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		location:     location,
		maxWorkers:   maxWorkers,
		logger:       logger,
	}
}

// Execute обновляет расписания всех аудиторий за указанный день.
// Аудитории обрабатываются пулом воркеров; сбой одной аудитории
// не прерывает обновление остальных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	started := uc.timeProvider.Now()

	// 1. Определяем день обновления: заданный или "сегодня" в поясе кампуса
	date := req.Date
	if date.IsZero() {
		date = types.CivilDateOf(started.In(uc.location))
	}

	// 2. Получаем список всех аудиторий каталога
	roomIDs, err := uc.roomRepo.ListIDs(ctx)
	if err != nil {
		uc.logger.Error("Execute - failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: Execute - failed to list rooms: %v", ErrInternal, err)
	}

	if len(roomIDs) == 0 {
		return nil, ErrNoRooms
	}

	uc.logger.Info("Execute - refreshing %d rooms for %s with %d workers", len(roomIDs), date, uc.maxWorkers)

	// 3. Раздаем аудитории пулу воркеров
	jobs := make(chan int64)
	var wg sync.WaitGroup
	var mu sync.Mutex
	updated, failed := 0, 0

	for i := 0; i < uc.maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for roomID := range jobs {
				if err := uc.refreshRoom(ctx, roomID, date); err != nil {
					uc.logger.Warn("Execute - room %d refresh failed: %v", roomID, err)
					uc.recordRoom(resultFailed)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				uc.recordRoom(resultUpdated)
				mu.Lock()
				updated++
				mu.Unlock()
			}
		}()
	}

	for _, roomID := range roomIDs {
		select {
		case jobs <- roomID:
		case <-ctx.Done():
			// Недоставленные аудитории считаем несостоявшимися
			mu.Lock()
			failed++
			mu.Unlock()
		}
	}
	close(jobs)
	wg.Wait()

	if uc.metrics != nil {
		uc.metrics.ObserveRefreshDuration(uc.timeProvider.Now().Sub(started))
	}

	uc.logger.Info("Execute - refresh for %s done: updated = %d, failed = %d", date, updated, failed)

	// 4. Формируем итоги
	return &Response{
		Date:    date,
		Total:   len(roomIDs),
		Updated: updated,
		Failed:  failed,
	}, nil
}

// refreshRoom загружает расписание одной аудитории и атомарно заменяет его
// в хранилище. Деградация внешнего сервиса по этой аудитории - ошибка
// только этой аудитории.
func (uc *UseCase) refreshRoom(ctx context.Context, roomID int64, date types.CivilDate) error {
	events, err := uc.client.RoomDayAvailabilityWithGracefulDegradation(ctx, roomID, date)
	if err != nil {
		return fmt.Errorf("refreshRoom - fetch schedule: %w", err)
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.roomRepo.ReplaceEvents(txCtx, roomID, events)
	})
	if err != nil {
		return fmt.Errorf("refreshRoom - replace events: %w", err)
	}

	return nil
}

func (uc *UseCase) recordRoom(result string) {
	if uc.metrics != nil {
		uc.metrics.IncRefreshRoom(result)
	}
}
