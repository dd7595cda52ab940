package resolve_room_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CRS-AvailabilityService/internal/availability"
	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	roomsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/rooms"
)

type UseCase struct {
	roomRepo      RoomRepository
	resolver      Resolver
	timeProvider  TimeProvider
	defaultWindow time.Duration
	logger        Logger
}

func NewUseCase(roomRepo RoomRepository, resolver Resolver, timeProvider TimeProvider, defaultWindow time.Duration, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:      roomRepo,
		resolver:      resolver,
		timeProvider:  timeProvider,
		defaultWindow: defaultWindow,
		logger:        logger,
	}
}

// Execute рассчитывает вердикт доступности аудитории для временного окна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Определяем окно запроса: заданное клиентом или дефолтное от текущего момента
	query := uc.resolveWindow(req)

	// 3. Получаем аудиторию вместе с событиями
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			return nil, fmt.Errorf("%w: roomID = %d", ErrRoomNotFound, req.RoomID)
		}
		uc.logger.Error("Execute - failed to load room %d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Execute - failed to load room: %v", ErrInternal, err)
	}

	// 4. Считаем вердикт движком доступности
	verdict, err := uc.resolver.Resolve(room, query)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidQuery):
			return nil, ErrInvalidTimeRange
		case errors.Is(err, availability.ErrMalformedEvent):
			uc.logger.Warn("Execute - malformed event data for room %d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: roomID = %d", ErrRoomDataMalformed, req.RoomID)
		default:
			uc.logger.Error("Execute - resolver failed for room %d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: Execute - resolver failed: %v", ErrInternal, err)
		}
	}

	// 5. Формируем ответ
	return &Response{
		RoomID:                  room.ID,
		RoomName:                room.Name,
		Status:                  verdict.Status,
		TimeUntilNextTransition: verdict.TimeUntilNextTransition,
		WindowStart:             query.Start,
		WindowEnd:               query.End,
	}, nil
}

// resolveWindow применяет политику дефолтного окна: если клиент не задал
// границы, берем [now, now + defaultWindow). При нулевом дефолтном окне
// запрос становится мгновенным (start == end).
func (uc *UseCase) resolveWindow(req *Request) domain.Query {
	if req.Start != nil {
		return domain.Query{Start: *req.Start, End: *req.End}
	}

	now := uc.timeProvider.Now()
	return domain.Query{Start: now, End: now.Add(uc.defaultWindow)}
}
