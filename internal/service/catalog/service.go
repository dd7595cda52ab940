package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CRS-AvailabilityService/internal/availability"
	"github.com/m04kA/CRS-AvailabilityService/internal/domain"
	buildingsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/buildings"
	roomsRepo "github.com/m04kA/CRS-AvailabilityService/internal/infra/storage/rooms"
	"github.com/m04kA/CRS-AvailabilityService/internal/service/catalog/models"
	"github.com/m04kA/CRS-AvailabilityService/pkg/types"
)

// Service сервис каталога кампуса: корпуса, аудитории и их расписания
type Service struct {
	buildingRepo BuildingRepository
	roomRepo     RoomRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(buildingRepo BuildingRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		buildingRepo: buildingRepo,
		roomRepo:     roomRepo,
		logger:       logger,
	}
}

// ListBuildings возвращает список корпусов кампуса
func (s *Service) ListBuildings(ctx context.Context) (*models.BuildingListResponse, error) {
	buildings, err := s.buildingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBuildings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBuildings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBuildings: fetched %d buildings", len(buildings))
	return models.FromDomainBuildings(buildings), nil
}

// GetRoom возвращает аудиторию по идентификатору
func (s *Service) GetRoom(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoom: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// GetRoomSchedule возвращает дневное расписание аудитории:
// занимающие события выбранной даты, без дубликатов, по возрастанию
// времени начала
func (s *Service) GetRoomSchedule(ctx context.Context, roomID int64, date types.CivilDate) (*models.RoomScheduleResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomsRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomSchedule: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomSchedule: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - repository error: %v", ErrInternal, err)
	}

	// Фильтрация по дате и статусу - та же, что в движке доступности
	events, err := availability.EventsOnDate(room, date)
	if err != nil {
		s.logger.Warn("GetRoomSchedule: malformed events for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - malformed events: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomSchedule: room id=%d has %d events on %s", roomID, len(events), date)
	return models.ScheduleFromEvents(room, date, events), nil
}

// GetBuilding возвращает корпус со всеми аудиториями
func (s *Service) GetBuilding(ctx context.Context, code string) (*models.BuildingSummary, error) {
	building, err := s.buildingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, buildingsRepo.ErrBuildingNotFound) {
			s.logger.Warn("GetBuilding: building code=%s not found", code)
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("GetBuilding: repository error for building code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetBuilding - repository error: %v", ErrInternal, err)
	}

	summary := models.FromDomainBuildings([]*domain.Building{building})
	return &summary.Buildings[0], nil
}
