package trips

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opentrip/OTS-Backend/internal/domain"
	tripRepo "github.com/opentrip/OTS-Backend/internal/infra/storage/trip"
	"github.com/opentrip/OTS-Backend/internal/service/trips/models"
)

// Service сервис для работы с каталогом поездок
type Service struct {
	tripRepo  TripRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса поездок
func NewService(tripRepo TripRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		tripRepo:  tripRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает новую поездку
func (s *Service) Create(ctx context.Context, req *models.CreateTripRequest) (*models.TripResponse, error) {
	s.logger.Info("Create: creating trip name=%s by user=%s", req.Name, req.UserID)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty trip name from user=%s", req.UserID)
		return nil, fmt.Errorf("%w: trip name is required", ErrInvalidInput)
	}

	trip, err := domain.NewTrip(uuid.NewString(), req.UserID, req.Name, req.Capacity)
	if err != nil {
		s.logger.Warn("Create: invalid capacity=%d from user=%s", req.Capacity, req.UserID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.tripRepo.Create(ctx, trip)
	if err != nil {
		s.logger.Error("Create: repository error for trip name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created trip id=%s", created.ID)
	return models.FromDomainTrip(created), nil
}

// GetByID получает поездку по ID со всеми расписаниями, маршрутом и гидом
func (s *Service) GetByID(ctx context.Context, id string) (*models.TripResponse, error) {
	s.logger.Info("GetByID: fetching trip id=%s", id)

	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			s.logger.Warn("GetByID: trip id=%s not found", id)
			return nil, ErrTripNotFound
		}
		s.logger.Error("GetByID: repository error for trip id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTrip(trip), nil
}

// List получает список всех поездок
func (s *Service) List(ctx context.Context) (*models.TripListResponse, error) {
	s.logger.Info("List: fetching all trips")

	trips, err := s.tripRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d trips", len(trips))
	return models.FromDomainTripList(trips), nil
}

// AddSchedule добавляет расписание к поездке
// Доступно только владельцу; расписания не должны пересекаться
func (s *Service) AddSchedule(ctx context.Context, tripID string, req *models.AddScheduleRequest) (*models.TripResponse, error) {
	s.logger.Info("AddSchedule: adding schedule to trip id=%s by user=%s", tripID, req.UserID)

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("AddSchedule: invalid dates for trip id=%s: %v", tripID, err)
		return nil, err
	}

	var updated *domain.Trip
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.getOwnedTrip(ctx, tripID, req.UserID, "AddSchedule")
		if err != nil {
			return err
		}

		// Доменная проверка пересечения расписаний
		if err := trip.AddSchedule(startDate, endDate, req.Location); err != nil {
			s.logger.Warn("AddSchedule: domain validation failed for trip id=%s: %v", tripID, err)
			return mapScheduleError(err)
		}

		schedule := trip.Schedules[len(trip.Schedules)-1]
		if err := s.tripRepo.AddSchedule(ctx, tripID, schedule); err != nil {
			s.logger.Error("AddSchedule: repository error for trip id=%s: %v", tripID, err)
			return fmt.Errorf("%w: AddSchedule - repository error: %v", ErrInternal, err)
		}

		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddSchedule: successfully added schedule to trip id=%s", tripID)
	return models.FromDomainTrip(updated), nil
}

// AssignGuide назначает гида на поездку
// Доступно только владельцу; гид должен быть свободен на все расписания поездки
func (s *Service) AssignGuide(ctx context.Context, tripID string, req *models.AssignGuideRequest) (*models.TripResponse, error) {
	s.logger.Info("AssignGuide: assigning guide name=%s to trip id=%s by user=%s", req.Name, tripID, req.UserID)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("AssignGuide: empty guide name for trip id=%s", tripID)
		return nil, fmt.Errorf("%w: guide name is required", ErrInvalidInput)
	}

	var updated *domain.Trip
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.getOwnedTrip(ctx, tripID, req.UserID, "AssignGuide")
		if err != nil {
			return err
		}

		guide := domain.NewGuide(uuid.NewString(), req.Name, req.Contact, req.Language)
		if err := trip.AssignGuide(guide); err != nil {
			s.logger.Warn("AssignGuide: domain validation failed for trip id=%s: %v", tripID, err)
			return fmt.Errorf("%w: %v", ErrGuideConflict, err)
		}

		if err := s.tripRepo.AssignGuide(ctx, tripID, guide); err != nil {
			s.logger.Error("AssignGuide: repository error for trip id=%s: %v", tripID, err)
			return fmt.Errorf("%w: AssignGuide - repository error: %v", ErrInternal, err)
		}

		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AssignGuide: successfully assigned guide to trip id=%s", tripID)
	return models.FromDomainTrip(updated), nil
}

// UpdateCapacity изменяет вместимость поездки
// Вместимость не может опуститься ниже уже сделанных бронирований
func (s *Service) UpdateCapacity(ctx context.Context, tripID string, req *models.UpdateCapacityRequest) (*models.TripResponse, error) {
	s.logger.Info("UpdateCapacity: updating trip id=%s to capacity=%d by user=%s", tripID, req.Capacity, req.UserID)

	var updated *domain.Trip
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.getOwnedTrip(ctx, tripID, req.UserID, "UpdateCapacity")
		if err != nil {
			return err
		}

		if err := trip.UpdateCapacity(req.Capacity); err != nil {
			s.logger.Warn("UpdateCapacity: domain validation failed for trip id=%s: %v", tripID, err)
			if errors.Is(err, domain.ErrCapacityBelowBookings) {
				return fmt.Errorf("%w: %v", ErrCapacityConflict, err)
			}
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if err := s.tripRepo.UpdateCapacity(ctx, tripID, req.Capacity); err != nil {
			s.logger.Error("UpdateCapacity: repository error for trip id=%s: %v", tripID, err)
			return fmt.Errorf("%w: UpdateCapacity - repository error: %v", ErrInternal, err)
		}

		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateCapacity: successfully updated trip id=%s to capacity=%d", tripID, req.Capacity)
	return models.FromDomainTrip(updated), nil
}

// UpdateItinerary заменяет маршрут поездки
func (s *Service) UpdateItinerary(ctx context.Context, tripID string, req *models.UpdateItineraryRequest) (*models.TripResponse, error) {
	s.logger.Info("UpdateItinerary: updating itinerary of trip id=%s by user=%s", tripID, req.UserID)

	var updated *domain.Trip
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		trip, err := s.getOwnedTrip(ctx, tripID, req.UserID, "UpdateItinerary")
		if err != nil {
			return err
		}

		if err := trip.UpdateItinerary(req.Destinations, req.Description); err != nil {
			s.logger.Warn("UpdateItinerary: domain validation failed for trip id=%s: %v", tripID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if err := s.tripRepo.UpdateItinerary(ctx, tripID, trip.Itinerary); err != nil {
			s.logger.Error("UpdateItinerary: repository error for trip id=%s: %v", tripID, err)
			return fmt.Errorf("%w: UpdateItinerary - repository error: %v", ErrInternal, err)
		}

		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateItinerary: successfully updated itinerary of trip id=%s", tripID)
	return models.FromDomainTrip(updated), nil
}

// Вспомогательные методы

// getOwnedTrip получает поездку и проверяет, что пользователь является её владельцем
func (s *Service) getOwnedTrip(ctx context.Context, tripID, userID, method string) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			s.logger.Warn("%s: trip id=%s not found", method, tripID)
			return nil, ErrTripNotFound
		}
		s.logger.Error("%s: repository error for trip id=%s: %v", method, tripID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if trip.OwnerID != userID {
		s.logger.Warn("%s: user=%s is not the owner of trip id=%s", method, userID, tripID)
		return nil, ErrAccessDenied
	}

	return trip, nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(domain.DateFormat, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid startDate, expected YYYY-MM-DD", ErrInvalidInput)
	}
	endDate, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid endDate, expected YYYY-MM-DD", ErrInvalidInput)
	}
	return startDate, endDate, nil
}

func mapScheduleError(err error) error {
	if errors.Is(err, domain.ErrScheduleOverlap) {
		return fmt.Errorf("%w: %v", ErrScheduleConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
