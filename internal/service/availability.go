package service

import (
	"context"

	"usespace-backend/internal/logger"
	"usespace-backend/internal/repository"
)

type availabilityService struct {
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityService(appointmentRepo repository.AppointmentRepository) AvailabilityService {
	return &availabilityService{appointmentRepo: appointmentRepo}
}

// IsAvailable fails closed: a storage error reports the date as taken,
// so the worst outcome of an outage is a retried booking, never a
// double booking.
func (s *availabilityService) IsAvailable(ctx context.Context, propertyID, date string) bool {
	count, err := s.appointmentRepo.CountActive(ctx, propertyID, date)
	if err != nil {
		logger.ErrorContext(ctx, "availability check failed, reporting unavailable",
			"property_id", propertyID, "date", date, "error", err)
		return false
	}
	return count == 0
}
