package service

import (
	"context"
	"sort"
	"time"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/logger"
	"usespace-backend/internal/repository"
	"usespace-backend/internal/utils"
)

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	propertyRepo    repository.PropertyRepository
	userRepo        repository.UserRepository
	emailSvc        EmailService
}

func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		emailSvc:        emailSvc,
	}
}

func (s *appointmentService) RequestBooking(ctx context.Context, caller domain.Principal, propertyID, date string) (*domain.Appointment, error) {
	if caller.Role != domain.RoleTenant {
		return nil, domain.ErrPermissionDenied
	}
	if err := utils.ValidateBookingDate(date, time.Now().UTC()); err != nil {
		return nil, domain.NewValidationError("date", err.Error())
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.LandlordID == caller.ID {
		return nil, domain.ErrPermissionDenied
	}

	appointment := &domain.Appointment{
		PropertyID:      property.ID,
		PropertyTitle:   property.Title,
		LandlordID:      property.LandlordID,
		TenantID:        caller.ID,
		TenantEmail:     caller.Email,
		Date:            date,
		TotalValueCents: property.ValueCents,
		Status:          domain.AppointmentStatusPending,
	}
	// The repository refuses the insert when the slot already has an
	// active appointment, so there is no separate availability check to
	// race against.
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if landlord, err := s.userRepo.GetByID(ctx, property.LandlordID); err == nil {
		if err := s.emailSvc.SendBookingRequestNotification(ctx, landlord.Email, caller.Email, property.Title, date); err != nil {
			logger.WarnContext(ctx, "booking request notification failed",
				"appointment_id", appointment.ID, "error", err)
		}
	}

	return appointment, nil
}

func (s *appointmentService) SetStatus(ctx context.Context, caller domain.Principal, appointmentID string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	switch caller.Role {
	case domain.RoleMaster:
		// Masters may move any appointment to any status.
	case domain.RoleLandlord:
		if appointment.LandlordID != caller.ID {
			return nil, domain.ErrPermissionDenied
		}
	default:
		return nil, domain.ErrPermissionDenied
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, err
	}
	appointment.Status = status

	if err := s.emailSvc.SendBookingStatusNotification(ctx, appointment.TenantEmail, appointment.PropertyTitle, appointment.Date, status); err != nil {
		logger.WarnContext(ctx, "booking status notification failed",
			"appointment_id", appointment.ID, "error", err)
	}

	return appointment, nil
}

func (s *appointmentService) Get(ctx context.Context, caller domain.Principal, appointmentID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.TenantID != caller.ID && appointment.LandlordID != caller.ID && caller.Role != domain.RoleMaster {
		return nil, domain.ErrPermissionDenied
	}
	return appointment, nil
}

// ListMine returns the appointments the caller participates in: their
// bookings for tenants, requests on their properties for landlords.
func (s *appointmentService) ListMine(ctx context.Context, caller domain.Principal) ([]domain.Appointment, error) {
	switch caller.Role {
	case domain.RoleLandlord:
		return s.appointmentRepo.ListByLandlord(ctx, caller.ID)
	default:
		return s.appointmentRepo.ListByTenant(ctx, caller.ID)
	}
}

func (s *appointmentService) ListAll(ctx context.Context, caller domain.Principal) ([]domain.Appointment, error) {
	if caller.Role != domain.RoleMaster {
		return nil, domain.ErrPermissionDenied
	}
	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	// Pending entries surface first so the oversight view shows what
	// needs attention; within each group the newest-first repo order is
	// preserved.
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Status == domain.AppointmentStatusPending &&
			appointments[j].Status != domain.AppointmentStatusPending
	})
	return appointments, nil
}
