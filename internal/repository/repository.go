package repository

import (
	"context"
	"usespace-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	// Delete removes the record immediately; there is no soft-delete.
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Property, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error)
}

type AppointmentRepository interface {
	// Create inserts the appointment if and only if no pending or confirmed
	// appointment exists for the same (propertyID, date). Implementations
	// must make this check-and-insert atomic and return
	// domain.ErrDateUnavailable when the slot is taken.
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	// CountActive returns the number of pending or confirmed appointments
	// for the given property and date.
	CountActive(ctx context.Context, propertyID, date string) (int, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]domain.Appointment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
}

// Store aggregates the repositories of one storage backend.
type Store struct {
	Users        UserRepository
	Properties   PropertyRepository
	Appointments AppointmentRepository
}
