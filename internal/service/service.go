package service

import (
	"context"

	"usespace-backend/internal/domain"
)

// PropertyInput carries the client-supplied fields for creating or
// updating a listing. Value arrives as locale-formatted text
// ("1500,00") and is normalized to cents before storage.
type PropertyInput struct {
	Title        string
	Description  string
	Location     string
	Dimensions   string
	PropertyType string
	Value        string
	ImageURL     string
	IsAvailable  bool
}

type AuthService interface {
	// RegisterLocal creates an email+password account. Only tenant and
	// landlord roles are open for self-registration.
	RegisterLocal(ctx context.Context, fullName, email, password string, role domain.Role) (*domain.User, *TokenPair, error)
	LoginLocal(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	// RegisterWithIDToken verifies a provider ID token and creates the
	// profile for its subject.
	RegisterWithIDToken(ctx context.Context, idToken, fullName string, role domain.Role) (*domain.User, *TokenPair, error)
	// LoginWithIDToken exchanges a verified provider ID token for
	// first-party tokens. A missing profile falls back to the configured
	// default role instead of failing.
	LoginWithIDToken(ctx context.Context, idToken string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// ResolvePrincipal loads the caller behind a validated access token.
	ResolvePrincipal(ctx context.Context, accessToken string) (*domain.Principal, error)
}

type UserService interface {
	GetProfile(ctx context.Context, caller domain.Principal) (*domain.User, error)
	// ListUsers is master-only.
	ListUsers(ctx context.Context, caller domain.Principal) ([]domain.User, error)
}

type CatalogService interface {
	ListAll(ctx context.Context) ([]domain.Property, error)
	ListMine(ctx context.Context, caller domain.Principal) ([]domain.Property, error)
	// Search matches the query case-insensitively against title,
	// location and property type, OR-combined.
	Search(ctx context.Context, query string) ([]domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Create(ctx context.Context, caller domain.Principal, input PropertyInput) (*domain.Property, error)
	Update(ctx context.Context, caller domain.Principal, id string, input PropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, caller domain.Principal, id string) error
}

type AvailabilityService interface {
	// IsAvailable reports whether the property has no pending or
	// confirmed appointment on the given date. Any storage failure
	// reports unavailable rather than risking a double booking.
	IsAvailable(ctx context.Context, propertyID, date string) bool
}

type AppointmentService interface {
	// RequestBooking creates a pending appointment for the caller, who
	// must be a tenant. The property's title and daily price are
	// snapshotted onto the appointment.
	RequestBooking(ctx context.Context, caller domain.Principal, propertyID, date string) (*domain.Appointment, error)
	// SetStatus moves an appointment to any valid status. Landlords may
	// only touch appointments on their own properties; masters may touch
	// any.
	SetStatus(ctx context.Context, caller domain.Principal, appointmentID string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Get(ctx context.Context, caller domain.Principal, appointmentID string) (*domain.Appointment, error)
	ListMine(ctx context.Context, caller domain.Principal) ([]domain.Appointment, error)
	// ListAll is master-only and orders pending appointments first.
	ListAll(ctx context.Context, caller domain.Principal) ([]domain.Appointment, error)
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, landlordEmail, tenantEmail, propertyTitle, date string) error
	SendBookingStatusNotification(ctx context.Context, tenantEmail, propertyTitle, date string, status domain.AppointmentStatus) error
	SendPendingRequestsReminder(ctx context.Context, landlordEmail string, pendingCount int) error
}
