// Package firestore implements the repository interfaces on Cloud
// Firestore. Documents keep the camelCase field names the mobile
// clients already use for the slot fields (propertyId, date, status),
// so availability queries from both sides see the same bookings. Money
// and timestamps use this backend's own formats (integer cents,
// RFC3339 strings).
package firestore

import (
	"cloud.google.com/go/firestore"

	"usespace-backend/internal/repository"
)

const (
	usersCollection        = "users"
	propertiesCollection   = "properties"
	appointmentsCollection = "appointments"
)

func NewStore(client *firestore.Client) *repository.Store {
	return &repository.Store{
		Users:        &userRepository{client: client},
		Properties:   &propertyRepository{client: client},
		Appointments: &appointmentRepository{client: client},
	}
}
