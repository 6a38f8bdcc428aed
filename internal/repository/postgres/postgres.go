package postgres

import (
	"database/sql"

	"usespace-backend/internal/repository"

	_ "github.com/lib/pq"
)

func NewStore(db *sql.DB) *repository.Store {
	return &repository.Store{
		Users:        NewUserRepository(db),
		Properties:   NewPropertyRepository(db),
		Appointments: NewAppointmentRepository(db),
	}
}
