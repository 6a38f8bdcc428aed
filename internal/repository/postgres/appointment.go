package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type appointmentRepository struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `id, property_id, property_title, landlord_id, tenant_id, tenant_email, date, total_value_cents, status, created_on`

// Create inserts the appointment only if the slot has no active booking.
// The conditional insert and the partial unique index on
// (property_id, date) WHERE status IN ('pending','confirmed') together
// close the check-then-act race: a losing racer sees zero rows affected
// or a unique violation, both mapped to ErrDateUnavailable.
func (r *appointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	query := `INSERT INTO appointments (id, property_id, property_title, landlord_id, tenant_id, tenant_email, date, total_value_cents, status, created_on)
	          SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	          WHERE NOT EXISTS (
	              SELECT 1 FROM appointments
	              WHERE property_id = $2 AND date = $7 AND status IN ('pending', 'confirmed'))`
	res, err := r.db.ExecContext(ctx, query, a.ID, a.PropertyID, a.PropertyTitle, a.LandlordID, a.TenantID, a.TenantEmail, a.Date, a.TotalValueCents, a.Status, a.CreatedOn)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrDateUnavailable
		}
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDateUnavailable
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	a := &domain.Appointment{}
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.PropertyID, &a.PropertyTitle, &a.LandlordID, &a.TenantID, &a.TenantEmail, &a.Date, &a.TotalValueCents, &a.Status, &a.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) CountActive(ctx context.Context, propertyID, date string) (int, error) {
	var count int
	query := `SELECT count(*) FROM appointments WHERE property_id = $1 AND date = $2 AND status IN ('pending', 'confirmed')`
	if err := r.db.QueryRowContext(ctx, query, propertyID, date).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *appointmentRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE landlord_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (r *appointmentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE tenant_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func scanAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.PropertyID, &a.PropertyTitle, &a.LandlordID, &a.TenantID, &a.TenantEmail, &a.Date, &a.TotalValueCents, &a.Status, &a.CreatedOn); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
