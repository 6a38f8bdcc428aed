package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/repository"

	"github.com/google/uuid"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, title, description, location, dimensions, property_type, value_cents, image_url, landlord_id, is_available, created_on, updated_on`

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedOn = now
	p.UpdatedOn = now

	query := `INSERT INTO properties (id, title, description, location, dimensions, property_type, value_cents, image_url, landlord_id, is_available, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.Location, p.Dimensions, p.PropertyType, p.ValueCents, p.ImageURL, p.LandlordID, p.IsAvailable, p.CreatedOn, p.UpdatedOn)
	return err
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	p := &domain.Property{}
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, &p.Location, &p.Dimensions, &p.PropertyType, &p.ValueCents, &p.ImageURL, &p.LandlordID, &p.IsAvailable, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	p.UpdatedOn = time.Now().UTC().Format(time.RFC3339)

	// landlord_id is deliberately absent: ownership is immutable.
	query := `UPDATE properties SET title=$1, description=$2, location=$3, dimensions=$4, property_type=$5, value_cents=$6, image_url=$7, is_available=$8, updated_on=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.Location, p.Dimensions, p.PropertyType, p.ValueCents, p.ImageURL, p.IsAvailable, p.UpdatedOn, p.ID)
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

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
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

func (r *propertyRepository) ListAll(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE landlord_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func scanProperties(rows *sql.Rows) ([]domain.Property, error) {
	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Location, &p.Dimensions, &p.PropertyType, &p.ValueCents, &p.ImageURL, &p.LandlordID, &p.IsAvailable, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
