package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"usespace-backend/internal/domain"
)

func TestPropertyRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPropertyRepository(db)

	property := &domain.Property{
		Title:        "Studio",
		Description:  "Bright",
		Location:     "Centro",
		Dimensions:   "35m2",
		PropertyType: "studio",
		ValueCents:   150000,
		ImageURL:     "/v1/images/a.jpg",
		LandlordID:   "landlord-1",
		IsAvailable:  true,
	}

	mock.ExpectExec("INSERT INTO properties").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), property)
	assert.NoError(t, err)
	assert.NotEmpty(t, property.ID, "a missing id is generated")
	assert.NotEmpty(t, property.CreatedOn)
}

func TestPropertyRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPropertyRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE properties SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, &domain.Property{ID: "prop-1", Title: "Studio", ValueCents: 100000})
		assert.NoError(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE properties SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Property{ID: "gone"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPropertyRepository_ListByLandlord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPropertyRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "location", "dimensions", "property_type", "value_cents", "image_url", "landlord_id", "is_available", "created_on", "updated_on"}).
		AddRow("prop-2", "Loft", "Modern", "Centro", "50m2", "loft", 200000, "", "landlord-1", true, "2026-08-28T12:00:00Z", "2026-08-28T12:00:00Z").
		AddRow("prop-1", "Studio", "Bright", "Centro", "35m2", "studio", 150000, "", "landlord-1", true, "2026-08-27T12:00:00Z", "2026-08-27T12:00:00Z")
	mock.ExpectQuery("SELECT (.+) FROM properties WHERE landlord_id").
		WithArgs("landlord-1").
		WillReturnRows(rows)

	properties, err := repo.ListByLandlord(context.Background(), "landlord-1")
	assert.NoError(t, err)
	assert.Len(t, properties, 2)
	assert.Equal(t, "prop-2", properties[0].ID)
}

func TestPropertyRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPropertyRepository(db)

	mock.ExpectExec("DELETE FROM properties").
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "gone"), domain.ErrNotFound)
}

func TestPropertyRepository_DeleteKeepsAppointmentHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	properties := NewPropertyRepository(db)
	appointments := NewAppointmentRepository(db)
	ctx := context.Background()

	// Deleting a listing touches only the properties table; its
	// appointment rows stay behind with their snapshots intact.
	mock.ExpectExec("DELETE FROM properties").
		WithArgs("prop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{"id", "property_id", "property_title", "landlord_id", "tenant_id", "tenant_email", "date", "total_value_cents", "status", "created_on"}).
		AddRow("appt-1", "prop-1", "Studio", "landlord-1", "tenant-1", "tenant@example.com", "2026-09-01", 150000, "rejected", "2026-08-20T12:00:00Z")
	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE id").
		WithArgs("appt-1").
		WillReturnRows(rows)

	assert.NoError(t, properties.Delete(ctx, "prop-1"))

	a, err := appointments.GetByID(ctx, "appt-1")
	assert.NoError(t, err)
	assert.Equal(t, "prop-1", a.PropertyID)
	assert.Equal(t, "Studio", a.PropertyTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}
