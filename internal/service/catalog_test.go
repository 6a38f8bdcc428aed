package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"usespace-backend/internal/domain"
)

var (
	landlord = domain.Principal{ID: "landlord-1", Email: "landlord@example.com", Role: domain.RoleLandlord}
	tenant   = domain.Principal{ID: "tenant-1", Email: "tenant@example.com", Role: domain.RoleTenant}
	master   = domain.Principal{ID: "master-1", Email: "master@example.com", Role: domain.RoleMaster}
)

func validInput() PropertyInput {
	return PropertyInput{
		Title:        "Studio downtown",
		Description:  "Bright studio near the station",
		Location:     "Centro",
		Dimensions:   "35m2",
		PropertyType: "studio",
		Value:        "1500,00",
		ImageURL:     "/v1/images/a.jpg",
		IsAvailable:  true,
	}
}

func TestCatalogCreate_Success(t *testing.T) {
	repo := new(MockPropertyRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.LandlordID == landlord.ID && p.ValueCents == 150000
	})).Return(nil)

	svc := NewCatalogService(repo)
	property, err := svc.Create(context.Background(), landlord, validInput())
	assert.NoError(t, err)
	assert.Equal(t, "Studio downtown", property.Title)
	assert.Equal(t, int64(150000), property.ValueCents)
	repo.AssertExpectations(t)
}

func TestCatalogCreate_TenantForbidden(t *testing.T) {
	svc := NewCatalogService(new(MockPropertyRepo))
	_, err := svc.Create(context.Background(), tenant, validInput())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCatalogCreate_Validation(t *testing.T) {
	svc := NewCatalogService(new(MockPropertyRepo))

	t.Run("BlankField", func(t *testing.T) {
		input := validInput()
		input.Location = "   "
		_, err := svc.Create(context.Background(), landlord, input)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("BadPrices", func(t *testing.T) {
		for _, value := range []string{"0", "0,00", "-5,00", "abc"} {
			input := validInput()
			input.Value = value
			_, err := svc.Create(context.Background(), landlord, input)
			assert.True(t, domain.IsValidation(err), "expected validation error for value %q", value)
		}
	})
}

func TestCatalogUpdate_OwnershipImmutable(t *testing.T) {
	existing := &domain.Property{ID: "prop-1", LandlordID: landlord.ID, ValueCents: 100000}

	repo := new(MockPropertyRepo)
	repo.On("GetByID", mock.Anything, "prop-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.LandlordID == landlord.ID
	})).Return(nil)

	svc := NewCatalogService(repo)
	property, err := svc.Update(context.Background(), landlord, "prop-1", validInput())
	assert.NoError(t, err)
	assert.Equal(t, landlord.ID, property.LandlordID)
	repo.AssertExpectations(t)
}

func TestCatalogUpdate_NotOwner(t *testing.T) {
	existing := &domain.Property{ID: "prop-1", LandlordID: "someone-else"}

	repo := new(MockPropertyRepo)
	repo.On("GetByID", mock.Anything, "prop-1").Return(existing, nil)

	svc := NewCatalogService(repo)
	_, err := svc.Update(context.Background(), landlord, "prop-1", validInput())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCatalogUpdate_MasterOverride(t *testing.T) {
	existing := &domain.Property{ID: "prop-1", LandlordID: "someone-else"}

	repo := new(MockPropertyRepo)
	repo.On("GetByID", mock.Anything, "prop-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewCatalogService(repo)
	_, err := svc.Update(context.Background(), master, "prop-1", validInput())
	assert.NoError(t, err)
}

func TestCatalogDelete_NotOwner(t *testing.T) {
	existing := &domain.Property{ID: "prop-1", LandlordID: "someone-else"}

	repo := new(MockPropertyRepo)
	repo.On("GetByID", mock.Anything, "prop-1").Return(existing, nil)

	svc := NewCatalogService(repo)
	err := svc.Delete(context.Background(), landlord, "prop-1")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestCatalogSearch(t *testing.T) {
	all := []domain.Property{
		{ID: "1", Title: "Beach house", Description: "Sea view", Location: "Santos", PropertyType: "house"},
		{ID: "2", Title: "Downtown loft", Description: "Modern", Location: "Centro", PropertyType: "loft"},
		{ID: "3", Title: "Garage", Description: "Storage space near the beach", Location: "Centro", PropertyType: "garage"},
	}

	repo := new(MockPropertyRepo)
	repo.On("ListAll", mock.Anything).Return(all, nil)
	svc := NewCatalogService(repo)

	t.Run("MatchesAnyField", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "beach")
		assert.NoError(t, err)
		// Title of 1 matches; the description of 3 must not, search only
		// covers title, location and type.
		assert.Len(t, results, 1)
		assert.Equal(t, "1", results[0].ID)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "CENTRO")
		assert.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("EmptyQueryReturnsAll", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "  ")
		assert.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("NoMatch", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "penthouse")
		assert.NoError(t, err)
		assert.Empty(t, results)
	})
}
