package service

import (
	"context"
	"strings"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/repository"
	"usespace-backend/internal/utils"
)

type catalogService struct {
	propertyRepo repository.PropertyRepository
}

func NewCatalogService(propertyRepo repository.PropertyRepository) CatalogService {
	return &catalogService{propertyRepo: propertyRepo}
}

func (s *catalogService) ListAll(ctx context.Context) ([]domain.Property, error) {
	return s.propertyRepo.ListAll(ctx)
}

func (s *catalogService) ListMine(ctx context.Context, caller domain.Principal) ([]domain.Property, error) {
	return s.propertyRepo.ListByLandlord(ctx, caller.ID)
}

func (s *catalogService) Search(ctx context.Context, query string) ([]domain.Property, error) {
	properties, err := s.propertyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return properties, nil
	}
	var matched []domain.Property
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Location), q) ||
			strings.Contains(strings.ToLower(p.PropertyType), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *catalogService) Create(ctx context.Context, caller domain.Principal, input PropertyInput) (*domain.Property, error) {
	if caller.Role != domain.RoleLandlord && caller.Role != domain.RoleMaster {
		return nil, domain.ErrPermissionDenied
	}
	valueCents, err := validatePropertyInput(input)
	if err != nil {
		return nil, err
	}

	property := &domain.Property{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Location:     strings.TrimSpace(input.Location),
		Dimensions:   strings.TrimSpace(input.Dimensions),
		PropertyType: strings.TrimSpace(input.PropertyType),
		ValueCents:   valueCents,
		ImageURL:     strings.TrimSpace(input.ImageURL),
		LandlordID:   caller.ID,
		IsAvailable:  input.IsAvailable,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *catalogService) Update(ctx context.Context, caller domain.Principal, id string, input PropertyInput) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.LandlordID != caller.ID && caller.Role != domain.RoleMaster {
		return nil, domain.ErrPermissionDenied
	}
	valueCents, err := validatePropertyInput(input)
	if err != nil {
		return nil, err
	}

	property.Title = strings.TrimSpace(input.Title)
	property.Description = strings.TrimSpace(input.Description)
	property.Location = strings.TrimSpace(input.Location)
	property.Dimensions = strings.TrimSpace(input.Dimensions)
	property.PropertyType = strings.TrimSpace(input.PropertyType)
	property.ValueCents = valueCents
	property.ImageURL = strings.TrimSpace(input.ImageURL)
	property.IsAvailable = input.IsAvailable
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *catalogService) Delete(ctx context.Context, caller domain.Principal, id string) error {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property.LandlordID != caller.ID && caller.Role != domain.RoleMaster {
		return domain.ErrPermissionDenied
	}
	return s.propertyRepo.Delete(ctx, id)
}

// validatePropertyInput rejects blank required fields and non-positive
// prices, returning the normalized price in cents.
func validatePropertyInput(input PropertyInput) (int64, error) {
	required := []struct {
		field string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"location", input.Location},
		{"dimensions", input.Dimensions},
		{"property_type", input.PropertyType},
		{"value", input.Value},
		{"image_url", input.ImageURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return 0, domain.NewValidationError(r.field, "must not be empty")
		}
	}
	valueCents, err := utils.ParsePriceCents(input.Value)
	if err != nil {
		return 0, domain.NewValidationError("value", "must be a positive amount")
	}
	return valueCents, nil
}
