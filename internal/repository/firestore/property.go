package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"usespace-backend/internal/domain"
)

type propertyRepository struct {
	client *firestore.Client
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedOn = now
	p.UpdatedOn = now

	col := r.client.Collection(propertiesCollection)
	if p.ID == "" {
		ref, _, err := col.Add(ctx, p)
		if err != nil {
			return err
		}
		p.ID = ref.ID
		return nil
	}
	_, err := col.Doc(p.ID).Create(ctx, p)
	return err
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	doc, err := r.client.Collection(propertiesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := &domain.Property{}
	if err := doc.DataTo(p); err != nil {
		return nil, err
	}
	p.ID = doc.Ref.ID
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	p.UpdatedOn = time.Now().UTC().Format(time.RFC3339)

	// Field updates rather than a full Set so landlordId and createdOn
	// are never rewritten.
	updates := []firestore.Update{
		{Path: "title", Value: p.Title},
		{Path: "description", Value: p.Description},
		{Path: "location", Value: p.Location},
		{Path: "dimensions", Value: p.Dimensions},
		{Path: "propertyType", Value: p.PropertyType},
		{Path: "valueCents", Value: p.ValueCents},
		{Path: "imageURL", Value: p.ImageURL},
		{Path: "isAvailable", Value: p.IsAvailable},
		{Path: "updatedOn", Value: p.UpdatedOn},
	}
	_, err := r.client.Collection(propertiesCollection).Doc(p.ID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return err
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(propertiesCollection).Doc(id)
	// Delete is idempotent in Firestore, so probe first to preserve the
	// not-found contract.
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return err
	}
	_, err := ref.Delete(ctx)
	return err
}

func (r *propertyRepository) ListAll(ctx context.Context) ([]domain.Property, error) {
	q := r.client.Collection(propertiesCollection).OrderBy("createdOn", firestore.Desc)
	return collectProperties(q.Documents(ctx))
}

func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	q := r.client.Collection(propertiesCollection).
		Where("landlordId", "==", landlordID).
		OrderBy("createdOn", firestore.Desc)
	return collectProperties(q.Documents(ctx))
}

func collectProperties(it *firestore.DocumentIterator) ([]domain.Property, error) {
	defer it.Stop()
	var properties []domain.Property
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var p domain.Property
		if err := doc.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = doc.Ref.ID
		properties = append(properties, p)
	}
	return properties, nil
}
