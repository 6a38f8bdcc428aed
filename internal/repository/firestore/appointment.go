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

type appointmentRepository struct {
	client *firestore.Client
}

// Create runs the availability check and the insert inside one Firestore
// transaction. Firestore aborts and retries the transaction when a
// concurrent writer touches the queried slot, so two racing requests for
// the same property and date cannot both commit.
func (r *appointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	a.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	col := r.client.Collection(appointmentsCollection)
	ref := col.NewDoc()
	if a.ID != "" {
		ref = col.Doc(a.ID)
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		q := col.
			Where("propertyId", "==", a.PropertyID).
			Where("date", "==", a.Date).
			Where("status", "in", activeStatusValues()).
			Limit(1)
		docs, err := tx.Documents(q).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return domain.ErrDateUnavailable
		}
		return tx.Create(ref, a)
	})
	if err != nil {
		return err
	}
	a.ID = ref.ID
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	doc, err := r.client.Collection(appointmentsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a := &domain.Appointment{}
	if err := doc.DataTo(a); err != nil {
		return nil, err
	}
	a.ID = doc.Ref.ID
	return a, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, st domain.AppointmentStatus) error {
	_, err := r.client.Collection(appointmentsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(st)},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return err
}

func (r *appointmentRepository) CountActive(ctx context.Context, propertyID, date string) (int, error) {
	q := r.client.Collection(appointmentsCollection).
		Where("propertyId", "==", propertyID).
		Where("date", "==", date).
		Where("status", "in", activeStatusValues())
	it := q.Documents(ctx)
	defer it.Stop()

	count := 0
	for {
		_, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

func (r *appointmentRepository) ListByLandlord(ctx context.Context, landlordID string) ([]domain.Appointment, error) {
	q := r.client.Collection(appointmentsCollection).
		Where("landlordId", "==", landlordID).
		OrderBy("createdOn", firestore.Desc)
	return collectAppointments(q.Documents(ctx))
}

func (r *appointmentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Appointment, error) {
	q := r.client.Collection(appointmentsCollection).
		Where("tenantId", "==", tenantID).
		OrderBy("createdOn", firestore.Desc)
	return collectAppointments(q.Documents(ctx))
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	q := r.client.Collection(appointmentsCollection).OrderBy("createdOn", firestore.Desc)
	return collectAppointments(q.Documents(ctx))
}

func activeStatusValues() []string {
	values := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		values[i] = string(s)
	}
	return values
}

func collectAppointments(it *firestore.DocumentIterator) ([]domain.Appointment, error) {
	defer it.Stop()
	var appointments []domain.Appointment
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var a domain.Appointment
		if err := doc.DataTo(&a); err != nil {
			return nil, err
		}
		a.ID = doc.Ref.ID
		appointments = append(appointments, a)
	}
	return appointments, nil
}
