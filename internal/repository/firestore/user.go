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

type userRepository struct {
	client *firestore.Client
}

// Create stores the profile under the identity provider's subject id,
// so profile lookups after token verification are a single doc read.
func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	u.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	_, err := r.client.Collection(usersCollection).Doc(u.ID).Create(ctx, u)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u := &domain.User{}
	if err := doc.DataTo(u); err != nil {
		return nil, err
	}
	u.ID = doc.Ref.ID
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1)
	it := q.Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u := &domain.User{}
	if err := doc.DataTo(u); err != nil {
		return nil, err
	}
	u.ID = doc.Ref.ID
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	it := r.client.Collection(usersCollection).OrderBy("createdOn", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var users []domain.User
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var u domain.User
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		u.ID = doc.Ref.ID
		users = append(users, u)
	}
	return users, nil
}
