package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier validates Firebase Auth ID tokens sent by the mobile
// clients. The verified subject is the Firebase UID, which doubles as
// the user profile's document id.
type FirebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseApp initialises the Firebase app for a project. When
// credentialsFile is empty the SDK falls back to application default
// credentials, which is what we run with on GCP.
func NewFirebaseApp(ctx context.Context, projectID, credentialsFile string) (*firebase.App, error) {
	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("id token verification failed: %w", err)
	}
	ident := &Identity{SubjectID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		ident.Email = email
	}
	return ident, nil
}
