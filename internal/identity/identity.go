// Package identity verifies tokens minted by an external identity
// provider and reduces them to the subject and email the rest of the
// application needs.
package identity

import "context"

// Identity is what an external provider attests about a caller.
type Identity struct {
	SubjectID string
	Email     string
}

// Verifier checks a provider-issued ID token. Implementations must
// reject expired and revoked tokens.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
