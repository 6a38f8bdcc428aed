package domain

type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
	RoleMaster   Role = "master"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleLandlord, RoleMaster:
		return true
	}
	return false
}

type User struct {
	// ID is the identity provider's subject identifier.
	ID       string `json:"id" firestore:"-"`
	Email    string `json:"email" firestore:"email"`
	FullName string `json:"full_name" firestore:"fullName"`
	// Role is fixed at registration; there is no self-service role change.
	Role Role `json:"role" firestore:"role"`
	// Only populated in local auth mode.
	PasswordHash string `json:"-" firestore:"passwordHash,omitempty"`
	CreatedOn    string `json:"created_on" firestore:"createdOn"`
}

// Principal is the authenticated caller, resolved once per request and
// passed explicitly to every service instead of living in ambient state.
type Principal struct {
	ID    string
	Email string
	Role  Role
}
