package domain

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
)

// Valid reports whether s is one of the three known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusRejected:
		return true
	}
	return false
}

// Active reports whether s blocks the property+date slot. A rejected
// appointment frees the slot for re-request.
func (s AppointmentStatus) Active() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// ActiveStatuses are the statuses that occupy a booking slot.
var ActiveStatuses = []AppointmentStatus{AppointmentStatusPending, AppointmentStatusConfirmed}

type Appointment struct {
	ID         string `json:"id" firestore:"-"`
	PropertyID string `json:"property_id" firestore:"propertyId"`
	// Snapshot of the property title at booking time.
	PropertyTitle string `json:"property_title" firestore:"propertyTitle"`
	LandlordID    string `json:"landlord_id" firestore:"landlordId"`
	TenantID      string `json:"tenant_id" firestore:"tenantId"`
	TenantEmail   string `json:"tenant_email" firestore:"tenantEmail"`
	// Single requested day, yyyy-mm-dd.
	Date string `json:"date" firestore:"date"`
	// Snapshot of the property's daily price at booking time. Later price
	// changes on the property never touch this.
	TotalValueCents int64             `json:"total_value_cents" firestore:"totalValueCents"`
	Status          AppointmentStatus `json:"status" firestore:"status"`
	CreatedOn       string            `json:"created_on" firestore:"createdOn"`
}
