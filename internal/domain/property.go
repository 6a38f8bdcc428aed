package domain

type Property struct {
	ID           string `json:"id" firestore:"-"`
	Title        string `json:"title" firestore:"title"`
	Description  string `json:"description" firestore:"description"`
	Location     string `json:"location" firestore:"location"`
	Dimensions   string `json:"dimensions" firestore:"dimensions"`
	PropertyType string `json:"property_type" firestore:"propertyType"`
	// Rental price per day, in cents. Parsed from locale-formatted
	// text ("1500,00") at the edge and stored canonically.
	ValueCents int64  `json:"value_cents" firestore:"valueCents"`
	ImageURL   string `json:"image_url" firestore:"imageURL"`
	LandlordID string `json:"landlord_id" firestore:"landlordId"` // immutable after create
	// Informational flag set by the landlord. Availability for booking is
	// derived from appointments, never from this field.
	IsAvailable bool   `json:"is_available" firestore:"isAvailable"`
	CreatedOn   string `json:"created_on" firestore:"createdOn"`
	UpdatedOn   string `json:"updated_on" firestore:"updatedOn"`
}
