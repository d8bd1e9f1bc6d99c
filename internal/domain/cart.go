package domain

import "time"

// CartLine is one equipment selection in a shopper's cart. TotalCents is
// always recomputed from the other fields on every mutation, never carried
// forward independently.
type CartLine struct {
	EquipmentID   int32          `json:"equipment_id"`
	EquipmentName string         `json:"equipment_name"`
	Duration      RentalDuration `json:"duration"`
	RentDate      string         `json:"rent_date"`
	ReturnDate    string         `json:"return_date"`
	Quantity      int32          `json:"quantity"`
	UnitRateCents int32          `json:"unit_rate_cents"`
	TotalCents    int32          `json:"total_cents"`
}

// CartSnapshot is the serialized form of a cart mirrored to durable storage
// after every mutation, so a later session with the same key reconstructs
// identical state.
type CartSnapshot struct {
	Lines   []CartLine `json:"lines"`
	SavedOn time.Time  `json:"saved_on"`
}
