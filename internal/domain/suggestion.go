package domain

type SuggestionStatus string

const (
	SuggestionStatusPending     SuggestionStatus = "PENDING"
	SuggestionStatusReviewed    SuggestionStatus = "REVIEWED"
	SuggestionStatusImplemented SuggestionStatus = "IMPLEMENTED"
)

// Suggestion is a free-text equipment request from a visitor. Admins advance
// its status or delete it.
type Suggestion struct {
	ID             int32            `json:"id"`
	EquipmentName  string           `json:"equipment_name"`
	Details        string           `json:"details"`
	SubmitterName  string           `json:"submitter_name"`
	SubmitterEmail string           `json:"submitter_email"`
	Status         SuggestionStatus `json:"status"`
	CreatedOn      string           `json:"created_on"`
}
