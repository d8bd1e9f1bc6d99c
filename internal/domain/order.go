package domain

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is one persisted rental order. Checkout creates one order per cart
// line, not one per checkout.
type Order struct {
	ID            int32          `json:"id"`
	Reference     string         `json:"reference"`
	EquipmentID   int32          `json:"equipment_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone"`
	Duration      RentalDuration `json:"duration"`
	RentDate      string         `json:"rent_date"`
	ReturnDate    string         `json:"return_date"`
	Quantity      int32          `json:"quantity"`
	TotalCents    int32          `json:"total_cents"`
	Status        OrderStatus    `json:"status"`
	HandledBy     *int32         `json:"handled_by,omitempty"`
	CreatedOn     string         `json:"created_on"`
	UpdatedOn     string         `json:"updated_on"`
}
