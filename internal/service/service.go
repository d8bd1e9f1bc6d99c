package service

import (
	"context"

	"camrent-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Logout(ctx context.Context, refresh string) error
}

type EquipmentService interface {
	ListAvailable(ctx context.Context) ([]domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	Get(ctx context.Context, id int32) (*domain.Equipment, error)
	Add(ctx context.Context, eq *domain.Equipment) error
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
}

// CustomerInfo is the contact block a checkout is created against.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CheckoutService interface {
	// Checkout converts cart lines into persisted orders, one per line.
	// Returns the number of orders created; on any failure the reported
	// count is 0 regardless of how many rows were durably written.
	Checkout(ctx context.Context, actor *domain.User, lines []domain.CartLine, info CustomerInfo) (int, error)
}

type OrderService interface {
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error)
	Get(ctx context.Context, id int32) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, actor *domain.User, orderID int32, status domain.OrderStatus) (*domain.Order, error)
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, email, phone string) error
	ReassignRole(ctx context.Context, userID int32, role domain.Role) error
}

type SuggestionService interface {
	Create(ctx context.Context, s *domain.Suggestion) error
	List(ctx context.Context) ([]domain.Suggestion, error)
	UpdateStatus(ctx context.Context, id int32, status domain.SuggestionStatus) error
	Delete(ctx context.Context, id int32) error
}

type NotificationService interface {
	List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
	// NotifyStaff fans one notification out to every staff and admin user.
	NotifyStaff(ctx context.Context, title, message string, attributes map[string]string) error
}

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, email, name string, orderCount int, totalCents int32) error
	SendSuggestionReceived(ctx context.Context, email, name, equipmentName string) error
}
