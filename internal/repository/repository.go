package repository

import (
	"context"
	"time"

	"camrent-backend/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
	// ListAvailable returns non-deleted equipment flagged available, in the
	// order it was added. No inventory lock: two readers may see the same
	// available item at once.
	ListAvailable(ctx context.Context) ([]domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	// Delete removes an order row outright. Only the all-or-nothing checkout
	// policy uses it, as a compensating action for a failed batch.
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type SuggestionRepository interface {
	Create(ctx context.Context, s *domain.Suggestion) error
	GetByID(ctx context.Context, id int32) (*domain.Suggestion, error)
	UpdateStatus(ctx context.Context, id int32, status domain.SuggestionStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Suggestion, error)
}

// CartSnapshotRepository mirrors serialized cart state under one fixed key
// per session. It is a plain key-value string store; the cart package owns
// the payload format.
type CartSnapshotRepository interface {
	Save(ctx context.Context, key, payload string) error
	Load(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
