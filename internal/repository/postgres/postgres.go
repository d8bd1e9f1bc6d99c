package postgres

import (
	"database/sql"

	"camrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.OrderRepository
	repository.UserRepository
	repository.SuggestionRepository
	repository.CartSnapshotRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		EquipmentRepository:    NewEquipmentRepository(db),
		OrderRepository:        NewOrderRepository(db),
		UserRepository:         NewUserRepository(db),
		SuggestionRepository:   NewSuggestionRepository(db),
		CartSnapshotRepository: NewCartSnapshotRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
