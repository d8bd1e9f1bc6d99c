package postgres

import (
	"context"
	"database/sql"
	"time"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (reference, equipment_id, customer_name, customer_email, customer_phone, duration, rent_date, return_date, quantity, total_cents, status, handled_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, o.Reference, o.EquipmentID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Duration, o.RentDate, o.ReturnDate, o.Quantity, o.TotalCents, o.Status, o.HandledBy, time.Now()).Scan(&o.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	o := &domain.Order{}
	query := `SELECT id, reference, equipment_id, customer_name, customer_email, COALESCE(customer_phone, ''), duration, rent_date, return_date, quantity, total_cents, status, handled_by, created_on, updated_on
	          FROM orders WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Reference, &o.EquipmentID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Duration, &o.RentDate, &o.ReturnDate, &o.Quantity, &o.TotalCents, &o.Status, &o.HandledBy, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET status=$1, handled_by=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, o.Status, o.HandledBy, time.Now(), o.ID)
	return err
}

func (r *orderRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM orders WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *orderRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Order, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, reference, equipment_id, customer_name, customer_email, COALESCE(customer_phone, ''), duration, rent_date, return_date, quantity, total_cents, status, handled_by, created_on, updated_on
	          FROM orders`
	countQuery := `SELECT count(*) FROM orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	} else {
		query += ` ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	args = append(args, pageSize, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.EquipmentID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Duration, &o.RentDate, &o.ReturnDate, &o.Quantity, &o.TotalCents, &o.Status, &o.HandledBy, &o.CreatedOn, &o.UpdatedOn); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, count, rows.Err()
}
