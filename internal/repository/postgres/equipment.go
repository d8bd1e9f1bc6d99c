package postgres

import (
	"context"
	"database/sql"
	"time"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (name, description, image_key, rate_12h_cents, rate_24h_cents, available, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, eq.Name, eq.Description, eq.ImageKey, eq.Rate12hCents, eq.Rate24hCents, eq.Available, time.Now()).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(image_key, ''), rate_12h_cents, rate_24h_cents, available, created_on, deleted_on
	          FROM equipment WHERE id = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&eq.ID, &eq.Name, &eq.Description, &eq.ImageKey, &eq.Rate12hCents, &eq.Rate24hCents, &eq.Available, &eq.CreatedOn, &eq.DeletedOn)
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, description=$2, image_key=$3, rate_12h_cents=$4, rate_24h_cents=$5, available=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, eq.Name, eq.Description, eq.ImageKey, eq.Rate12hCents, eq.Rate24hCents, eq.Available, eq.ID)
	return err
}

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE equipment SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *equipmentRepository) ListAvailable(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(image_key, ''), rate_12h_cents, rate_24h_cents, available, created_on, deleted_on
	          FROM equipment WHERE available = true AND deleted_on IS NULL ORDER BY created_on ASC`
	return r.queryEquipment(ctx, query)
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(image_key, ''), rate_12h_cents, rate_24h_cents, available, created_on, deleted_on
	          FROM equipment WHERE deleted_on IS NULL ORDER BY created_on ASC`
	return r.queryEquipment(ctx, query)
}

func (r *equipmentRepository) queryEquipment(ctx context.Context, query string) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.Description, &eq.ImageKey, &eq.Rate12hCents, &eq.Rate24hCents, &eq.Available, &eq.CreatedOn, &eq.DeletedOn); err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}
