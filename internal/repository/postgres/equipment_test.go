package postgres

import (
	"context"
	"database/sql"
	"testing"

	"camrent-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func equipmentColumns() []string {
	return []string{"id", "name", "description", "image_key", "rate_12h_cents", "rate_24h_cents", "available", "created_on", "deleted_on"}
}

func TestEquipmentRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEquipmentRepository(db)

	mock.ExpectQuery(`INSERT INTO equipment`).
		WithArgs("Camera A", "Full-frame body", "abc.jpg", int32(500), int32(900), true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(12)))

	eq := &domain.Equipment{
		Name:         "Camera A",
		Description:  "Full-frame body",
		ImageKey:     "abc.jpg",
		Rate12hCents: 500,
		Rate24hCents: 900,
		Available:    true,
	}
	assert.NoError(t, repo.Create(context.Background(), eq))
	assert.Equal(t, int32(12), eq.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEquipmentRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM equipment WHERE id = \$1 AND deleted_on IS NULL`).
		WithArgs(int32(12)).
		WillReturnRows(sqlmock.NewRows(equipmentColumns()).
			AddRow(int32(12), "Camera A", "Full-frame body", "abc.jpg", int32(500), int32(900), true, "2026-01-02T10:00:00Z", nil))

	eq, err := repo.GetByID(context.Background(), 12)
	assert.NoError(t, err)
	assert.Equal(t, "Camera A", eq.Name)
	assert.Equal(t, int32(500), eq.Rate12hCents)
	assert.Nil(t, eq.DeletedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEquipmentRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM equipment WHERE id = \$1`).
		WithArgs(int32(99)).
		WillReturnError(sql.ErrNoRows)

	eq, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, eq)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEquipmentRepositoryListAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEquipmentRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM equipment WHERE available = true AND deleted_on IS NULL`).
		WillReturnRows(sqlmock.NewRows(equipmentColumns()).
			AddRow(int32(1), "Camera A", "", "", int32(500), int32(900), true, "2026-01-02T10:00:00Z", nil).
			AddRow(int32(2), "Lens B", "", "", int32(200), int32(300), true, "2026-01-03T10:00:00Z", nil))

	items, err := repo.ListAvailable(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Lens B", items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepositoryDeleteIsSoft(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEquipmentRepository(db)

	// Delete stamps deleted_on instead of removing the row; existing orders
	// keep a valid equipment reference.
	mock.ExpectExec(`UPDATE equipment SET deleted_on = \$1 WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), int32(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 12))
	assert.NoError(t, mock.ExpectationsWereMet())
}
