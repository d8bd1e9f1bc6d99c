package postgres

import (
	"context"
	"database/sql"
	"time"

	"camrent-backend/internal/domain"
	"camrent-backend/internal/repository"
)

type suggestionRepository struct {
	db *sql.DB
}

func NewSuggestionRepository(db *sql.DB) repository.SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Create(ctx context.Context, s *domain.Suggestion) error {
	query := `INSERT INTO suggestions (equipment_name, details, submitter_name, submitter_email, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.EquipmentName, s.Details, s.SubmitterName, s.SubmitterEmail, s.Status, time.Now()).Scan(&s.ID)
}

func (r *suggestionRepository) GetByID(ctx context.Context, id int32) (*domain.Suggestion, error) {
	s := &domain.Suggestion{}
	query := `SELECT id, equipment_name, COALESCE(details, ''), submitter_name, submitter_email, status, created_on FROM suggestions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.EquipmentName, &s.Details, &s.SubmitterName, &s.SubmitterEmail, &s.Status, &s.CreatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *suggestionRepository) UpdateStatus(ctx context.Context, id int32, status domain.SuggestionStatus) error {
	query := `UPDATE suggestions SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *suggestionRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM suggestions WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *suggestionRepository) List(ctx context.Context) ([]domain.Suggestion, error) {
	query := `SELECT id, equipment_name, COALESCE(details, ''), submitter_name, submitter_email, status, created_on FROM suggestions ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []domain.Suggestion
	for rows.Next() {
		var s domain.Suggestion
		if err := rows.Scan(&s.ID, &s.EquipmentName, &s.Details, &s.SubmitterName, &s.SubmitterEmail, &s.Status, &s.CreatedOn); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}
