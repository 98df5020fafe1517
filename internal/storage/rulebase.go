package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Rulebase is a named collection of premises owned by a user.
type Rulebase struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RulebaseRepository defines the interface for rulebase storage operations
type RulebaseRepository interface {
	Create(ctx context.Context, rulebase *Rulebase) error
	GetByID(ctx context.Context, id uuid.UUID) (*Rulebase, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*Rulebase, error)
	Update(ctx context.Context, rulebase *Rulebase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostgresRulebaseRepository implements RulebaseRepository using PostgreSQL
type PostgresRulebaseRepository struct {
	db *sql.DB
}

// NewPostgresRulebaseRepository creates a new PostgresRulebaseRepository
func NewPostgresRulebaseRepository(db *sql.DB) *PostgresRulebaseRepository {
	return &PostgresRulebaseRepository{db: db}
}

// Create inserts a new rulebase into the database
func (r *PostgresRulebaseRepository) Create(ctx context.Context, rulebase *Rulebase) error {
	if rulebase.ID == uuid.Nil {
		rulebase.ID = uuid.New()
	}

	now := time.Now()
	if rulebase.CreatedAt.IsZero() {
		rulebase.CreatedAt = now
	}
	if rulebase.UpdatedAt.IsZero() {
		rulebase.UpdatedAt = now
	}

	query := `
		INSERT INTO rulebases (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		rulebase.ID,
		rulebase.UserID,
		rulebase.Name,
		rulebase.CreatedAt,
		rulebase.UpdatedAt,
	)

	return err
}

// GetByID retrieves a rulebase by its ID
func (r *PostgresRulebaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*Rulebase, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM rulebases
		WHERE id = $1
	`

	rulebase := &Rulebase{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rulebase.ID,
		&rulebase.UserID,
		&rulebase.Name,
		&rulebase.CreatedAt,
		&rulebase.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return rulebase, nil
}

// GetByUserID retrieves all rulebases for a specific user
func (r *PostgresRulebaseRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*Rulebase, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM rulebases
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rulebases []*Rulebase
	for rows.Next() {
		rulebase := &Rulebase{}
		err := rows.Scan(
			&rulebase.ID,
			&rulebase.UserID,
			&rulebase.Name,
			&rulebase.CreatedAt,
			&rulebase.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rulebases = append(rulebases, rulebase)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rulebases, nil
}

// Update updates a rulebase's name
func (r *PostgresRulebaseRepository) Update(ctx context.Context, rulebase *Rulebase) error {
	rulebase.UpdatedAt = time.Now()

	query := `
		UPDATE rulebases
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		rulebase.ID,
		rulebase.Name,
		rulebase.UpdatedAt,
	)

	return err
}

// Delete removes a rulebase row; it issues no statement against its premises
func (r *PostgresRulebaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rulebases WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
