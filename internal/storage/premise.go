package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Premise is one formula of a rulebase, stored in canonical text form.
// Rank feeds the preference relation; Position preserves authoring order,
// which the engine's output order follows.
type Premise struct {
	ID         uuid.UUID
	RulebaseID uuid.UUID
	Text       string
	Rank       int
	Position   int
	CreatedAt  time.Time
}

// PremiseRepository defines the interface for premise storage operations
type PremiseRepository interface {
	Create(ctx context.Context, premise *Premise) error
	CreateBatch(ctx context.Context, premises []*Premise) error
	GetByRulebaseID(ctx context.Context, rulebaseID uuid.UUID) ([]*Premise, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRulebaseID(ctx context.Context, rulebaseID uuid.UUID) error
}

// PostgresPremiseRepository implements PremiseRepository using PostgreSQL
type PostgresPremiseRepository struct {
	db *sql.DB
}

// NewPostgresPremiseRepository creates a new PostgresPremiseRepository
func NewPostgresPremiseRepository(db *sql.DB) *PostgresPremiseRepository {
	return &PostgresPremiseRepository{db: db}
}

// Create inserts a new premise into the database
func (r *PostgresPremiseRepository) Create(ctx context.Context, premise *Premise) error {
	if premise.ID == uuid.Nil {
		premise.ID = uuid.New()
	}

	if premise.CreatedAt.IsZero() {
		premise.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO premises (id, rulebase_id, text, rank, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		premise.ID,
		premise.RulebaseID,
		premise.Text,
		premise.Rank,
		premise.Position,
		premise.CreatedAt,
	)

	return err
}

// CreateBatch inserts multiple premises in a single transaction
func (r *PostgresPremiseRepository) CreateBatch(ctx context.Context, premises []*Premise) error {
	if len(premises) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO premises (id, rulebase_id, text, rank, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, p := range premises {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}

		_, err := stmt.ExecContext(ctx,
			p.ID,
			p.RulebaseID,
			p.Text,
			p.Rank,
			p.Position,
			p.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByRulebaseID retrieves all premises of a rulebase in authoring order
func (r *PostgresPremiseRepository) GetByRulebaseID(ctx context.Context, rulebaseID uuid.UUID) ([]*Premise, error) {
	query := `
		SELECT id, rulebase_id, text, rank, position, created_at
		FROM premises
		WHERE rulebase_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, rulebaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var premises []*Premise
	for rows.Next() {
		premise := &Premise{}
		err := rows.Scan(
			&premise.ID,
			&premise.RulebaseID,
			&premise.Text,
			&premise.Rank,
			&premise.Position,
			&premise.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		premises = append(premises, premise)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return premises, nil
}

// Delete removes a premise by its ID
func (r *PostgresPremiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM premises WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// DeleteByRulebaseID removes all premises of a rulebase
func (r *PostgresPremiseRepository) DeleteByRulebaseID(ctx context.Context, rulebaseID uuid.UUID) error {
	query := `DELETE FROM premises WHERE rulebase_id = $1`

	_, err := r.db.ExecContext(ctx, query, rulebaseID)
	return err
}
