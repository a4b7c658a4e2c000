package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"velya/internal/entities"
)

// OperatorRepository manages staff accounts for the history API.
type OperatorRepository struct {
	db *pgxpool.Pool
}

func NewOperatorRepository(db *pgxpool.Pool) *OperatorRepository {
	return &OperatorRepository{db: db}
}

func (r *OperatorRepository) Create(ctx context.Context, username, passwordHash, role string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO operators (username, password_hash, role)
		VALUES ($1, $2, $3)
	`, username, passwordHash, role)
	if err != nil {
		return fmt.Errorf("create operator: %w", err)
	}
	return nil
}

// GetByUsername returns nil without error when no operator exists.
func (r *OperatorRepository) GetByUsername(ctx context.Context, username string) (*entities.Operator, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, role
		FROM operators
		WHERE username = $1
	`, username)

	var op entities.Operator
	if err := row.Scan(&op.ID, &op.Username, &op.PasswordHash, &op.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return &op, nil
}
