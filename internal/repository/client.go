package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"velya/internal/entities"
	"velya/internal/interfaces"
)

// FindClientByPhone looks up the CRM profile behind a sender number.
func (s *Store) FindClientByPhone(ctx context.Context, phone string) (*entities.ClientProfile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, phone, COALESCE(name, ''), COALESCE(city, ''), COALESCE(country, '')
		FROM clients
		WHERE phone = $1
	`, phone)

	var c entities.ClientProfile
	if err := row.Scan(&c.ID, &c.Phone, &c.Name, &c.City, &c.Country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("query client by phone: %w", err)
	}
	return &c, nil
}
