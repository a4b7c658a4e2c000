package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"velya/internal/entities"
	"velya/internal/interfaces"
)

const productColumns = `
	id, sku, name, COALESCE(description, ''), COALESCE(usage_notes, ''),
	price, COALESCE(discount_price, 0), COALESCE(category, ''),
	COALESCE(color, ''), COALESCE(size, ''), COALESCE(brand, ''),
	COALESCE(rating, 0), stock, is_featured, is_active, created_at
`

func scanProduct(row pgx.Row) (*entities.ProductRecord, error) {
	var p entities.ProductRecord
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.UsageNotes,
		&p.Price, &p.DiscountPrice, &p.Category,
		&p.Color, &p.Size, &p.Brand,
		&p.Rating, &p.Stock, &p.IsFeatured, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProductByNameOrKeyword matches the first active product whose
// name contains the text, case-insensitively.
func (s *Store) FindProductByNameOrKeyword(ctx context.Context, text string) (*entities.ProductRecord, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_active = TRUE AND name ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT 1
	`, text)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("query product by name: %w", err)
	}
	return p, nil
}

// FindProductsByFilter returns active products under the category and
// price caps of the filter. Qualifier flags and ordering are applied by
// the recommendation handler, which needs deterministic ranking.
func (s *Store) FindProductsByFilter(ctx context.Context, filter entities.ProductFilter) ([]entities.ProductRecord, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category ILIKE '%%' || $%d || '%%'", len(args))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products by filter: %w", err)
	}
	defer rows.Close()

	var products []entities.ProductRecord
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// AllActiveProducts lists the catalog for the read API.
func (s *Store) AllActiveProducts(ctx context.Context) ([]entities.ProductRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []entities.ProductRecord
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}
