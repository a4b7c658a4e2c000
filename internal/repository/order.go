package repository

import (
	"context"
	"fmt"

	"velya/internal/entities"
)

// FindOrderHistory joins confirmation links with their client, order
// and product rows for one phone number, newest order first.
func (s *Store) FindOrderHistory(ctx context.Context, phone string) ([]entities.OrderHistoryEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT
			cf.reference,
			cl.id, cl.phone, COALESCE(cl.name, ''), COALESCE(cl.city, ''), COALESCE(cl.country, ''),
			o.id, o.status, COALESCE(o.tracking_number, ''), o.shipped_at, o.delivered_at, o.created_at,
			p.name, cf.quantity, cf.unit_price, cf.line_total
		FROM confirmations cf
		JOIN clients cl ON cl.id = cf.client_id
		JOIN orders o ON o.id = cf.order_id
		JOIN products p ON p.id = cf.product_id
		WHERE cl.phone = $1
		ORDER BY o.created_at DESC
	`, phone)
	if err != nil {
		return nil, fmt.Errorf("query order history: %w", err)
	}
	defer rows.Close()

	var history []entities.OrderHistoryEntry
	for rows.Next() {
		var e entities.OrderHistoryEntry
		if err := rows.Scan(
			&e.Reference,
			&e.Client.ID, &e.Client.Phone, &e.Client.Name, &e.Client.City, &e.Client.Country,
			&e.Order.ID, &e.Order.Status, &e.Order.TrackingNumber, &e.Order.ShippedAt, &e.Order.DeliveredAt, &e.Order.CreatedAt,
			&e.ProductName, &e.Quantity, &e.UnitPrice, &e.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan order history: %w", err)
		}
		history = append(history, e)
	}
	return history, rows.Err()
}
