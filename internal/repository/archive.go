package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"velya/internal/entities"
)

// ArchiveRepository persists processed exchanges for audit and the
// operator history API.
type ArchiveRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewArchiveRepository(db *pgxpool.Pool, log *zap.Logger) *ArchiveRepository {
	return &ArchiveRepository{db: db, log: log}
}

// Record inserts one interaction. An empty ID gets a fresh UUID.
func (r *ArchiveRepository) Record(ctx context.Context, rec entities.InteractionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_interactions (id, sender, input, output, language, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.Sender, rec.Input, rec.Output, string(rec.Locale), string(rec.Sentiment), rec.Timestamp)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// RecentBySender returns the latest interactions for one sender, newest
// first, capped at limit.
func (r *ArchiveRepository) RecentBySender(ctx context.Context, sender string, limit int) ([]entities.InteractionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, sender, input, output, language, sentiment, created_at
		FROM chat_interactions
		WHERE sender = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, sender, limit)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	var records []entities.InteractionRecord
	for rows.Next() {
		var rec entities.InteractionRecord
		var lang, sentiment string
		if err := rows.Scan(&rec.ID, &rec.Sender, &rec.Input, &rec.Output, &lang, &sentiment, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		rec.Locale = entities.Locale(lang)
		rec.Sentiment = entities.SentimentLabel(sentiment)
		records = append(records, rec)
	}
	return records, rows.Err()
}
