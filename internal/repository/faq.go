package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/jackc/pgx/v5"

	"velya/internal/entities"
	"velya/internal/interfaces"
)

// FindExactFAQ returns the FAQ whose question matches the text exactly,
// ignoring case and surrounding whitespace.
func (s *Store) FindExactFAQ(ctx context.Context, question string, locale entities.Locale) (*entities.KnowledgeEntry, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, question, answer, language
		FROM faqs
		WHERE LOWER(TRIM(question)) = LOWER(TRIM($1)) AND language = $2
		LIMIT 1
	`, question, string(locale.Resolve()))

	var e entities.KnowledgeEntry
	var lang string
	if err := row.Scan(&e.ID, &e.Question, &e.Answer, &lang); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("query exact faq: %w", err)
	}
	e.Locale = entities.Locale(lang)
	return &e, nil
}

// FindSimilarFAQs fetches all FAQs for the locale and ranks them by
// textual similarity against the question. Entries at or above the
// threshold come back in stored order.
func (s *Store) FindSimilarFAQs(ctx context.Context, question string, locale entities.Locale, threshold float64) ([]entities.KnowledgeEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, question, answer, language
		FROM faqs
		WHERE language = $1
		ORDER BY id
	`, string(locale.Resolve()))
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	normalized := strings.ToLower(strings.TrimSpace(question))

	var similar []entities.KnowledgeEntry
	for rows.Next() {
		var e entities.KnowledgeEntry
		var lang string
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &lang); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		e.Locale = entities.Locale(lang)
		if isSimilarQuestion(normalized, strings.ToLower(e.Question), threshold) {
			similar = append(similar, e)
		}
	}
	return similar, rows.Err()
}

// isSimilarQuestion accepts either containment or an edit-distance
// ratio at or above the threshold.
func isSimilarQuestion(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1-float64(dist)/float64(longest) >= threshold
}

// AllFAQs lists every FAQ, used by the read API.
func (s *Store) AllFAQs(ctx context.Context) ([]entities.KnowledgeEntry, error) {
	rows, err := s.db.Query(ctx, `SELECT id, question, answer, language FROM faqs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	var all []entities.KnowledgeEntry
	for rows.Next() {
		var e entities.KnowledgeEntry
		var lang string
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &lang); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		e.Locale = entities.Locale(lang)
		all = append(all, e)
	}
	return all, rows.Err()
}
