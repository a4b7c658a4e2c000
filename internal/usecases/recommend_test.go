package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velya/internal/entities"
)

func catalogProduct(sku, name string, price, rating float64, featured bool, createdAt time.Time) entities.ProductRecord {
	return entities.ProductRecord{
		SKU:        sku,
		Name:       name,
		Price:      price,
		Rating:     rating,
		IsFeatured: featured,
		IsActive:   true,
		CreatedAt:  createdAt,
	}
}

func TestRecommendBestSortsByRatingAndCapsAtFive(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	base := at(10).AddDate(0, -6, 0)
	deps.store.filtered = []entities.ProductRecord{
		catalogProduct("S1", "Alpha", 100, 4.1, false, base),
		catalogProduct("S2", "Bravo", 100, 4.9, false, base),
		catalogProduct("S3", "Charlie", 100, 3.2, false, base),
		catalogProduct("S4", "Delta", 100, 4.5, false, base),
		catalogProduct("S5", "Echo", 100, 4.3, false, base),
		catalogProduct("S6", "Foxtrot", 100, 4.2, false, base),
		catalogProduct("S7", "Golf", 100, 4.8, false, base),
	}

	reply, ok := r.recommendReply(context.Background(), entities.InboundMessage{
		Content: "recommend your best shoes",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "(Best sellers)")
	// Charlie is below the 4-star bar, and only five items fit
	assert.NotContains(t, reply, "Charlie")
	assert.Contains(t, reply, "1. Bravo")
	assert.Contains(t, reply, "2. Golf")
	assert.Contains(t, reply, "5. Foxtrot")
	assert.NotContains(t, reply, "Alpha")
}

func TestRecommendBudgetFilter(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	base := at(10).AddDate(0, -6, 0)
	deps.store.filtered = []entities.ProductRecord{
		catalogProduct("S1", "Cheap", 150, 4, true, base),
		catalogProduct("S2", "Pricey", 450, 5, true, base),
	}

	reply, ok := r.recommendReply(context.Background(), entities.InboundMessage{
		Content: "can you recommend shoes, budget 300",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "(up to 300 MAD)")
	assert.Contains(t, reply, "Cheap")
	assert.NotContains(t, reply, "Pricey")
}

func TestRecommendEmptyCatalogWithCategory(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(10))

	reply, ok := r.recommendReply(context.Background(), entities.InboundMessage{
		Content: "recommend something category sandals",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, `"sandals"`)
}

func TestRecommendDiscountQualifier(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	base := at(10).AddDate(0, -6, 0)

	shallow := catalogProduct("S1", "Shallow", 200, 4, false, base)
	shallow.DiscountPrice = 180
	deep := catalogProduct("S2", "Deep", 200, 4, false, base)
	deep.DiscountPrice = 100
	plain := catalogProduct("S3", "Plain", 200, 4, false, base)
	deps.store.filtered = []entities.ProductRecord{shallow, deep, plain}

	reply, ok := r.recommendReply(context.Background(), entities.InboundMessage{
		Content: "recommend anything on sale",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "(On sale)")
	assert.Contains(t, reply, "1. Deep")
	assert.Contains(t, reply, "2. Shallow")
	assert.NotContains(t, reply, "Plain")
	assert.Contains(t, reply, "(🔴 Sale: 100 MAD)")
}

func TestRecommendDeclinesWithoutTrigger(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))

	_, ok := r.recommendReply(context.Background(), entities.InboundMessage{
		Content: "where is my package",
	}, entities.LocaleEnglish)
	assert.False(t, ok)
	assert.Zero(t, deps.store.calls["FindProductsByFilter"])
}
