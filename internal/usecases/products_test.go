package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velya/internal/entities"
	"velya/internal/localization"
)

func TestPurchaseSummaryListsLinesAndTotal(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	deps.store.history = []entities.OrderHistoryEntry{
		{ProductName: "Runner Pro", Quantity: 2, UnitPrice: 300, LineTotal: 600},
		{ProductName: "City Loafer", Quantity: 5, UnitPrice: 200, LineTotal: 1000},
	}

	reply, ok := r.productReply(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "what quantity of products did I order in total",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "summary of your purchases")
	assert.Contains(t, reply, "Product 1: Runner Pro")
	assert.Contains(t, reply, "Quantity: 2 unit(s)")
	assert.Contains(t, reply, "Unit price: 300 MAD")
	assert.Contains(t, reply, "Low quantity")
	assert.Contains(t, reply, "Total purchase amount: 1600 MAD")
}

func TestPurchaseSummaryEmptyHistory(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(10))

	reply, ok := r.productReply(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "what quantity of products did I order",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, localization.Variants(localization.PurchasesEmpty, entities.LocaleEnglish), reply)
}

func TestUsageInstructionsFromProductNotes(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	deps.store.product = &entities.ProductRecord{
		Name:       "Leather Balm",
		UsageNotes: "Apply a thin layer and buff after 10 minutes.",
	}

	reply, ok := r.productReply(context.Background(), entities.InboundMessage{
		Content: "how use product Leather Balm",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "Leather Balm")
	assert.Contains(t, reply, "Apply a thin layer and buff after 10 minutes.")
}

func TestUsageInstructionsUnknownProduct(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(10))

	reply, ok := r.productReply(context.Background(), entities.InboundMessage{
		Content: "how use product Mystery Cream",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "Mystery Cream")
	assert.Contains(t, reply, "couldn't find instructions")
}

func TestProductDetailSheet(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	deps.store.product = &entities.ProductRecord{
		SKU:           "RUN-01",
		Name:          "Runner Pro",
		Description:   "Lightweight running shoe.",
		UsageNotes:    "Air dry only.",
		Price:         400,
		DiscountPrice: 300,
		Category:      "running",
		Color:         "black, white",
		Size:          "40-45",
		Brand:         "Velya",
		Stock:         12,
	}

	reply, ok := r.productReply(context.Background(), entities.InboundMessage{
		Content: "product Runner Pro description please",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "🌟 Details about Runner Pro")
	assert.Contains(t, reply, "Description: Lightweight running shoe.")
	assert.Contains(t, reply, "Usage tips: Air dry only.")
	assert.Contains(t, reply, "Price: 400 MAD")
	assert.Contains(t, reply, "Discount price: 300 MAD (25% off!)")
	assert.Contains(t, reply, "Category: running")
	assert.Contains(t, reply, "Available colors: black, white")
	assert.Contains(t, reply, "Brand: Velya")
	assert.Contains(t, reply, "Stock: In stock")
}

func TestProductDetailNotFound(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(10))

	reply, ok := r.productReply(context.Background(), entities.InboundMessage{
		Content: "product Ghost Shoe",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "Ghost Shoe")
}

func TestProductStageDeclinesWithoutTrigger(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(10))

	_, ok := r.productReply(context.Background(), entities.InboundMessage{
		Content: "good evening everyone",
	}, entities.LocaleEnglish)
	assert.False(t, ok)
}
