package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velya/internal/entities"
	"velya/internal/localization"
)

func historyEntry(ref, product, status string, createdAt time.Time) entities.OrderHistoryEntry {
	return entities.OrderHistoryEntry{
		Reference:   ref,
		ProductName: product,
		Quantity:    1,
		UnitPrice:   250,
		LineTotal:   250,
		Order: entities.OrderRecord{
			Status:    status,
			CreatedAt: createdAt,
		},
	}
}

func TestOrderNoHistoryUsesCannedReply(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleFrench, at(10))

	reply, ok := r.orderReply(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "où est ma commande",
	}, entities.LocaleFrench)

	require.True(t, ok)
	assert.Contains(t, localization.Variants(localization.OrderNone, entities.LocaleFrench), reply)
}

func TestOrderAnonymousSenderDeclines(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleFrench, at(10))
	deps.store.history = []entities.OrderHistoryEntry{historyEntry("CMD1", "Sneakers", "pending", at(10))}

	_, ok := r.orderReply(context.Background(), entities.InboundMessage{
		From:    "",
		Content: "où est ma commande",
	}, entities.LocaleFrench)
	assert.False(t, ok)
	assert.Zero(t, deps.store.calls["FindOrderHistory"])
}

func TestOrderStatusDetailForQuotedReference(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleFrench, at(10))
	shipped := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	entry := historyEntry("CMD42X", "Sneakers", "assigned", at(10))
	entry.Order.ShippedAt = &shipped
	entry.Order.TrackingNumber = "TRK-889"
	deps.store.history = []entities.OrderHistoryEntry{entry}

	reply, ok := r.orderReply(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "où en est la livraison ref CMD42X",
	}, entities.LocaleFrench)

	require.True(t, ok)
	assert.Contains(t, reply, "📦 Statut de la commande CMD42X")
	assert.Contains(t, reply, "🛠️ En préparation")
	assert.Contains(t, reply, "📅 Date d'expédition: 02/05/2025")
	assert.Contains(t, reply, "📦 Numéro de suivi: TRK-889")
	assert.Contains(t, reply, "Besoin de plus d'informations sur cette commande ?")
}

func TestOrderUnknownReferenceFallsBackToSummary(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	deps.store.history = []entities.OrderHistoryEntry{
		historyEntry("CMD1", "Sneakers", "pending", at(10)),
	}

	reply, ok := r.orderReply(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "what is the status of order NOPE999",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "You have 1 order(s) registered")
	assert.Contains(t, reply, "CMD1")
}

func TestOrderSummaryCapsAtThreeWithOverflow(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	deps.store.history = []entities.OrderHistoryEntry{
		historyEntry("CMD1", "Sneakers", "pending", at(10)),
		historyEntry("CMD2", "Boots", "delivered", at(9)),
		historyEntry("CMD3", "Loafers", "new", at(8)),
		historyEntry("CMD4", "Sandals", "return", at(7)),
		historyEntry("CMD5", "Mules", "assigned", at(6)),
	}

	reply, ok := r.orderReply(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "show me my orders please",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "You have 5 order(s) registered")
	assert.Contains(t, reply, "CMD1")
	assert.Contains(t, reply, "CMD3")
	assert.NotContains(t, reply, "CMD4")
	assert.Contains(t, reply, "2 more order(s) not shown")
}
