package usecases

import (
	"context"
	"strings"

	"velya/internal/entities"
	"velya/internal/localization"
)

// orderReply handles order questions for identified senders. A status
// request quoting a known reference gets a detailed status block;
// anything else gets a summary of the most recent orders.
func (r *Resolver) orderReply(ctx context.Context, msg entities.InboundMessage, locale entities.Locale) (string, bool) {
	if msg.From == "" || !localization.IsOrderRequest(msg.Content, locale) {
		return "", false
	}

	history, err := r.store.FindOrderHistory(ctx, msg.From)
	if err != nil {
		r.log.Warn("order history lookup failed")
		return "", false
	}

	if len(history) == 0 {
		return r.catalog.Render(localization.OrderNone, locale), true
	}

	if localization.IsStatusRequest(msg.Content, locale) {
		if ref, ok := localization.ExtractOrderReference(msg.Content, locale); ok {
			for _, entry := range history {
				if strings.Contains(entry.Reference, ref) {
					return r.orderStatusDetail(entry, locale), true
				}
			}
			// unknown reference falls through to the summary
		}
	}

	return r.orderSummary(history, locale), true
}

func (r *Resolver) orderStatusDetail(entry entities.OrderHistoryEntry, locale entities.Locale) string {
	status := localization.StatusLabel(locale, entry.Order.Status)

	var b strings.Builder
	b.WriteString(r.catalog.Render(localization.OrderStatusHeader, locale, entry.Reference, status))

	if entry.Order.ShippedAt != nil {
		b.WriteString(r.catalog.Render(localization.OrderStatusShipped, locale,
			localization.FormatDate(locale, *entry.Order.ShippedAt)))
	}
	if entry.Order.DeliveredAt != nil {
		b.WriteString(r.catalog.Render(localization.OrderStatusDelivery, locale,
			localization.FormatDate(locale, *entry.Order.DeliveredAt)))
	}
	if entry.Order.TrackingNumber != "" {
		b.WriteString(r.catalog.Render(localization.OrderStatusTracking, locale, entry.Order.TrackingNumber))
	}

	b.WriteString(r.catalog.Render(localization.OrderStatusFollowUp, locale))
	return b.String()
}

func (r *Resolver) orderSummary(history []entities.OrderHistoryEntry, locale entities.Locale) string {
	var b strings.Builder
	b.WriteString(r.catalog.Render(localization.OrderListHeader, locale, len(history)))

	shown := history
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for i, entry := range shown {
		rawStatus := entry.Order.Status
		if rawStatus == "" {
			rawStatus = localization.FallbackStatus(locale)
		}
		b.WriteString(r.catalog.Render(localization.OrderListItem, locale,
			i+1, entry.Reference, entry.ProductName,
			localization.StatusLabel(locale, entry.Order.Status), rawStatus))

		if entry.Order.ShippedAt != nil {
			b.WriteString(r.catalog.Render(localization.OrderListShipped, locale,
				localization.FormatDate(locale, *entry.Order.ShippedAt)))
		}
		if entry.Order.DeliveredAt != nil {
			b.WriteString(r.catalog.Render(localization.OrderListDelivered, locale,
				localization.FormatDate(locale, *entry.Order.DeliveredAt)))
		}
		b.WriteByte('\n')
	}

	if len(history) > 3 {
		b.WriteString(r.catalog.Render(localization.OrderListMore, locale, len(history)-3))
	}

	b.WriteString(r.catalog.Render(localization.OrderSuggestion, locale))
	return b.String()
}
