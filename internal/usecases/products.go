package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"velya/internal/entities"
	"velya/internal/interfaces"
	"velya/internal/localization"
)

// productReply covers three product questions: what the sender has
// bought, how to use a product, and the full detail sheet. Each
// sub-path needs its own trigger on top of the product keyword gate.
func (r *Resolver) productReply(ctx context.Context, msg entities.InboundMessage, locale entities.Locale) (string, bool) {
	if !localization.IsProductRequest(msg.Content, locale) {
		return "", false
	}

	if msg.From != "" && localization.IsQuantityRequest(msg.Content, locale) {
		return r.purchaseSummary(ctx, msg.From, locale)
	}

	if localization.IsUsageRequest(msg.Content, locale) {
		if name, ok := localization.ExtractUsageProductName(msg.Content, locale); ok {
			return r.usageInstructions(ctx, name, locale), true
		}
	}

	if name, ok := localization.ExtractProductName(msg.Content, locale); ok {
		return r.productDetail(ctx, name, locale), true
	}

	return "", false
}

func (r *Resolver) purchaseSummary(ctx context.Context, phone string, locale entities.Locale) (string, bool) {
	history, err := r.store.FindOrderHistory(ctx, phone)
	if err != nil {
		r.log.Warn("purchase history lookup failed")
		return "", false
	}
	if len(history) == 0 {
		return r.catalog.Render(localization.PurchasesEmpty, locale), true
	}

	var b strings.Builder
	b.WriteString(r.catalog.Render(localization.PurchasesHeader, locale))

	shown := history
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for i, entry := range shown {
		b.WriteString(r.catalog.Render(localization.PurchasesItem, locale,
			i+1, entry.ProductName, entry.Quantity,
			localization.FormatMoney(entry.UnitPrice),
			localization.FormatMoney(entry.LineTotal)))
		if entry.Quantity < 3 {
			b.WriteString(r.catalog.Render(localization.PurchasesLowQty, locale))
		}
		b.WriteByte('\n')
	}

	if len(history) > 5 {
		b.WriteString(r.catalog.Render(localization.PurchasesMore, locale, len(history)-5))
	}

	var total float64
	for _, entry := range history {
		total += entry.LineTotal
	}
	b.WriteString(r.catalog.Render(localization.PurchasesTotal, locale, localization.FormatMoney(total)))

	b.WriteString(r.catalog.Render(localization.PurchasesSuggestion, locale))
	return b.String(), true
}

func (r *Resolver) usageInstructions(ctx context.Context, name string, locale entities.Locale) string {
	product, err := r.store.FindProductByNameOrKeyword(ctx, name)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		r.log.Warn("product lookup failed")
	}
	if product == nil || product.UsageNotes == "" {
		return r.catalog.Render(localization.UsageNotFound, locale, name)
	}
	return r.catalog.Render(localization.UsageFound, locale, product.Name, product.UsageNotes)
}

func (r *Resolver) productDetail(ctx context.Context, name string, locale entities.Locale) string {
	product, err := r.store.FindProductByNameOrKeyword(ctx, name)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		r.log.Warn("product lookup failed")
	}
	if product == nil {
		return r.catalog.Render(localization.ProductNotFound, locale, name)
	}

	var b strings.Builder
	b.WriteString(r.catalog.Render(localization.ProductHeader, locale, product.Name))
	b.WriteString(r.catalog.Render(localization.ProductDescription, locale, product.Description))

	if product.UsageNotes != "" {
		b.WriteString(r.catalog.Render(localization.ProductUsageTips, locale, product.UsageNotes))
	}

	b.WriteString(r.catalog.Render(localization.ProductPrice, locale, localization.FormatMoney(product.Price)))

	if product.HasDiscount() {
		percent := int(math.Round((1 - product.DiscountPrice/product.Price) * 100))
		b.WriteString(r.catalog.Render(localization.ProductDiscount, locale,
			localization.FormatMoney(product.DiscountPrice), percent))
	}

	b.WriteString(r.catalog.Render(localization.ProductCategory, locale, product.Category))

	if product.Color != "" {
		b.WriteString(r.catalog.Render(localization.ProductColors, locale, product.Color))
	}
	if product.Size != "" {
		b.WriteString(r.catalog.Render(localization.ProductSizes, locale, product.Size))
	}
	if product.Brand != "" {
		b.WriteString(r.catalog.Render(localization.ProductBrand, locale, product.Brand))
	}
	if product.Stock > 0 {
		b.WriteString(r.catalog.Render(localization.ProductStock, locale,
			localization.StockLabel(locale, product.Stock)))
	}

	b.WriteString(r.catalog.Render(localization.ProductCTA, locale))
	return b.String()
}

// ratingLabel keeps a single decimal the way the storefront displays
// ratings.
func ratingLabel(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}
