package usecases

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"velya/internal/entities"
	"velya/internal/localization"
)

const recommendationLimit = 5

// recommendReply suggests products matching the request's category,
// budget and qualifier words. Ranking happens here rather than in SQL
// so the precedence between qualifiers stays deterministic.
func (r *Resolver) recommendReply(ctx context.Context, msg entities.InboundMessage, locale entities.Locale) (string, bool) {
	if !localization.IsRecommendationRequest(msg.Content, locale) {
		return "", false
	}

	category, _ := localization.ExtractCategory(msg.Content, locale)
	var maxPrice float64
	if raw, ok := localization.ExtractBudget(msg.Content, locale); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			maxPrice = float64(v)
		}
	}
	isNew, discount, popular, best := localization.FeatureFlags(msg.Content)

	products, err := r.store.FindProductsByFilter(ctx, entities.ProductFilter{
		Category: category,
		MaxPrice: maxPrice,
		New:      isNew,
		Discount: discount,
		Popular:  popular,
		Best:     best,
		Limit:    recommendationLimit,
	})
	if err != nil {
		r.log.Warn("recommendation query failed")
		return "", false
	}

	products = rankRecommendations(products, isNew, discount, popular, best, maxPrice, r.now())

	if len(products) == 0 {
		return r.noRecommendations(category, maxPrice, locale), true
	}

	return r.recommendationList(products, category, maxPrice, isNew, discount, best, locale), true
}

// rankRecommendations filters by the qualifier flags and budget, then
// orders by the strongest qualifier: recency for new, rating for best,
// discount depth for promotions, featured-first otherwise.
func rankRecommendations(products []entities.ProductRecord, isNew, discount, popular, best bool, maxPrice float64, now time.Time) []entities.ProductRecord {
	recentCutoff := now.AddDate(0, 0, -30)

	filtered := products[:0:0]
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		if isNew && p.CreatedAt.Before(recentCutoff) {
			continue
		}
		if discount && !p.HasDiscount() {
			continue
		}
		if popular && !p.IsFeatured {
			continue
		}
		if best && p.Rating < 4 {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch {
		case isNew:
			return a.CreatedAt.After(b.CreatedAt)
		case best:
			return a.Rating > b.Rating
		case discount:
			return discountDepth(a) > discountDepth(b)
		default:
			return a.IsFeatured && !b.IsFeatured
		}
	})

	if len(filtered) > recommendationLimit {
		filtered = filtered[:recommendationLimit]
	}
	return filtered
}

func discountDepth(p entities.ProductRecord) float64 {
	if !p.HasDiscount() {
		return 0
	}
	return 1 - p.DiscountPrice/p.Price
}

func (r *Resolver) noRecommendations(category string, maxPrice float64, locale entities.Locale) string {
	budgetClause := ""
	if maxPrice > 0 {
		budgetClause = r.catalog.Render(localization.RecoBudgetClause, locale, localization.FormatMoney(maxPrice))
	}
	if category != "" {
		return r.catalog.Render(localization.RecoNoneCategory, locale, category, budgetClause)
	}
	return r.catalog.Render(localization.RecoNone, locale, budgetClause)
}

func (r *Resolver) recommendationList(products []entities.ProductRecord, category string, maxPrice float64, isNew, discount, best bool, locale entities.Locale) string {
	var b strings.Builder

	if category != "" {
		b.WriteString(r.catalog.Render(localization.RecoHeaderCategory, locale, category))
	} else {
		b.WriteString(r.catalog.Render(localization.RecoHeader, locale))
	}
	if maxPrice > 0 {
		b.WriteString(r.catalog.Render(localization.RecoSuffixBudget, locale, localization.FormatMoney(maxPrice)))
	}
	if isNew {
		b.WriteString(r.catalog.Render(localization.RecoSuffixNew, locale))
	}
	if discount {
		b.WriteString(r.catalog.Render(localization.RecoSuffixDiscount, locale))
	}
	if best {
		b.WriteString(r.catalog.Render(localization.RecoSuffixBest, locale))
	}
	b.WriteString(":\n\n")

	for i, p := range products {
		b.WriteString(strconv.Itoa(i+1) + ". " + p.Name + "\n")
		b.WriteString(r.catalog.Render(localization.RecoItemPrice, locale, localization.FormatMoney(p.Price)))
		if p.HasDiscount() {
			b.WriteString(r.catalog.Render(localization.RecoItemDiscount, locale, localization.FormatMoney(p.DiscountPrice)))
		}
		b.WriteByte('\n')
		b.WriteString(r.catalog.Render(localization.RecoItemRating, locale, ratingLabel(p.Rating)))
		if p.Description != "" {
			b.WriteString(r.catalog.Render(localization.RecoItemShortDesc, locale, shortDescription(p.Description)))
		}
		b.WriteString(r.catalog.Render(localization.RecoItemRef, locale, p.SKU))
	}

	b.WriteString(r.catalog.Render(localization.RecoCTA, locale))
	return b.String()
}

// shortDescription keeps the first line of a description, capped so a
// five-item list stays readable on a phone.
func shortDescription(desc string) string {
	if i := strings.IndexByte(desc, '\n'); i >= 0 {
		desc = desc[:i]
	}
	runes := []rune(desc)
	if len(runes) > 80 {
		return string(runes[:77]) + "..."
	}
	return desc
}
