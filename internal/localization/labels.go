package localization

import (
	"strings"

	"velya/internal/entities"
)

var statusLabels = map[entities.Locale]map[string]string{
	entities.LocaleArabic: {
		"assigned":     "🛠️ قيد التحضير",
		"delivered":    "✅ تم التوصيل",
		"new":          "🆕 جديد",
		"out of stock": "⛔ نفذ من المخزن",
		"pending":      "⏳ قيد الانتظار",
		"return":       "↩️ استرجاع",
	},
	entities.LocaleFrench: {
		"assigned":     "🛠️ En préparation",
		"delivered":    "✅ Livré",
		"new":          "🆕 Nouveau",
		"out of stock": "⛔ Rupture de stock",
		"pending":      "⏳ En attente",
		"return":       "↩️ Retour",
	},
	entities.LocaleEnglish: {
		"assigned":     "🛠️ In preparation",
		"delivered":    "✅ Delivered",
		"new":          "🆕 New",
		"out of stock": "⛔ Out of stock",
		"pending":      "⏳ Pending",
		"return":       "↩️ Return",
	},
}

// StatusLabel maps a raw order status to its localized emoji label.
// Unrecognized statuses get a generic in-progress marker.
func StatusLabel(locale entities.Locale, status string) string {
	labels := statusLabels[locale.Resolve()]
	if label, ok := labels[strings.ToLower(strings.TrimSpace(status))]; ok {
		return label
	}
	return "🔄"
}

var fallbackStatuses = map[entities.Locale]string{
	entities.LocaleArabic:  "قيد المعالجة",
	entities.LocaleFrench:  "En traitement",
	entities.LocaleEnglish: "Processing",
}

// FallbackStatus names an order status when the record carries none.
func FallbackStatus(locale entities.Locale) string {
	return fallbackStatuses[locale.Resolve()]
}

var stockLabels = map[entities.Locale][2]string{
	entities.LocaleArabic:  {"متوفر", "كمية محدودة!"},
	entities.LocaleFrench:  {"En stock", "Bientôt épuisé!"},
	entities.LocaleEnglish: {"In stock", "Limited quantity!"},
}

// StockLabel summarizes availability. More than five units reads as in
// stock, anything less as limited.
func StockLabel(locale entities.Locale, stock int) string {
	pair := stockLabels[locale.Resolve()]
	if stock > 5 {
		return pair[0]
	}
	return pair[1]
}
