package localization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"velya/internal/entities"
)

func TestRenderUnknownLocaleFallsBackToDefault(t *testing.T) {
	c := NewCatalog(FixedPicker(0))

	got := c.Render(GreetingMorning, entities.LocaleUnknown)
	assert.Equal(t, "صباح الخير 🌟", got)
}

func TestRenderFormatsArguments(t *testing.T) {
	c := NewCatalog(FixedPicker(0))

	got := c.Render(OrderListHeader, entities.LocaleEnglish, 4)
	assert.Equal(t, "📦 You have 4 order(s) registered:\n\n", got)
}

func TestRenderPicksVariantThroughPicker(t *testing.T) {
	first := NewCatalog(FixedPicker(0)).Render(OrderNone, entities.LocaleEnglish)
	second := NewCatalog(FixedPicker(1)).Render(OrderNone, entities.LocaleEnglish)

	variants := Variants(OrderNone, entities.LocaleEnglish)
	assert.Equal(t, variants[0], first)
	assert.Equal(t, variants[1], second)
}

func TestFormatMoneyDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "250", FormatMoney(250))
	assert.Equal(t, "99.9", FormatMoney(99.9))
	assert.Equal(t, "1600", FormatMoney(1600))
}

func TestFormatDateByLocale(t *testing.T) {
	d := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02/05/2025", FormatDate(entities.LocaleFrench, d))
	assert.Equal(t, "02/05/2025", FormatDate(entities.LocaleArabic, d))
	assert.Equal(t, "5/2/2025", FormatDate(entities.LocaleEnglish, d))
}

func TestStatusLabelFallsBackOnUnknownStatus(t *testing.T) {
	assert.Equal(t, "✅ Livré", StatusLabel(entities.LocaleFrench, "Delivered"))
	assert.Equal(t, "🔄", StatusLabel(entities.LocaleFrench, "mystery"))
}

func TestStockLabelThreshold(t *testing.T) {
	assert.Equal(t, "In stock", StockLabel(entities.LocaleEnglish, 6))
	assert.Equal(t, "Limited quantity!", StockLabel(entities.LocaleEnglish, 5))
}
