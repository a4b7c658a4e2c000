package localization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"velya/internal/entities"
)

func TestMatchGreetingAcrossLanguages(t *testing.T) {
	lang, ok := MatchGreeting("Salam, labas?")
	assert.True(t, ok)
	assert.Equal(t, entities.LocaleArabic, lang)

	lang, ok = MatchGreeting("bonsoir madame")
	assert.True(t, ok)
	assert.Equal(t, entities.LocaleFrench, lang)

	lang, ok = MatchGreeting("hey there")
	assert.True(t, ok)
	assert.Equal(t, entities.LocaleEnglish, lang)

	_, ok = MatchGreeting("where is my parcel")
	assert.False(t, ok)
}

func TestExtractOrderReference(t *testing.T) {
	ref, ok := ExtractOrderReference("what is the status of order CMD123", entities.LocaleEnglish)
	assert.True(t, ok)
	assert.Equal(t, "CMD123", ref)

	_, ok = ExtractOrderReference("what is the status", entities.LocaleEnglish)
	assert.False(t, ok)
}

func TestExtractBudget(t *testing.T) {
	raw, ok := ExtractBudget("recommande-moi des chaussures budget 500", entities.LocaleFrench)
	assert.True(t, ok)
	assert.Equal(t, "500", raw)

	_, ok = ExtractBudget("recommande-moi des chaussures", entities.LocaleFrench)
	assert.False(t, ok)
}

func TestFeatureFlagsMixedLanguages(t *testing.T) {
	isNew, discount, popular, best := FeatureFlags("recommend the best nouveau items on sale")
	assert.True(t, isNew)
	assert.True(t, discount)
	assert.False(t, popular)
	assert.True(t, best)
}

func TestExtractCategoryArabic(t *testing.T) {
	cat, ok := ExtractCategory("عروض فئة أحذية رياضية", entities.LocaleArabic)
	assert.True(t, ok)
	assert.Equal(t, "أحذية رياضية", cat)
}
