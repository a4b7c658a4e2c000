package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"velya/internal/entities"
)

func TestDetectArabicScript(t *testing.T) {
	d := NewDetector()

	locale, confidence := d.Detect("السلام عليكم، أريد معرفة حالة طلبي من فضلك")
	assert.Equal(t, entities.LocaleArabic, locale)
	assert.Equal(t, 1.0, confidence)
}

func TestDetectFrench(t *testing.T) {
	d := NewDetector()

	locale, _ := d.Detect("Bonjour, je voudrais savoir où est ma commande s'il vous plaît")
	assert.Equal(t, entities.LocaleFrench, locale)
}

func TestDetectEnglish(t *testing.T) {
	d := NewDetector()

	locale, _ := d.Detect("The delivery was quick and the shoes fit perfectly, thank you")
	assert.Equal(t, entities.LocaleEnglish, locale)
}

func TestDetectEmptyTextIsUnknown(t *testing.T) {
	d := NewDetector()

	locale, confidence := d.Detect("   ")
	assert.Equal(t, entities.LocaleUnknown, locale)
	assert.Zero(t, confidence)
}

func TestDetectMixedScriptPrefersArabic(t *testing.T) {
	d := NewDetector()

	locale, _ := d.Detect("salam خويا")
	assert.Equal(t, entities.LocaleArabic, locale)
}
