package nlu

import (
	"strings"

	"github.com/abadojack/whatlanggo"

	"velya/internal/entities"
)

// minConfidence below which detection reports unknown. Short messages
// in Latin script score low and are better handled by the default
// locale than by a wrong guess.
const minConfidence = 0.2

var whitelist = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Arb: true,
		whatlanggo.Fra: true,
		whatlanggo.Eng: true,
	},
}

// Detector classifies inbound text into one of the supported locales.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the locale of the text and a confidence in [0,1].
// Empty or unclassifiable text yields LocaleUnknown.
func (d *Detector) Detect(text string) (entities.Locale, float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.LocaleUnknown, 0
	}

	// Arabic script is unambiguous within the supported set; the
	// trigram model can misfire on very short Arabic messages.
	if containsArabicScript(text) {
		return entities.LocaleArabic, 1
	}

	info := whatlanggo.DetectWithOptions(text, whitelist)
	if info.Confidence < minConfidence {
		return entities.LocaleUnknown, info.Confidence
	}

	switch info.Lang {
	case whatlanggo.Arb:
		return entities.LocaleArabic, info.Confidence
	case whatlanggo.Fra:
		return entities.LocaleFrench, info.Confidence
	case whatlanggo.Eng:
		return entities.LocaleEnglish, info.Confidence
	default:
		return entities.LocaleUnknown, info.Confidence
	}
}

func containsArabicScript(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}
