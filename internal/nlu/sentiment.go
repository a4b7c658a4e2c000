package nlu

import (
	"strings"
	"unicode"

	"velya/internal/entities"
)

// AFINN-style valence lexicon covering the vocabulary customers use in
// store conversations. Scores sum per token; the thresholds match the
// buckets the archive reports on.
var valence = map[string]int{
	// english
	"good": 3, "great": 3, "excellent": 3, "amazing": 4, "awesome": 4,
	"love": 3, "like": 2, "thanks": 2, "thank": 2, "perfect": 3,
	"happy": 3, "nice": 3, "best": 3, "fast": 1, "helpful": 2,
	"bad": -3, "terrible": -3, "awful": -3, "hate": -3, "slow": -2,
	"angry": -3, "disappointed": -2, "problem": -2, "broken": -2,
	"refund": -1, "complaint": -2, "worst": -3, "late": -1, "never": -1,
	// french
	"bien": 2, "bon": 2, "super": 3, "merci": 2, "parfait": 3,
	"excellente": 3, "rapide": 1, "content": 2, "magnifique": 3,
	"mauvais": -3, "horrible": -3, "nul": -3, "lent": -2, "déçu": -2,
	"problème": -2, "cassé": -2, "jamais": -1, "retard": -1, "colère": -3,
	// arabic
	"شكرا": 2, "ممتاز": 3, "رائع": 3, "جميل": 2, "جيد": 2,
	"أحب": 3, "سعيد": 3, "ممتازة": 3, "شكراً": 2,
	"سيء": -3, "رديء": -3, "مشكلة": -2, "غاضب": -3, "متأخر": -1,
	"خايب": -3, "بطيء": -2, "مكسور": -2, "محبط": -2,
}

// ScoreSentiment buckets the polarity of the text. Token scores sum;
// above 0.5 is positive, below -0.5 negative, anything else neutral.
func ScoreSentiment(text string) entities.SentimentLabel {
	score := 0
	for _, tok := range tokenize(text) {
		score += valence[tok]
	}
	switch {
	case float64(score) > 0.5:
		return entities.SentimentPositive
	case float64(score) < -0.5:
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
