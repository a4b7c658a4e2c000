package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"velya/internal/entities"
)

func TestScoreSentimentBuckets(t *testing.T) {
	cases := []struct {
		text string
		want entities.SentimentLabel
	}{
		{"the shoes are amazing, thank you", entities.SentimentPositive},
		{"merci, livraison rapide et produit parfait", entities.SentimentPositive},
		{"شكرا المنتج ممتاز", entities.SentimentPositive},
		{"terrible service, my package is broken", entities.SentimentNegative},
		{"service horrible, je suis déçu", entities.SentimentNegative},
		{"المنتج سيء والتوصيل متأخر", entities.SentimentNegative},
		{"what sizes do you have", entities.SentimentNeutral},
		{"", entities.SentimentNeutral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ScoreSentiment(tc.text), "text: %q", tc.text)
	}
}

func TestScoreSentimentMixedLeansOnSum(t *testing.T) {
	// good (+3) outweighed by terrible (-3) and broken (-2)
	got := ScoreSentiment("good shoes but terrible delivery and a broken box")
	assert.Equal(t, entities.SentimentNegative, got)
}
