package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"velya/internal/entities"
)

func TestGreetingHourBuckets(t *testing.T) {
	cases := []struct {
		name    string
		hour    int
		content string
		want    string
	}{
		{"english morning", 9, "hey", "Good morning 😊"},
		{"english afternoon", 14, "hey", "Good afternoon 😊"},
		{"english evening", 20, "hey", "Good evening 😊"},
		{"french morning", 9, "bonjour", "Bonjour 👋"},
		{"french afternoon", 14, "bonjour", "Bon après-midi 👋"},
		{"french evening", 20, "bonsoir", "Bonsoir 👋"},
		{"arabic morning", 9, "سلام", "صباح الخير 🌟"},
		{"arabic afternoon", 14, "سلام", "مساء الخير 🌟"},
		{"arabic evening", 20, "مرحبا", "مساء الخير 🌟"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestResolver(t, entities.LocaleEnglish, at(tc.hour))
			reply, ok := r.greet(context.Background(), entities.InboundMessage{
				From:    "212600000001",
				Content: tc.content,
			}, entities.LocaleEnglish)
			assert.True(t, ok)
			assert.Contains(t, reply, tc.want)
		})
	}
}

func TestGreetingRepliesInSalutationLanguage(t *testing.T) {
	// detected locale is English but the salutation itself is Arabic,
	// so the reply follows the salutation
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(9))
	reply, ok := r.greet(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "سلام",
	}, entities.LocaleEnglish)
	assert.True(t, ok)
	assert.Contains(t, reply, "صباح الخير")
	assert.Contains(t, reply, "كيف يمكنني مساعدتك اليوم؟")
}

func TestGreetingPersonalizesKnownClient(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(9))
	deps.store.client = &entities.ClientProfile{Phone: "212600000001", Name: "Yassine"}

	reply, ok := r.greet(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "hey",
	}, entities.LocaleEnglish)
	assert.True(t, ok)
	assert.Contains(t, reply, "Good morning 😊 Yassine")
	assert.Contains(t, reply, "How can I help you today?")
}

func TestGreetingDeclinesNonSalutation(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(9))
	_, ok := r.greet(context.Background(), entities.InboundMessage{
		From:    "212600000001",
		Content: "my package never arrived",
	}, entities.LocaleEnglish)
	assert.False(t, ok)
}
