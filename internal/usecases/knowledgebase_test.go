package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velya/internal/entities"
)

func TestFAQExactMatchReturnsStoredAnswerVerbatim(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleArabic, at(10))
	deps.store.exactFAQ = &entities.KnowledgeEntry{
		Question: "ما هي سياسة الإرجاع؟",
		Answer:   "يمكنك إرجاع المنتج خلال 7 أيام من الاستلام.",
		Locale:   entities.LocaleArabic,
	}

	reply, ok := r.faqReply(context.Background(), entities.InboundMessage{
		Content: "ما هي سياسة الإرجاع؟",
	}, entities.LocaleArabic)

	require.True(t, ok)
	assert.Equal(t, "يمكنك إرجاع المنتج خلال 7 أيام من الاستلام.", reply)
	assert.Zero(t, deps.store.calls["FindSimilarFAQs"])
}

func TestFAQSingleSimilarMatchAnswersDirectly(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	deps.store.similar = []entities.KnowledgeEntry{
		{Question: "what payment methods do you accept", Answer: "We accept cash on delivery and bank cards."},
	}

	reply, ok := r.faqReply(context.Background(), entities.InboundMessage{
		Content: "which payment methods do you accept",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Equal(t, "We accept cash on delivery and bank cards.", reply)
}

func TestFAQMultipleMatchesListAtMostThree(t *testing.T) {
	r, deps := newTestResolver(t, entities.LocaleEnglish, at(10))
	deps.store.similar = []entities.KnowledgeEntry{
		{Question: "how do I return a product", Answer: "a1"},
		{Question: "how do I exchange a product", Answer: "a2"},
		{Question: "how do I cancel a product order", Answer: "a3"},
		{Question: "how do I track a product order", Answer: "a4"},
	}

	reply, ok := r.faqReply(context.Background(), entities.InboundMessage{
		Content: "how do I return",
	}, entities.LocaleEnglish)

	require.True(t, ok)
	assert.Contains(t, reply, "I found several similar questions")
	assert.Contains(t, reply, "1. how do I return a product")
	assert.Contains(t, reply, "2. how do I exchange a product")
	assert.Contains(t, reply, "3. how do I cancel a product order")
	assert.NotContains(t, reply, "how do I track a product order")
	assert.NotContains(t, reply, "a1")
}

func TestFAQNoMatchDeclines(t *testing.T) {
	r, _ := newTestResolver(t, entities.LocaleEnglish, at(10))

	_, ok := r.faqReply(context.Background(), entities.InboundMessage{
		Content: "tell me a story",
	}, entities.LocaleEnglish)
	assert.False(t, ok)
}
