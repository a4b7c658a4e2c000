package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"velya/internal/entities"
	"velya/internal/interfaces"
	"velya/internal/localization"
)

// faqReply answers questions from the knowledge base. An exact match
// returns its stored answer verbatim; a single close match does too.
// Several close matches become a disambiguation list of up to three
// questions, which is itself a terminal reply.
func (r *Resolver) faqReply(ctx context.Context, msg entities.InboundMessage, locale entities.Locale) (string, bool) {
	exact, err := r.store.FindExactFAQ(ctx, msg.Content, locale)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		r.log.Warn("exact faq lookup failed")
		return "", false
	}
	if exact != nil {
		return exact.Answer, true
	}

	similar, err := r.store.FindSimilarFAQs(ctx, msg.Content, locale, r.faqThreshold)
	if err != nil {
		r.log.Warn("similar faq lookup failed")
		return "", false
	}

	switch {
	case len(similar) == 1:
		return similar[0].Answer, true
	case len(similar) > 1:
		var list strings.Builder
		for i, faq := range similar {
			if i == 3 {
				break
			}
			if i > 0 {
				list.WriteByte('\n')
			}
			fmt.Fprintf(&list, "%d. %s", i+1, faq.Question)
		}
		return r.catalog.Render(localization.FAQSimilarList, locale, list.String()), true
	}
	return "", false
}
