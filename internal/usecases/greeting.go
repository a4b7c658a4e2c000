package usecases

import (
	"context"
	"errors"

	"velya/internal/entities"
	"velya/internal/interfaces"
	"velya/internal/localization"
)

// greet answers salutations with a time-of-day greeting in the
// language the salutation was written in, personalized when the sender
// is a known client.
func (r *Resolver) greet(ctx context.Context, msg entities.InboundMessage, _ entities.Locale) (string, bool) {
	lang, ok := localization.MatchGreeting(msg.Content)
	if !ok {
		return "", false
	}

	var id localization.TemplateID
	switch hour := r.now().Hour(); {
	case hour < 12:
		id = localization.GreetingMorning
	case hour < 18:
		id = localization.GreetingAfternoon
	default:
		id = localization.GreetingEvening
	}
	greeting := r.catalog.Render(id, lang)

	if msg.From != "" {
		client, err := r.store.FindClientByPhone(ctx, msg.From)
		if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
			r.log.Warn("client lookup failed during greeting")
		}
		if client != nil && client.Name != "" {
			greeting += " " + client.Name
		}
	}

	greeting += r.catalog.Render(localization.GreetingHelpLine, lang)
	return greeting, true
}
