package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"velya/internal/entities"
	"velya/internal/interfaces"
	"velya/internal/localization"
	"velya/internal/nlu"
)

// LanguageDetector classifies text into a supported locale with a
// confidence in [0,1].
type LanguageDetector interface {
	Detect(text string) (entities.Locale, float64)
}

// Exchange is the outcome of resolving one inbound message. Archived
// receives exactly one value once the interaction record has been
// written (or failed to write).
type Exchange struct {
	Reply     entities.GeneratedReply
	Locale    entities.Locale
	Sentiment entities.SentimentLabel
	Archived  <-chan error
}

// Resolver runs the staged reply cascade: greeting, FAQ, orders,
// product info, recommendations, then the generative fallback. The
// first stage that produces a reply wins.
type Resolver struct {
	store    interfaces.KnowledgeStore
	gen      interfaces.TextGenerator
	archive  interfaces.InteractionArchive
	detector LanguageDetector
	catalog  *localization.Catalog
	pick     localization.Picker
	post     *PostProcessor
	log      *zap.Logger

	faqThreshold float64
	now          func() time.Time
}

type ResolverOptions struct {
	Store        interfaces.KnowledgeStore
	Generator    interfaces.TextGenerator
	Archive      interfaces.InteractionArchive
	Detector     LanguageDetector
	Catalog      *localization.Catalog
	Picker       localization.Picker
	Post         *PostProcessor
	Logger       *zap.Logger
	FAQThreshold float64
	Now          func() time.Time
}

func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Picker == nil {
		opts.Picker = localization.NewRandomPicker()
	}
	if opts.Catalog == nil {
		opts.Catalog = localization.NewCatalog(opts.Picker)
	}
	if opts.Post == nil {
		opts.Post = NewPostProcessor(400, opts.Catalog, opts.Picker)
	}
	if opts.FAQThreshold <= 0 {
		opts.FAQThreshold = 0.6
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Resolver{
		store:        opts.Store,
		gen:          opts.Generator,
		archive:      opts.Archive,
		detector:     opts.Detector,
		catalog:      opts.Catalog,
		pick:         opts.Picker,
		post:         opts.Post,
		log:          opts.Logger,
		faqThreshold: opts.FAQThreshold,
		now:          opts.Now,
	}
}

// Resolve produces the reply for one inbound message and archives the
// exchange in the background.
func (r *Resolver) Resolve(ctx context.Context, msg entities.InboundMessage) Exchange {
	locale, confidence := r.detector.Detect(msg.Content)
	sentiment := nlu.ScoreSentiment(msg.Content)

	r.log.Debug("message classified",
		zap.String("sender", msg.From),
		zap.String("locale", string(locale)),
		zap.Float64("confidence", confidence),
		zap.String("sentiment", string(sentiment)))

	reply := r.resolveReply(ctx, msg, locale)

	archived := make(chan error, 1)
	rec := entities.InteractionRecord{
		ID:        uuid.NewString(),
		Sender:    msg.From,
		Input:     msg.Content,
		Output:    reply.Body,
		Locale:    locale,
		Sentiment: sentiment,
		Timestamp: r.now(),
	}
	go func() {
		archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		err := r.archive.Record(archiveCtx, rec)
		if err != nil {
			r.log.Error("failed to archive interaction",
				zap.String("sender", rec.Sender),
				zap.Error(err))
		}
		archived <- err
	}()

	return Exchange{
		Reply:     reply,
		Locale:    locale,
		Sentiment: sentiment,
		Archived:  archived,
	}
}

func (r *Resolver) resolveReply(ctx context.Context, msg entities.InboundMessage, locale entities.Locale) entities.GeneratedReply {
	type stage struct {
		name string
		fn   func(context.Context, entities.InboundMessage, entities.Locale) (string, bool)
	}
	stages := []stage{
		{"greeting", r.greet},
		{"faq", r.faqReply},
		{"orders", r.orderReply},
		{"products", r.productReply},
		{"recommendation", r.recommendReply},
	}

	for _, st := range stages {
		if reply, ok := st.fn(ctx, msg, locale); ok {
			r.log.Debug("stage produced reply", zap.String("stage", st.name))
			return entities.GeneratedReply{Body: reply, Source: entities.SourceRule}
		}
	}

	return entities.GeneratedReply{Body: r.generate(ctx, msg, locale), Source: entities.SourceFallback}
}

// generate asks the model and never propagates its failure: an
// exhausted or broken generative service degrades to a canned apology.
func (r *Resolver) generate(ctx context.Context, msg entities.InboundMessage, locale entities.Locale) string {
	content, err := r.gen.Complete(ctx, msg.Content, locale)
	if err != nil {
		r.log.Warn("generative fallback failed", zap.Error(err))
		return r.catalog.Render(localization.FallbackApology, locale)
	}
	return r.post.Clean(content, locale)
}
