package interfaces

import (
	"context"
	"errors"

	"velya/internal/entities"
)

// ErrNotFound signals a legitimate empty lookup result. Callers treat it
// as a normal outcome, not a failure.
var ErrNotFound = errors.New("not found")

// Messenger delivers an outbound reply over a transport.
type Messenger interface {
	SendMessage(to, content string) error
}

// KnowledgeStore is the read-only query surface over clients, orders,
// products, knowledge entries and confirmation links. All operations are
// side-effect-free and safe for concurrent use.
type KnowledgeStore interface {
	FindExactFAQ(ctx context.Context, question string, locale entities.Locale) (*entities.KnowledgeEntry, error)
	FindSimilarFAQs(ctx context.Context, question string, locale entities.Locale, threshold float64) ([]entities.KnowledgeEntry, error)
	FindClientByPhone(ctx context.Context, phone string) (*entities.ClientProfile, error)
	FindOrderHistory(ctx context.Context, phone string) ([]entities.OrderHistoryEntry, error)
	FindProductByNameOrKeyword(ctx context.Context, text string) (*entities.ProductRecord, error)
	FindProductsByFilter(ctx context.Context, filter entities.ProductFilter) ([]entities.ProductRecord, error)
}

// TextGenerator is the external generative service, reached only when
// every deterministic stage has declined.
type TextGenerator interface {
	Complete(ctx context.Context, userText string, locale entities.Locale) (string, error)
}

// InteractionArchive persists one exchange per processed message.
type InteractionArchive interface {
	Record(ctx context.Context, rec entities.InteractionRecord) error
}
