package entities

import "time"

// InboundMessage is one user turn handed over by a transport.
type InboundMessage struct {
	From       string // opaque sender id, usually a phone number
	Content    string
	Platform   string // "whatsapp", "telegram", "web"
	ReceivedAt time.Time
}

// ReplySource records whether a reply came from a deterministic rule or
// from the generative fallback.
type ReplySource string

const (
	SourceRule     ReplySource = "rule"
	SourceFallback ReplySource = "fallback"
)

// GeneratedReply is the final text sent back to the transport.
type GeneratedReply struct {
	Body   string
	Source ReplySource
}

// InteractionRecord is one archived exchange. Created exactly once per
// processed message, never mutated.
type InteractionRecord struct {
	ID        string
	Sender    string
	Input     string
	Output    string
	Locale    Locale
	Sentiment SentimentLabel
	Timestamp time.Time
}
