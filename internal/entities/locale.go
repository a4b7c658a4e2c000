package entities

// Locale is the closed set of languages the assistant replies in.
type Locale string

const (
	LocaleArabic  Locale = "arabic"
	LocaleFrench  Locale = "french"
	LocaleEnglish Locale = "english"
	LocaleUnknown Locale = "unknown"
)

// DefaultLocale is used whenever detection yields unknown. Arabic is the
// store's primary customer base.
const DefaultLocale = LocaleArabic

// Resolve maps unknown to the default locale so downstream code never
// has to branch on it.
func (l Locale) Resolve() Locale {
	if l == LocaleArabic || l == LocaleFrench || l == LocaleEnglish {
		return l
	}
	return DefaultLocale
}

// SentimentLabel buckets the polarity of an inbound message.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)
