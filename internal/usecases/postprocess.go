package usecases

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"velya/internal/entities"
	"velya/internal/localization"
)

var (
	markupPattern     = regexp.MustCompile(`<[^>]*>`)
	blankLinesPattern = regexp.MustCompile(`\n\s*\n`)
	listItemPattern   = regexp.MustCompile(`(?m)^\s*(\d+)\.`)
	cutPointPattern   = regexp.MustCompile(`[.!؟。]\s`)
)

var terminalPunctuation = map[entities.Locale]*regexp.Regexp{
	entities.LocaleArabic:  regexp.MustCompile(`[.!؟»]$`),
	entities.LocaleFrench:  regexp.MustCompile(`[.!?»]$`),
	entities.LocaleEnglish: regexp.MustCompile(`[.!?]$`),
}

// PostProcessor normalizes generated replies into messenger-friendly
// text: markup stripped, length capped at a sentence boundary, and a
// terminal punctuation mark guaranteed.
type PostProcessor struct {
	maxLength int
	catalog   *localization.Catalog
	pick      localization.Picker
}

func NewPostProcessor(maxLength int, catalog *localization.Catalog, pick localization.Picker) *PostProcessor {
	if maxLength <= 0 {
		maxLength = 400
	}
	return &PostProcessor{maxLength: maxLength, catalog: catalog, pick: pick}
}

// Clean applies the full normalization pipeline for the locale.
func (p *PostProcessor) Clean(text string, locale entities.Locale) string {
	loc := locale.Resolve()

	cleaned := markupPattern.ReplaceAllString(text, "")
	cleaned = blankLinesPattern.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)

	bullet := " ✨"
	if loc != entities.LocaleArabic {
		bullet = " •"
	}
	cleaned = listItemPattern.ReplaceAllString(cleaned, " $1."+bullet)

	cleaned = p.truncate(cleaned)

	if !terminalPunctuation[loc].MatchString(cleaned) {
		cleaned += "..."
	}

	// Occasionally invite a follow-up, but never on long replies.
	if p.pick.Intn(2) == 0 && len([]rune(cleaned)) < 350 {
		cleaned += p.catalog.Render(localization.ReplyCloser, loc)
	}

	return cleaned
}

// truncate cuts oversized replies at the first sentence boundary in
// the window, or hard-cuts with an ellipsis when there is none.
func (p *PostProcessor) truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= p.maxLength {
		return text
	}

	window := string(runes[:p.maxLength])
	if loc := cutPointPattern.FindStringIndex(window); loc != nil {
		_, size := utf8.DecodeRuneInString(window[loc[0]:])
		return window[:loc[0]+size]
	}
	return string(runes[:p.maxLength-3]) + "..."
}
