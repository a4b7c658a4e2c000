package usecases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"velya/internal/entities"
	"velya/internal/localization"
)

func newPost(pick localization.Picker) *PostProcessor {
	return NewPostProcessor(400, localization.NewCatalog(pick), pick)
}

func TestCleanStripsMarkupAndBlankLines(t *testing.T) {
	p := newPost(localization.FixedPicker(1))

	got := p.Clean("<b>Hello</b> there.\n\n\n\nSecond paragraph.", entities.LocaleEnglish)
	assert.Equal(t, "Hello there.\n\nSecond paragraph.", got)
}

func TestCleanCapsLengthAtSentenceBoundary(t *testing.T) {
	p := newPost(localization.FixedPicker(1))

	long := "This is the first sentence. " + strings.Repeat("pad ", 150)
	got := p.Clean(long, entities.LocaleEnglish)
	assert.Equal(t, "This is the first sentence.", got)
}

func TestCleanHardCutsWithoutBoundary(t *testing.T) {
	p := newPost(localization.FixedPicker(1))

	long := strings.Repeat("a", 500)
	got := p.Clean(long, entities.LocaleEnglish)
	assert.LessOrEqual(t, len([]rune(got)), 400)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestCleanEnsuresTerminalPunctuation(t *testing.T) {
	p := newPost(localization.FixedPicker(1))

	got := p.Clean("No punctuation here", entities.LocaleEnglish)
	assert.True(t, strings.HasSuffix(got, "..."))

	got = p.Clean("Already ends well.", entities.LocaleEnglish)
	assert.True(t, strings.HasSuffix(got, "."))
}

func TestCleanArabicQuestionMarkIsTerminal(t *testing.T) {
	p := newPost(localization.FixedPicker(1))

	got := p.Clean("هل تريد المزيد؟", entities.LocaleArabic)
	assert.Equal(t, "هل تريد المزيد؟", got)
}

func TestCleanAppendsCloserOnShortReplies(t *testing.T) {
	p := newPost(localization.FixedPicker(0))

	got := p.Clean("Short answer.", entities.LocaleEnglish)
	closers := localization.Variants(localization.ReplyCloser, entities.LocaleEnglish)
	assert.True(t, strings.HasSuffix(got, closers[0]))
}

func TestCleanNeverAppendsCloserOnLongReplies(t *testing.T) {
	p := newPost(localization.FixedPicker(0))

	long := strings.Repeat("word ", 76) + "end." // over 350 characters
	got := p.Clean(long, entities.LocaleEnglish)
	for _, closer := range localization.Variants(localization.ReplyCloser, entities.LocaleEnglish) {
		assert.NotContains(t, got, strings.TrimSpace(closer))
	}
}

func TestCleanRewritesNumberedLists(t *testing.T) {
	p := newPost(localization.FixedPicker(1))

	got := p.Clean("1. First item.\n2. Second item.", entities.LocaleEnglish)
	assert.Contains(t, got, "1. •")
	assert.Contains(t, got, "2. •")

	got = p.Clean("1. عنصر أول.", entities.LocaleArabic)
	assert.Contains(t, got, "1. ✨")
}
