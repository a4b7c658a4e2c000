package localization

import (
	"regexp"
	"strings"

	"velya/internal/entities"
)

// Keyword tables drive intent detection. Matching is substring based on
// the lower-cased message, mirroring how customers actually type.

var greetingWords = map[entities.Locale][]string{
	entities.LocaleArabic:  {"salam", "سلام", "مرحبا", "marhaba", "السلام عليكم", "اهلا", "أهلا", "هلا"},
	entities.LocaleFrench:  {"bonjour", "salut", "coucou", "hello", "hi", "bonsoir"},
	entities.LocaleEnglish: {"hello", "hi", "hey", "good morning", "good afternoon"},
}

var orderWords = map[entities.Locale][]string{
	entities.LocaleArabic:  {"طلب", "تتبع", "شحنة", "توصيل", "حالة الطلب", "رقم التتبع"},
	entities.LocaleFrench:  {"commande", "livraison", "colis", "commamd", "suivi", "statut", "numéro de suivi", "mes commandes"},
	entities.LocaleEnglish: {"order", "delivery", "package", "tracking", "status", "shipment"},
}

var statusWords = map[entities.Locale][]string{
	entities.LocaleArabic:  {"حالة", "تتبع", "توصيل"},
	entities.LocaleFrench:  {"statut", "suivi", "livraison"},
	entities.LocaleEnglish: {"status", "tracking", "delivery"},
}

var productWords = map[entities.Locale][]string{
	entities.LocaleArabic:  {"منتج", "كمية", "إجمالي", "كيفية", "استخدام", "وصف", "مواصفات", "سعر"},
	entities.LocaleFrench:  {"produit", "quantité", "total", "utiliser", "comment", "description", "spécification", "prix"},
	entities.LocaleEnglish: {"product", "quantity", "total", "use", "how", "description", "specification", "price"},
}

var quantityWords = map[entities.Locale][]string{
	entities.LocaleArabic:  {"كمية", "إجمالي", "كمية المطلوبة", "كمية الطلب", "كمية المنتجات"},
	entities.LocaleFrench:  {"quantité commandée", "total", "total commandé", "combien de"},
	entities.LocaleEnglish: {"quantity", "total", "how many", "ordered quantity"},
}

var usageWords = map[entities.Locale][]string{
	entities.LocaleArabic:  {"كيفية", "استخدام", "طريقة"},
	entities.LocaleFrench:  {"utiliser", "comment utiliser", "mode d'emploi"},
	entities.LocaleEnglish: {"use", "how use", "instructions"},
}

var recommendationWords = map[entities.Locale][]string{
	entities.LocaleArabic:  {"يوصي", "اقترح", "ينصح", "أفضل", "جديد", "عروض"},
	entities.LocaleFrench:  {"recommander", "suggérer", "proposer", "recommandation", "meilleur", "nouveau", "promo"},
	entities.LocaleEnglish: {"recommend", "suggest", "propose", "recommendation", "best", "new", "sale"},
}

var orderRefPatterns = map[entities.Locale]*regexp.Regexp{
	entities.LocaleArabic:  regexp.MustCompile(`(?i)(?:رقم|رمز|الطلب)\s*([a-zA-Z0-9]+)`),
	entities.LocaleFrench:  regexp.MustCompile(`(?i)(?:référence|ref|commande|statut de la commande)\s*([a-zA-Z0-9]+)`),
	entities.LocaleEnglish: regexp.MustCompile(`(?i)(?:reference|ref|order)\s*([a-zA-Z0-9]+)`),
}

var usageNamePatterns = map[entities.Locale]*regexp.Regexp{
	entities.LocaleArabic:  regexp.MustCompile(`(?i)(?:كيفية استخدام|كيفية|طريقة استخدام|طريقة)\s+(.+)`),
	entities.LocaleFrench:  regexp.MustCompile(`(?i)(?:comment utiliser le produit|comment utiliser produit|comment utiliser|utiliser|mode d'emploi)\s+(.+)`),
	entities.LocaleEnglish: regexp.MustCompile(`(?i)(?:how to use the product|how to use product|how use|instructions|use)\s+(.+)`),
}

var productNamePatterns = map[entities.Locale]*regexp.Regexp{
	entities.LocaleArabic:  regexp.MustCompile(`(?i)(?:منتج|شراء)\s+(.+)`),
	entities.LocaleFrench:  regexp.MustCompile(`(?i)(?:description produit|article|acheter|détails de produit|information produit|info produit)\s+(.+)`),
	entities.LocaleEnglish: regexp.MustCompile(`(?i)(?:product|item|buy)\s+(.+)`),
}

var categoryPatterns = map[entities.Locale]*regexp.Regexp{
	entities.LocaleArabic:  regexp.MustCompile(`(?i)(?:فئة|تصنيف|نوع|قسم)\s+(.+)`),
	entities.LocaleFrench:  regexp.MustCompile(`(?i)(?:categorie|catégorie|type|section)\s+(.+)`),
	entities.LocaleEnglish: regexp.MustCompile(`(?i)(?:category|type|section)\s+(.+)`),
}

var budgetPatterns = map[entities.Locale]*regexp.Regexp{
	entities.LocaleArabic:  regexp.MustCompile(`(?i)(?:ميزانية|حتى|بحد أقصى|سعر)\s*(\d+)`),
	entities.LocaleFrench:  regexp.MustCompile(`(?i)(?:budget|jusqu'à|maximum|prix)\s*(\d+)`),
	entities.LocaleEnglish: regexp.MustCompile(`(?i)(?:budget|up to|maximum|price)\s*(\d+)`),
}

// feature flag words are checked across all languages at once, the way
// customers mix languages mid-sentence.
var (
	newWords      = []string{"nouveau", "جديد", "new"}
	discountWords = []string{"promo", "خصم", "sale"}
	popularWords  = []string{"populaire", "شائع", "popular"}
	bestWords     = []string{"meilleur", "أفضل", "best"}
)

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// MatchGreeting reports whether the text contains a greeting in any
// supported language, and if so which language's greeting it was.
func MatchGreeting(text string) (entities.Locale, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, loc := range []entities.Locale{entities.LocaleArabic, entities.LocaleFrench, entities.LocaleEnglish} {
		if containsAny(lower, greetingWords[loc]) {
			return loc, true
		}
	}
	return entities.LocaleUnknown, false
}

func IsOrderRequest(text string, locale entities.Locale) bool {
	return containsAny(strings.ToLower(text), orderWords[locale.Resolve()])
}

func IsStatusRequest(text string, locale entities.Locale) bool {
	return containsAny(strings.ToLower(text), statusWords[locale.Resolve()])
}

func IsProductRequest(text string, locale entities.Locale) bool {
	return containsAny(strings.ToLower(text), productWords[locale.Resolve()])
}

func IsQuantityRequest(text string, locale entities.Locale) bool {
	return containsAny(strings.ToLower(text), quantityWords[locale.Resolve()])
}

func IsUsageRequest(text string, locale entities.Locale) bool {
	return containsAny(strings.ToLower(text), usageWords[locale.Resolve()])
}

func IsRecommendationRequest(text string, locale entities.Locale) bool {
	return containsAny(strings.ToLower(text), recommendationWords[locale.Resolve()])
}

// ExtractOrderReference pulls a quoted order reference out of the text.
func ExtractOrderReference(text string, locale entities.Locale) (string, bool) {
	return extractGroup(orderRefPatterns, text, locale)
}

// ExtractUsageProductName pulls the product name from a usage question.
func ExtractUsageProductName(text string, locale entities.Locale) (string, bool) {
	return extractGroup(usageNamePatterns, text, locale)
}

// ExtractProductName pulls the product name from a detail question.
func ExtractProductName(text string, locale entities.Locale) (string, bool) {
	return extractGroup(productNamePatterns, text, locale)
}

// ExtractCategory pulls a category name from a recommendation request.
func ExtractCategory(text string, locale entities.Locale) (string, bool) {
	return extractGroup(categoryPatterns, text, locale)
}

// ExtractBudget pulls a numeric budget cap from a recommendation request.
func ExtractBudget(text string, locale entities.Locale) (string, bool) {
	return extractGroup(budgetPatterns, text, locale)
}

func extractGroup(patterns map[entities.Locale]*regexp.Regexp, text string, locale entities.Locale) (string, bool) {
	re, ok := patterns[locale.Resolve()]
	if !ok {
		re = patterns[entities.DefaultLocale]
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// FeatureFlags extracts cross-language recommendation qualifiers.
func FeatureFlags(text string) (isNew, discount, popular, best bool) {
	lower := strings.ToLower(text)
	return containsAny(lower, newWords),
		containsAny(lower, discountWords),
		containsAny(lower, popularWords),
		containsAny(lower, bestWords)
}
