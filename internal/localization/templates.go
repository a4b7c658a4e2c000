package localization

import (
	"fmt"
	"strconv"
	"time"

	"velya/internal/entities"
)

// TemplateID names one reply fragment in the catalog.
type TemplateID string

const (
	GreetingMorning   TemplateID = "greeting.morning"
	GreetingAfternoon TemplateID = "greeting.afternoon"
	GreetingEvening   TemplateID = "greeting.evening"
	GreetingHelpLine  TemplateID = "greeting.help"

	FAQSimilarList TemplateID = "faq.similar"

	OrderNone           TemplateID = "orders.none"
	OrderStatusHeader   TemplateID = "orders.status.header"
	OrderStatusShipped  TemplateID = "orders.status.shipped"
	OrderStatusDelivery TemplateID = "orders.status.delivered"
	OrderStatusTracking TemplateID = "orders.status.tracking"
	OrderStatusFollowUp TemplateID = "orders.status.followup"
	OrderListHeader     TemplateID = "orders.list.header"
	OrderListItem       TemplateID = "orders.list.item"
	OrderListShipped    TemplateID = "orders.list.shipped"
	OrderListDelivered  TemplateID = "orders.list.delivered"
	OrderListMore       TemplateID = "orders.list.more"
	OrderSuggestion     TemplateID = "orders.suggestion"

	PurchasesEmpty      TemplateID = "purchases.empty"
	PurchasesHeader     TemplateID = "purchases.header"
	PurchasesItem       TemplateID = "purchases.item"
	PurchasesLowQty     TemplateID = "purchases.low"
	PurchasesMore       TemplateID = "purchases.more"
	PurchasesTotal      TemplateID = "purchases.total"
	PurchasesSuggestion TemplateID = "purchases.suggestion"

	UsageFound    TemplateID = "usage.found"
	UsageNotFound TemplateID = "usage.notfound"

	ProductHeader      TemplateID = "product.header"
	ProductDescription TemplateID = "product.description"
	ProductUsageTips   TemplateID = "product.usage"
	ProductPrice       TemplateID = "product.price"
	ProductDiscount    TemplateID = "product.discount"
	ProductCategory    TemplateID = "product.category"
	ProductColors      TemplateID = "product.colors"
	ProductSizes       TemplateID = "product.sizes"
	ProductBrand       TemplateID = "product.brand"
	ProductStock       TemplateID = "product.stock"
	ProductCTA         TemplateID = "product.cta"
	ProductNotFound    TemplateID = "product.notfound"

	RecoNoneCategory   TemplateID = "reco.none.category"
	RecoNone           TemplateID = "reco.none"
	RecoBudgetClause   TemplateID = "reco.budget.clause"
	RecoHeaderCategory TemplateID = "reco.header.category"
	RecoHeader         TemplateID = "reco.header"
	RecoSuffixBudget   TemplateID = "reco.suffix.budget"
	RecoSuffixNew      TemplateID = "reco.suffix.new"
	RecoSuffixDiscount TemplateID = "reco.suffix.discount"
	RecoSuffixBest     TemplateID = "reco.suffix.best"
	RecoItemPrice      TemplateID = "reco.item.price"
	RecoItemDiscount   TemplateID = "reco.item.discount"
	RecoItemRating     TemplateID = "reco.item.rating"
	RecoItemShortDesc  TemplateID = "reco.item.desc"
	RecoItemRef        TemplateID = "reco.item.ref"
	RecoCTA            TemplateID = "reco.cta"

	FallbackApology TemplateID = "fallback.apology"
	ReplyCloser     TemplateID = "reply.closer"
)

// Catalog renders localized reply fragments. Templates with several
// variants pick one through the configured Picker; single-variant
// templates render deterministically.
type Catalog struct {
	pick Picker
}

func NewCatalog(pick Picker) *Catalog {
	if pick == nil {
		pick = NewRandomPicker()
	}
	return &Catalog{pick: pick}
}

// Render formats the template for the resolved locale. A locale with no
// variants falls back to the default locale's variants.
func (c *Catalog) Render(id TemplateID, locale entities.Locale, args ...any) string {
	byLocale, ok := templates[id]
	if !ok {
		return ""
	}
	variants := byLocale[locale.Resolve()]
	if len(variants) == 0 {
		variants = byLocale[entities.DefaultLocale]
	}
	if len(variants) == 0 {
		return ""
	}
	v := variants[0]
	if len(variants) > 1 {
		v = variants[c.pick.Intn(len(variants))]
	}
	if len(args) == 0 {
		return v
	}
	return fmt.Sprintf(v, args...)
}

// Variants exposes the raw variant list for a template, used by tests
// asserting a reply is one of the allowed texts.
func Variants(id TemplateID, locale entities.Locale) []string {
	return templates[id][locale.Resolve()]
}

// FormatMoney prints amounts the way the storefront does, without
// trailing zeros.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDate renders dates in the regional convention of the locale.
func FormatDate(locale entities.Locale, t time.Time) string {
	if locale.Resolve() == entities.LocaleEnglish {
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	}
	return t.Format("02/01/2006")
}

var templates = map[TemplateID]map[entities.Locale][]string{
	GreetingMorning: {
		entities.LocaleArabic:  {"صباح الخير 🌟"},
		entities.LocaleFrench:  {"Bonjour 👋"},
		entities.LocaleEnglish: {"Good morning 😊"},
	},
	GreetingAfternoon: {
		entities.LocaleArabic:  {"مساء الخير 🌟"},
		entities.LocaleFrench:  {"Bon après-midi 👋"},
		entities.LocaleEnglish: {"Good afternoon 😊"},
	},
	GreetingEvening: {
		entities.LocaleArabic:  {"مساء الخير 🌟"},
		entities.LocaleFrench:  {"Bonsoir 👋"},
		entities.LocaleEnglish: {"Good evening 😊"},
	},
	GreetingHelpLine: {
		entities.LocaleArabic:  {"\n\nكيف يمكنني مساعدتك اليوم؟"},
		entities.LocaleFrench:  {"\n\nComment puis-je vous aider aujourd'hui ?"},
		entities.LocaleEnglish: {"\n\nHow can I help you today?"},
	},

	FAQSimilarList: {
		entities.LocaleArabic:  {"وجدت عدة أسئلة مشابهة:\n\n%s\n\nأي من هذه تقصد؟"},
		entities.LocaleFrench:  {"J'ai trouvé plusieurs questions similaires:\n\n%s\n\nLaquelle vous intéresse ?"},
		entities.LocaleEnglish: {"I found several similar questions:\n\n%s\n\nWhich one are you referring to?"},
	},

	OrderNone: {
		entities.LocaleArabic: {
			"لم أتمكن من العثور على أي طلبات مرتبطة برقمك. هل ترغب في إنشاء طلب جديد؟",
			"لا توجد أي طلبات مسجلة لهذا الرقم. هل تحتاج مساعدة في إتمام عملية شراء؟",
			"يبدو أنه ليس لديك أي طلبات نشطة. هل تريد استعراض منتجاتنا المتاحة؟",
		},
		entities.LocaleFrench: {
			"Je n'ai pas trouvé de commande associée à votre numéro. Souhaitez-vous créer une nouvelle commande ?",
			"Aucune commande trouvée pour votre numéro. Voulez-vous que je vous aide à passer une nouvelle commande ?",
			"Il semble que vous n'avez pas de commande en cours. Puis-je vous aider avec nos produits disponibles ?",
		},
		entities.LocaleEnglish: {
			"I couldn't find any orders associated with your number. Would you like to place a new order?",
			"No orders found for your number. Can I help you create a new order?",
			"It seems you don't have any active orders. Would you like to browse our available products?",
		},
	},
	OrderStatusHeader: {
		entities.LocaleArabic:  {"📦 حالة الطلب %s :\n\n%s\n"},
		entities.LocaleFrench:  {"📦 Statut de la commande %s :\n\n%s\n"},
		entities.LocaleEnglish: {"📦 Status of order %s:\n\n%s\n"},
	},
	OrderStatusShipped: {
		entities.LocaleArabic:  {"📅 تاريخ الشحن: %s\n"},
		entities.LocaleFrench:  {"📅 Date d'expédition: %s\n"},
		entities.LocaleEnglish: {"📅 Shipping date: %s\n"},
	},
	OrderStatusDelivery: {
		entities.LocaleArabic:  {"🏡 تاريخ التسليم: %s\n"},
		entities.LocaleFrench:  {"🏡 Date de livraison: %s\n"},
		entities.LocaleEnglish: {"🏡 Delivery date: %s\n"},
	},
	OrderStatusTracking: {
		entities.LocaleArabic:  {"📦 رقم التتبع: %s\n"},
		entities.LocaleFrench:  {"📦 Numéro de suivi: %s\n"},
		entities.LocaleEnglish: {"📦 Tracking number: %s\n"},
	},
	OrderStatusFollowUp: {
		entities.LocaleArabic:  {"\nهل تحتاج إلى مزيد من المعلومات حول هذه الطلبية؟"},
		entities.LocaleFrench:  {"\nBesoin de plus d'informations sur cette commande ?"},
		entities.LocaleEnglish: {"\nDo you need more information about this order?"},
	},
	OrderListHeader: {
		entities.LocaleArabic:  {"📦 لديك %d طلبية مسجلة:\n\n"},
		entities.LocaleFrench:  {"📦 Vous avez %d commande(s) enregistrée(s) :\n\n"},
		entities.LocaleEnglish: {"📦 You have %d order(s) registered:\n\n"},
	},
	OrderListItem: {
		entities.LocaleArabic:  {"🔹 الطلبية رقم %d\n📌 المرجع: %s\n🎁 المنتج: %s\nالحالة: %s (%s)\n"},
		entities.LocaleFrench:  {"🔹 Commande #%d\n📌 Référence: %s\n🎁 Produit: %s\nStatut: %s (%s)\n"},
		entities.LocaleEnglish: {"🔹 Order #%d\n📌 Reference: %s\n🎁 Product: %s\nStatus: %s (%s)\n"},
	},
	OrderListShipped: {
		entities.LocaleArabic:  {"📅 تاريخ الشحن: %s\n"},
		entities.LocaleFrench:  {"📅 Expédiée le: %s\n"},
		entities.LocaleEnglish: {"📅 Shipped on: %s\n"},
	},
	OrderListDelivered: {
		entities.LocaleArabic:  {"🏡 تاريخ التسليم: %s\n"},
		entities.LocaleFrench:  {"🏡 Livrée le: %s\n"},
		entities.LocaleEnglish: {"🏡 Delivered on: %s\n"},
	},
	OrderListMore: {
		entities.LocaleArabic:  {"ℹ️ يوجد %d طلبات إضافية. يرجى تقديم المرجع لمزيد من التفاصيل.\n\n"},
		entities.LocaleFrench:  {"ℹ️ Plus %d commande(s) non affichée(s). Dites-moi une référence pour plus de détails.\n\n"},
		entities.LocaleEnglish: {"ℹ️ %d more order(s) not shown. Please provide a reference for details.\n\n"},
	},
	OrderSuggestion: {
		entities.LocaleArabic: {
			"لمزيد من المعلومات حول طلبية محددة، يرجى تقديم رقم المرجع.",
			"هل تحتاج مساعدة بخصوص إحدى هذه الطلبيات؟ فقط أخبرني أي واحدة!",
			"إذا كان لديك أي استفسار حول حالة الطلب، أنا هنا لمساعدتك.",
		},
		entities.LocaleFrench: {
			"Pour plus d'informations sur une commande spécifique, veuillez me donner sa référence.",
			"Besoin d'aide avec l'une de ces commandes ? Dites-moi simplement laquelle !",
			"Si vous avez des questions sur le statut d'une commande, je suis là pour aider.",
		},
		entities.LocaleEnglish: {
			"For more information about a specific order, please provide its reference.",
			"Need help with one of these orders? Just tell me which one!",
			"If you have any questions about order status, I'm here to help.",
		},
	},

	PurchasesEmpty: {
		entities.LocaleArabic: {
			"لا أرى أي منتجات تم طلبها برقمك. هل ترغب في استكشاف منتجاتنا الجديدة؟",
			"لم يتم العثور على أي منتجات في سجل الشراء الخاص بك. هل تريد بعض التوصيات؟",
			"يبدو أن سجل الشراء الخاص بك فارغ. هل يمكنني مساعدتك في العثور على شيء ما؟",
		},
		entities.LocaleFrench: {
			"Je ne vois aucun produit commandé avec votre numéro. Souhaitez-vous découvrir nos nouveautés ?",
			"Aucun produit trouvé dans votre historique. Voulez-vous que je vous recommande quelques articles populaires ?",
			"Votre historique d'achat semble vide. Puis-je vous aider à trouver quelque chose ?",
		},
		entities.LocaleEnglish: {
			"I don't see any products ordered with your number. Would you like to explore our new arrivals?",
			"No products found in your purchase history. Would you like some recommendations?",
			"Your purchase history seems empty. Can I help you find something?",
		},
	},
	PurchasesHeader: {
		entities.LocaleArabic:  {"🛍️ ملخص مشترياتك:\n\n"},
		entities.LocaleFrench:  {"🛍️ Voici un résumé de vos achats :\n\n"},
		entities.LocaleEnglish: {"🛍️ Here is a summary of your purchases:\n\n"},
	},
	PurchasesItem: {
		entities.LocaleArabic:  {"✨ المنتج %d: %s\n   📏 الكمية: %d وحدة\n   💰 السعر: %s درهم\n   🧮 الإجمالي: %s درهم\n"},
		entities.LocaleFrench:  {"✨ Produit %d: %s\n   📏 Quantité: %d unité(s)\n   💰 Prix unitaire: %s MAD\n   🧮 Total: %s MAD\n"},
		entities.LocaleEnglish: {"✨ Product %d: %s\n   📏 Quantity: %d unit(s)\n   💰 Unit price: %s MAD\n   🧮 Total: %s MAD\n"},
	},
	PurchasesLowQty: {
		entities.LocaleArabic:  {"   ⚠️ الكمية قليلة - هل ترغب في طلب المزيد؟\n"},
		entities.LocaleFrench:  {"   ⚠️ Quantité faible - Voulez-vous en commander plus ?\n"},
		entities.LocaleEnglish: {"   ⚠️ Low quantity - Would you like to order more?\n"},
	},
	PurchasesMore: {
		entities.LocaleArabic:  {"ℹ️ يوجد %d منتجات إضافية في سجل الشراء الخاص بك.\n\n"},
		entities.LocaleFrench:  {"ℹ️ Plus %d produit(s) non affiché(s) dans votre historique.\n\n"},
		entities.LocaleEnglish: {"ℹ️ %d more product(s) in your purchase history.\n\n"},
	},
	PurchasesTotal: {
		entities.LocaleArabic:  {"💵 المبلغ الإجمالي للمشتريات: %s درهم\n\n"},
		entities.LocaleFrench:  {"💵 Montant total de vos achats: %s MAD\n\n"},
		entities.LocaleEnglish: {"💵 Total purchase amount: %s MAD\n\n"},
	},
	PurchasesSuggestion: {
		entities.LocaleArabic: {
			"هل تحتاج مساعدة بخصوص أحد هذه المنتجات؟ فقط أخبرني أي واحد!",
			"هل ترغب في طلب أحد هذه العناصر مرة أخرى؟",
			"هل يمكنني مساعدتك بأي شيء آخر بخصوص هذه المنتجات؟",
		},
		entities.LocaleFrench: {
			"Besoin d'aide avec l'un de ces produits ? Dites-moi simplement lequel !",
			"Vous souhaitez commander à nouveau l'un de ces articles ?",
			"Puis-je vous aider avec autre chose concernant ces produits ?",
		},
		entities.LocaleEnglish: {
			"Need help with one of these products? Just tell me which one!",
			"Would you like to reorder any of these items?",
			"Can I help you with anything else regarding these products?",
		},
	},

	UsageFound: {
		entities.LocaleArabic: {
			"إليك كيفية استخدام %s:\n%s\n\nهل تحتاج إلى مزيد من التفاصيل؟",
			"طريقة استخدام %s:\n%s\n\nهل كل شيء واضح؟",
			"إرشادات استخدام %s:\n%s\n\nهل يمكنني مساعدتك أكثر؟",
		},
		entities.LocaleFrench: {
			"Voici comment utiliser %s :\n%s\n\nBesoin de plus de détails ?",
			"Instructions pour %s :\n%s\n\nTout est clair ?",
			"Mode d'emploi de %s :\n%s\n\nPuis-je vous aider davantage ?",
		},
		entities.LocaleEnglish: {
			"Here's how to use %s:\n%s\n\nNeed more details?",
			"Instructions for %s:\n%s\n\nIs everything clear?",
			"Usage guide for %s:\n%s\n\nCan I help you further?",
		},
	},
	UsageNotFound: {
		entities.LocaleArabic: {
			"لم أتمكن من العثور على تعليمات لـ \"%s\". هل تريد أن أبحث بين منتجاتنا الأخرى؟",
			"عذرًا، لا تتوفر معلومات عن \"%s\". هل يمكنك تجربة اسم منتج آخر؟",
			"لا توجد تعليمات لـ \"%s\". ربما تعرف الاسم الكامل للمنتج؟",
		},
		entities.LocaleFrench: {
			"Je n'ai pas trouvé d'instructions pour \"%s\". Souhaitez-vous que je recherche parmi nos autres produits ?",
			"Désolé, je n'ai pas d'information sur \"%s\". Voulez-vous essayer avec un autre nom de produit ?",
			"Aucune instruction trouvée pour \"%s\". Peut-être connaissez-vous le nom exact du produit ?",
		},
		entities.LocaleEnglish: {
			"I couldn't find instructions for \"%s\". Would you like me to search our other products?",
			"Sorry, I don't have information about \"%s\". Would you try with another product name?",
			"No instructions found for \"%s\". Maybe you know the full product name?",
		},
	},

	ProductHeader: {
		entities.LocaleArabic:  {"🌟 تفاصيل حول %s:\n\n"},
		entities.LocaleFrench:  {"🌟 Détails sur %s :\n\n"},
		entities.LocaleEnglish: {"🌟 Details about %s:\n\n"},
	},
	ProductDescription: {
		entities.LocaleArabic:  {"📝 الوصف: %s\n"},
		entities.LocaleFrench:  {"📝 Description: %s\n"},
		entities.LocaleEnglish: {"📝 Description: %s\n"},
	},
	ProductUsageTips: {
		entities.LocaleArabic:  {"📌 نصائح الاستخدام: %s\n"},
		entities.LocaleFrench:  {"📌 Conseils d'utilisation: %s\n"},
		entities.LocaleEnglish: {"📌 Usage tips: %s\n"},
	},
	ProductPrice: {
		entities.LocaleArabic:  {"💰 السعر: %s درهم\n"},
		entities.LocaleFrench:  {"💰 Prix: %s MAD\n"},
		entities.LocaleEnglish: {"💰 Price: %s MAD\n"},
	},
	ProductDiscount: {
		entities.LocaleArabic:  {"🎁 سعر التخفيض: %s درهم (خصم %d%%!)\n"},
		entities.LocaleFrench:  {"🎁 Prix promo: %s MAD (%d%% de réduction!)\n"},
		entities.LocaleEnglish: {"🎁 Discount price: %s MAD (%d%% off!)\n"},
	},
	ProductCategory: {
		entities.LocaleArabic:  {"📚 الفئة: %s\n"},
		entities.LocaleFrench:  {"📚 Catégorie: %s\n"},
		entities.LocaleEnglish: {"📚 Category: %s\n"},
	},
	ProductColors: {
		entities.LocaleArabic:  {"🎨 الألوان المتاحة: %s\n"},
		entities.LocaleFrench:  {"🎨 Couleurs disponibles: %s\n"},
		entities.LocaleEnglish: {"🎨 Available colors: %s\n"},
	},
	ProductSizes: {
		entities.LocaleArabic:  {"📏 المقاسات المتاحة: %s\n"},
		entities.LocaleFrench:  {"📏 Tailles disponibles: %s\n"},
		entities.LocaleEnglish: {"📏 Available sizes: %s\n"},
	},
	ProductBrand: {
		entities.LocaleArabic:  {"🏷️ الماركة: %s\n"},
		entities.LocaleFrench:  {"🏷️ Marque: %s\n"},
		entities.LocaleEnglish: {"🏷️ Brand: %s\n"},
	},
	ProductStock: {
		entities.LocaleArabic:  {"📦 المخزون: %s\n"},
		entities.LocaleFrench:  {"📦 Stock: %s\n"},
		entities.LocaleEnglish: {"📦 Stock: %s\n"},
	},
	ProductCTA: {
		entities.LocaleArabic: {
			"\n\nهل يهمك هذا المنتج؟ يمكنني مساعدتك في طلبه!",
			"\n\nهل ترغب في إضافة هذا المنتج إلى سلة التسوق؟",
			"\n\nهل تريد أن أرسل لك المزيد من الصور أو المعلومات؟",
		},
		entities.LocaleFrench: {
			"\n\nCe produit vous intéresse ? Je peux vous aider à le commander !",
			"\n\nSouhaitez-vous ajouter ce produit à votre panier ?",
			"\n\nVoulez-vous que je vous envoie plus de photos ou d'informations ?",
		},
		entities.LocaleEnglish: {
			"\n\nInterested in this product? I can help you order it!",
			"\n\nWould you like to add this product to your cart?",
			"\n\nDo you want me to send you more photos or information?",
		},
	},
	ProductNotFound: {
		entities.LocaleArabic: {
			"لم أتمكن من العثور على منتج مطابق لـ \"%s\". هل تريد أن أبحث عن شيء مشابه؟",
			"عذرًا، المنتج \"%s\" غير موجود في الكتالوج الخاص بنا. هل يمكنك تجربة اسم آخر؟",
			"لا توجد نتائج لـ \"%s\". ربما تعرف الفئة أو الماركة؟",
		},
		entities.LocaleFrench: {
			"Je n'ai pas trouvé de produit correspondant à \"%s\". Souhaitez-vous que je recherche quelque chose de similaire ?",
			"Désolé, le produit \"%s\" ne figure pas dans notre catalogue. Voulez-vous essayer avec un autre nom ?",
			"Aucun résultat pour \"%s\". Peut-être connaissez-vous la marque ou la catégorie ?",
		},
		entities.LocaleEnglish: {
			"I couldn't find a product matching \"%s\". Would you like me to search for something similar?",
			"Sorry, the product \"%s\" is not in our catalog. Would you try another name?",
			"No results for \"%s\". Maybe you know the brand or category?",
		},
	},

	RecoNoneCategory: {
		entities.LocaleArabic: {
			"لا يوجد لدينا أي منتجات في الفئة \"%s\"%s. هل تريد تجربة فئة أخرى؟",
			"عذرًا، اختيارنا للفئة \"%s\" فارغ مؤقتًا%s. هل يمكنني اقتراح شيء آخر؟",
			"لا توجد نتائج لـ \"%s\"%s. هل تعرف فئات أخرى قد تهمك؟",
		},
		entities.LocaleFrench: {
			"Nous n'avons actuellement aucun produit dans la catégorie \"%s\"%s. Voulez-vous essayer une autre catégorie ?",
			"Désolé, notre sélection \"%s\" est temporairement vide%s. Puis-je vous recommander autre chose ?",
			"Aucun résultat pour \"%s\"%s. Connaissez-vous d'autres catégories qui pourraient vous intéresser ?",
		},
		entities.LocaleEnglish: {
			"We currently don't have any products in the \"%s\" category%s. Would you like to try another category?",
			"Sorry, our \"%s\" selection is temporarily empty%s. Can I recommend something else?",
			"No results for \"%s\"%s. Do you know other categories that might interest you?",
		},
	},
	RecoNone: {
		entities.LocaleArabic: {
			"لم أتمكن من العثور على منتجات تطابق طلبك%s. هل يمكنك توضيح ما تبحث عنه؟",
			"لا يبدو أن كتالوجنا يتطابق مع بحثك%s. هل تريد تجربة معايير أخرى؟",
			"لم يتم العثور على منتجات%s. هل يمكنني مساعدتك في تضييق نطاق البحث؟",
		},
		entities.LocaleFrench: {
			"Je n'ai pas trouvé de produits correspondant à votre demande%s. Pouvez-vous préciser ce que vous cherchez ?",
			"Notre catalogue semble ne pas correspondre à votre recherche%s. Voulez-vous essayer avec d'autres critères ?",
			"Aucun produit trouvé%s. Puis-je vous aider à affiner votre recherche ?",
		},
		entities.LocaleEnglish: {
			"I couldn't find products matching your request%s. Can you specify what you're looking for?",
			"Our catalog doesn't seem to match your search%s. Would you try other criteria?",
			"No products found%s. Can I help you refine your search?",
		},
	},
	RecoBudgetClause: {
		entities.LocaleArabic:  {" بأقل من %s درهم"},
		entities.LocaleFrench:  {" à moins de %s MAD"},
		entities.LocaleEnglish: {" under %s MAD"},
	},
	RecoHeaderCategory: {
		entities.LocaleArabic:  {"✨ إليك أفضل توصياتنا في فئة \"%s\""},
		entities.LocaleFrench:  {"✨ Voici nos meilleures recommandations dans la catégorie \"%s\""},
		entities.LocaleEnglish: {"✨ Here are our top recommendations in the \"%s\" category"},
	},
	RecoHeader: {
		entities.LocaleArabic:  {"🌟 إليك بعض الاقتراحات التي قد تعجبك"},
		entities.LocaleFrench:  {"🌟 Voici quelques suggestions qui pourraient vous plaire"},
		entities.LocaleEnglish: {"🌟 Here are some suggestions you might like"},
	},
	RecoSuffixBudget: {
		entities.LocaleArabic:  {" (حتى %s درهم)"},
		entities.LocaleFrench:  {" (jusqu'à %s MAD)"},
		entities.LocaleEnglish: {" (up to %s MAD)"},
	},
	RecoSuffixNew: {
		entities.LocaleArabic:  {" (جديد)"},
		entities.LocaleFrench:  {" (Nouveautés)"},
		entities.LocaleEnglish: {" (New arrivals)"},
	},
	RecoSuffixDiscount: {
		entities.LocaleArabic:  {" (خصومات)"},
		entities.LocaleFrench:  {" (Promotions)"},
		entities.LocaleEnglish: {" (On sale)"},
	},
	RecoSuffixBest: {
		entities.LocaleArabic:  {" (الأفضل مبيعًا)"},
		entities.LocaleFrench:  {" (Meilleures ventes)"},
		entities.LocaleEnglish: {" (Best sellers)"},
	},
	RecoItemPrice: {
		entities.LocaleArabic:  {"   💰 السعر: %s درهم"},
		entities.LocaleFrench:  {"   💰 Prix: %s MAD"},
		entities.LocaleEnglish: {"   💰 Price: %s MAD"},
	},
	RecoItemDiscount: {
		entities.LocaleArabic:  {" (🔴 خصم: %s درهم)"},
		entities.LocaleFrench:  {" (🔴 Promo: %s MAD)"},
		entities.LocaleEnglish: {" (🔴 Sale: %s MAD)"},
	},
	RecoItemRating: {
		entities.LocaleArabic:  {"   ⭐ التقييم: %s/5\n"},
		entities.LocaleFrench:  {"   ⭐ Note: %s/5\n"},
		entities.LocaleEnglish: {"   ⭐ Rating: %s/5\n"},
	},
	RecoItemShortDesc: {
		entities.LocaleArabic:  {"   📌 %s\n"},
		entities.LocaleFrench:  {"   📌 %s\n"},
		entities.LocaleEnglish: {"   📌 %s\n"},
	},
	RecoItemRef: {
		entities.LocaleArabic:  {"   🏷️ المرجع: %s\n\n"},
		entities.LocaleFrench:  {"   🏷️ Réf: %s\n\n"},
		entities.LocaleEnglish: {"   🏷️ Ref: %s\n\n"},
	},
	RecoCTA: {
		entities.LocaleArabic: {
			"\nأي من هذه المنتجات تهمك؟ يمكنني تقديم المزيد من التفاصيل!",
			"\nهل تريد أن أرسل لك المزيد من المعلومات عن أحد هذه العناصر؟",
			"\nهل ترغب في تصفية هذه النتائج حسب السعر أو الماركة أو أي معيار آخر؟",
			"\nيمكنني مساعدتك في طلب أحد هذه المنتجات. أي واحد تفضل؟",
		},
		entities.LocaleFrench: {
			"\nLequel de ces produits vous intéresse ? Je peux vous donner plus de détails !",
			"\nVoulez-vous que je vous envoie plus d'informations sur l'un de ces articles ?",
			"\nSouhaitez-vous filtrer ces résultats par prix, marque ou autre critère ?",
			"\nJe peux vous aider à commander l'un de ces produits. Lequel préférez-vous ?",
		},
		entities.LocaleEnglish: {
			"\nWhich of these products interests you? I can provide more details!",
			"\nWould you like me to send you more information about any of these items?",
			"\nDo you want to filter these results by price, brand or other criteria?",
			"\nI can help you order one of these products. Which one do you prefer?",
		},
	},

	FallbackApology: {
		entities.LocaleArabic: {
			"عذرًا، لم أفهم سؤالك. هل يمكنك إعادة صياغته؟",
			"أواجه صعوبة في فهم الطلب. هل يمكنك توضيحه؟",
		},
		entities.LocaleFrench: {
			"Désolé, je n'ai pas compris. Pouvez-vous reformuler ?",
			"Je n'ai pas saisi votre demande. Pouvez-vous préciser ?",
		},
		entities.LocaleEnglish: {
			"Sorry, I didn't understand. Can you rephrase?",
			"Could you express your question differently?",
		},
	},
	ReplyCloser: {
		entities.LocaleArabic: {
			"\n\nهل تحتاج إلى مزيد من المعلومات؟",
			"\n\nهل يمكنني مساعدتك بأي شيء آخر؟",
			"\n\nهل هذا يجيب على سؤالك؟",
		},
		entities.LocaleFrench: {
			"\n\nBesoin de plus d'informations ?",
			"\n\nPuis-je vous aider davantage ?",
			"\n\nEst-ce que cela répond à votre question ?",
		},
		entities.LocaleEnglish: {
			"\n\nNeed more information?",
			"\n\nCan I help you with anything else?",
			"\n\nDoes this answer your question?",
		},
	},
}
