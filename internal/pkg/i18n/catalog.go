// internal/pkg/i18n/catalog.go

// Package i18n holds the status message catalog. English and Ukrainian are
// the two supported display languages.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/amelnyk/larder/internal/core/domain"
	"github.com/amelnyk/larder/internal/core/ports"
)

// Catalog implements ports.Localizer over a static string table.
type Catalog struct {
	matcher language.Matcher
}

// Statically assert that *Catalog implements the Localizer port.
var _ ports.Localizer = (*Catalog)(nil)

var supported = []language.Tag{
	language.English, // first tag is the fallback
	language.Ukrainian,
}

var strTable = map[domain.MessageKey]map[language.Tag]string{
	domain.MsgProductAdded: {
		language.English:   "Product added successfully.",
		language.Ukrainian: "Продукт успішно додано.",
	},
	domain.MsgProductRemoved: {
		language.English:   "Product removed successfully.",
		language.Ukrainian: "Продукт успішно видалено.",
	},
	domain.MsgSoldProduct: {
		language.English:   "Sold {quantity} units of {product_name}.",
		language.Ukrainian: "Продано {quantity} одиниць {product_name}.",
	},
	domain.MsgNotEnoughQuantity: {
		language.English:   "Not enough quantity available for sale.",
		language.Ukrainian: "Недостатньо кількості для продажу.",
	},
	domain.MsgProductNotFound: {
		language.English:   "Product not found.",
		language.Ukrainian: "Продукт не знайдено.",
	},
	domain.MsgProductUpdated: {
		language.English:   "Updated product {product_name} quantity and price.",
		language.Ukrainian: "Оновлено кількість та ціну продукту {product_name}.",
	},
}

// NewCatalog creates the catalog.
func NewCatalog() *Catalog {
	return &Catalog{matcher: language.NewMatcher(supported)}
}

// Supported returns the display languages the catalog can render.
func (c *Catalog) Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Render looks up the message for the best-matching supported language and
// substitutes {param} placeholders. Unknown keys render as the key itself so
// a missing catalog entry stays visible instead of disappearing.
func (c *Catalog) Render(key domain.MessageKey, lang language.Tag, params map[string]string) string {
	translations, ok := strTable[key]
	if !ok {
		return string(key)
	}

	_, idx, _ := c.matcher.Match(lang)
	msg, ok := translations[supported[idx]]
	if !ok {
		msg = translations[supported[0]]
	}

	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}
