// internal/core/ports/localizer.go
package ports

import (
	"golang.org/x/text/language"

	"github.com/amelnyk/larder/internal/core/domain"
)

// Localizer renders a status message key into display text for a language.
// The core never depends on a concrete string catalog; the presentation
// layer injects one.
type Localizer interface {
	Render(key domain.MessageKey, lang language.Tag, params map[string]string) string
}
