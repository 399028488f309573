package textevents

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// DefaultLocale is used if no user locale can be detected.
const DefaultLocale = "en-US"

// Document represents the document-level context text is rendered in.
// Every document owns its own RenderEvents.
type Document struct {
	Locale string          // ISO 639/3166 locale string
	Script language.Script // ISO 15924 script identifier
	Events *RenderEvents   // render events of this document
}

// NewDocument creates a document context for a locale. Options are applied
// to the document's RenderEvents.
func NewDocument(locale string, opts ...Option) *Document {
	if locale == "" {
		locale = DefaultLocale
	}
	lang := language.Make(locale)
	script, _ := lang.Script()
	return &Document{
		Locale: locale,
		Script: script,
		Events: NewRenderEvents(opts...),
	}
}

// DocumentFromEnvironment creates a document context for the locale of the
// user's environment. If the locale cannot be detected, DefaultLocale is
// assumed.
func DocumentFromEnvironment(opts ...Option) *Document {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		CT().Errorf("document cannot detect user locale: %v", err)
		userLocale = DefaultLocale
		CT().Infof("document sets default user locale %v", userLocale)
	} else {
		CT().Infof("document detected user locale %v", userLocale)
	}
	return NewDocument(userLocale, opts...)
}

var hebrewScript = language.MustParseScript("Hebr")

// PrefersRightToLeft is true if the document's script is Hebrew.
// This is informational only; re-ordering of text does not depend on it.
func (doc *Document) PrefersRightToLeft() bool {
	return doc.Script == hebrewScript
}
