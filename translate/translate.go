// Package translate localises the user visible messages of the assembler.
//
// Messages are keyed by their en-US fmt format, so an untranslated message
// is printed as written.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

// languages are the supported languages. The first is the fallback.
var languages = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

var matcher = language.NewMatcher(languages)

func init() {
	for tag, messages := range catalog {
		for key, msg := range messages {
			err := message.SetString(tag, key, msg)
			if err != nil {
				log.Printf("asp: catalog: %v: %v", tag, err)
			}
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asp: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the closest supported language to the preferred
// locales, en-US when there are none, and returns it.
func SetLanguage(locales ...string) (tag language.Tag) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag, _ = language.MatchStrings(matcher, locales...)
	printer = message.NewPrinter(tag)
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf translates an en-US format and writes it to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
