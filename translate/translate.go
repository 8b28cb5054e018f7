// Package translate formats user visible messages for the locale of the host.
package translate

import (
	"fmt"
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = hostPrinter()

// hostPrinter selects a printer from the host locales, falling back to en-US.
func hostPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("dcpu: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage replaces the host locale.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintln translates an en-US Sprintf() format, and writes it as a line.
func Fprintln(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return fmt.Fprintln(w, From(key, args...))
}
