// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user facing messages for the cell VM in the
// language of the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when the host reports no locale at all.
const DefaultLocale = "en-US"

var (
	printerOnce sync.Once
	printer     *message.Printer
)

// Locales returns the preferred host locales, falling back to DefaultLocale.
func Locales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("cellvm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	return
}

// Printer returns the message printer matched to the host locales.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		tag := message.MatchLanguage(Locales()...)
		if tag == language.Und {
			tag = language.AmericanEnglish
		}
		printer = message.NewPrinter(tag)
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
