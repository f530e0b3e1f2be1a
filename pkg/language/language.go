// Package language resolves configured language codes to the names used in
// prompts ("Respond in German").
package language

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var namer = display.English.Languages()

// Name returns the English display name for a language code such as "de" or
// "pt-BR". Codes x/text cannot parse, or has no name for, are returned as given.
func Name(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	name := namer.Name(tag)
	if name == "" {
		return code
	}
	return cases.Title(language.English).String(name)
}
