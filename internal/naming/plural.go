package naming

import "github.com/jinzhu/inflection"

// pluralOverrides short-circuits the inflection rules for words whose
// plural form the remote API spells differently than standard English.
var pluralOverrides = map[string]string{}

// RegisterPlural adds a custom plural form, typically loaded from the
// project configuration. It takes precedence over the inflection rules.
func RegisterPlural(singular, plural string) {
	pluralOverrides[singular] = plural
}

// Pluralize converts a singular type name to its plural form.
// Checks custom overrides first, then falls back to the inflection
// library, which covers the suffix rules (consonant+"y" -> "ies",
// "s"/"x"/"z"/"ch"/"sh" -> +"es") and common irregulars.
func Pluralize(word string) string {
	if override, ok := pluralOverrides[word]; ok {
		return override
	}
	return inflection.Plural(word)
}
