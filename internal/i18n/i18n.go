// Package i18n provides static dictionary lookup for interface strings.
//
// Resolution has three tiers: the value for the requested language, the
// Japanese value when the requested language is missing, and finally the key
// itself when the key is unknown.
package i18n

// Lang is an ISO 639-1 language code supported by the dictionary.
type Lang string

const (
	// LangJA is Japanese, the source language and fallback.
	LangJA Lang = "ja"
	// LangEN is English.
	LangEN Lang = "en"
	// LangKO is Korean.
	LangKO Lang = "ko"
	// LangZH is Chinese (simplified).
	LangZH Lang = "zh"
)

// CookieName is the cookie persisting the visitor's language choice.
const CookieName = "language"

// CookieMaxAge is the language cookie lifetime in seconds (one year).
const CookieMaxAge = 365 * 24 * 60 * 60

// Supported reports whether the language code is known.
func Supported(code string) bool {
	switch Lang(code) {
	case LangJA, LangEN, LangKO, LangZH:
		return true
	default:
		return false
	}
}

// Lookup resolves key for the given language. Missing language values fall
// back to Japanese; unknown keys resolve to the key itself.
func Lookup(key string, lang Lang) string {
	entry, ok := dictionary[key]
	if !ok {
		return key
	}

	if v, ok := entry[lang]; ok && v != "" {
		return v
	}

	if v, ok := entry[LangJA]; ok && v != "" {
		return v
	}

	return key
}
