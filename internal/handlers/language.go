package handlers

import (
	"strings"
	"unicode"
)

// Language constants
const (
	LangEnglish = "en"
)

// regionLanguages maps region codes and common country names to the language
// most searches from there are written in
var regionLanguages = map[string]string{
	"us": "en", "uk": "en", "gb": "en", "ca": "en", "au": "en", "ie": "en", "nz": "en",
	"united states": "en", "united kingdom": "en", "canada": "en", "australia": "en",
	"de": "de", "at": "de", "germany": "de", "deutschland": "de", "austria": "de", "osterreich": "de",
	"fr": "fr", "france": "fr",
	"es": "es", "mx": "es", "ar": "es", "spain": "es", "espana": "es", "mexico": "es", "argentina": "es",
	"it": "it", "italy": "it", "italia": "it",
	"nl": "nl", "netherlands": "nl", "nederland": "nl",
	"br": "pt", "pt": "pt", "brazil": "pt", "brasil": "pt", "portugal": "pt",
	"ru": "ru", "russia": "ru",
	"jp": "ja", "japan": "ja",
	"cn": "zh", "china": "zh",
}

// ResolveLanguage picks the search language. An explicit language always
// wins; otherwise the region decides, falling back to English.
func ResolveLanguage(language, region string) string {
	if l := strings.TrimSpace(language); l != "" {
		return l
	}

	r := removeAccents(strings.ToLower(strings.TrimSpace(region)))
	if r == "" || r == "all" {
		return LangEnglish
	}
	if lang, ok := regionLanguages[r]; ok {
		return lang
	}
	return LangEnglish
}

// removeAccents removes common Latin accents from a string
func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range s {
		switch r {
		case 'á', 'à', 'ã', 'â', 'ä':
			result.WriteRune('a')
		case 'é', 'è', 'ê', 'ë':
			result.WriteRune('e')
		case 'í', 'ì', 'î', 'ï':
			result.WriteRune('i')
		case 'ó', 'ò', 'õ', 'ô', 'ö':
			result.WriteRune('o')
		case 'ú', 'ù', 'û', 'ü':
			result.WriteRune('u')
		case 'ç':
			result.WriteRune('c')
		case 'ñ':
			result.WriteRune('n')
		default:
			if unicode.IsLetter(r) || unicode.IsSpace(r) || unicode.IsDigit(r) {
				result.WriteRune(r)
			}
		}
	}
	return result.String()
}
