// Package i18n turns the stable message keys produced by the service and
// state store into English or Turkish text.
package i18n

import (
	"regexp"
	"sort"
	"strings"

	"employee-roster/internal/logger"

	"golang.org/x/text/language"
)

// Fallback is the language used when a key or language is missing
const Fallback = "en"

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Translator looks up message keys per language
type Translator struct {
	defaultLang string
	codes       []string
	matcher     language.Matcher
	log         *logger.Logger
}

// New creates a translator. An unsupported defaultLang falls back to English.
func New(defaultLang string) *Translator {
	codes := make([]string, 0, len(catalogs))
	for code := range catalogs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tags[i] = language.MustParse(code)
	}

	t := &Translator{
		codes:   codes,
		matcher: language.NewMatcher(tags),
		log:     logger.ForComponent("i18n"),
	}
	t.defaultLang = Fallback
	if t.Supported(defaultLang) {
		t.defaultLang = defaultLang
	}
	return t
}

// Default returns the language used when nothing else matches
func (t *Translator) Default() string {
	return t.defaultLang
}

// Languages lists the supported language codes
func (t *Translator) Languages() []string {
	return append([]string(nil), t.codes...)
}

// Supported reports whether lang has a message table
func (t *Translator) Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// Match picks the first candidate that names a supported language. A
// candidate may be a plain code ("tr") or an Accept-Language header value.
// The default language is returned when nothing matches.
func (t *Translator) Match(candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(strings.ToLower(c))
		if c == "" {
			continue
		}
		if t.Supported(c) {
			return c
		}
		tags, _, err := language.ParseAcceptLanguage(c)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, confidence := t.matcher.Match(tags...)
		if confidence == language.No {
			continue
		}
		return t.codes[index]
	}
	return t.defaultLang
}

// Translate returns the text for key in lang, substituting {name}
// placeholders from params. Missing entries fall back to English and then
// to the key itself.
func (t *Translator) Translate(lang, key string, params map[string]string) string {
	text, ok := catalogs[lang][key]
	if !ok {
		if lang != Fallback {
			t.log.WithFields(map[string]interface{}{"key": key, "language": lang}).Warn("Translation missing")
		}
		text, ok = catalogs[Fallback][key]
		if !ok {
			return key
		}
	}

	if len(params) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := params[match[1:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// TranslateFields translates every value of a field to key map
func (t *Translator) TranslateFields(lang string, fields map[string]string, params map[string]string) map[string]string {
	if fields == nil {
		return nil
	}
	out := make(map[string]string, len(fields))
	for field, key := range fields {
		out[field] = t.Translate(lang, key, params)
	}
	return out
}
