package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is the language used when no preference is configured
// or detected.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size processed during
// negotiation. RFC 7231 sets no limit; 4KB covers any legitimate header
// while bounding work on hostile input.
const maxAcceptLanguageLength = 4096

// langPref is one Accept-Language entry after parsing.
type langPref struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader splits an Accept-Language header into
// preferences sorted by descending quality. Malformed entries degrade
// instead of failing the header: a bad quality value counts as 1.0 and
// empty tags are dropped.
func parseAcceptLanguageHeader(header string) []langPref {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var prefs []langPref
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, _ := strings.Cut(part, ";")
		lang := strings.ToLower(strings.TrimSpace(tag))
		if lang == "" {
			continue
		}
		prefs = append(prefs, langPref{lang: lang, q: qualityOf(params)})
	}

	slices.SortFunc(prefs, func(a, b langPref) int {
		return cmp.Compare(b.q, a.q)
	})
	return prefs
}

// qualityOf reads the q parameter from the raw text after a language
// tag. Only the first parameter is considered, matching the usual
// "tag;q=0.8" form. Unparsable or out-of-range values count as 1.0.
func qualityOf(params string) float64 {
	if params == "" {
		return 1
	}
	first, _, _ := strings.Cut(params, ";")
	raw, ok := strings.CutPrefix(strings.TrimSpace(first), "q=")
	if !ok {
		return 1
	}
	q, err := strconv.ParseFloat(raw, 64)
	if err != nil || q < 0 || q > 1 {
		return 1
	}
	return q
}

// ParseAcceptLanguage negotiates the best supported language for an
// Accept-Language header. Exact matches win first (en-US), then base
// language fallback (en-US matches en); defaultLang is returned when
// nothing fits. Codes are compared as plain lowercased strings with no
// tag canonicalization, so any opaque catalog language name can take
// part in negotiation.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	prefs := parseAcceptLanguageHeader(header)

	// Exact matches are exhausted before any base-language fallback, so
	// a lower-quality exact match still outranks an entry that only
	// matches by base.
	for _, p := range prefs {
		if slices.Contains(supported, p.lang) {
			return p.lang
		}
	}
	for _, p := range prefs {
		if base, _, found := strings.Cut(p.lang, "-"); found && base != "" {
			if slices.Contains(supported, base) {
				return base
			}
		}
	}

	return defaultLang
}
