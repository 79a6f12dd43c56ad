package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Headers longer than this are truncated before parsing.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage picks the best entry of available for an
// Accept-Language header. Exact tag matches win over base-language matches
// of the same quality. The first available language is returned when
// nothing matches.
//
//	ParseAcceptLanguage("lt-LT,lt;q=0.9,en;q=0.5", []string{"en", "lt"}) // "lt"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}

	for _, tag := range parseLanguageTags(header) {
		if match, ok := matchTag(tag.tag, available); ok {
			return match
		}
	}

	return available[0]
}

// MatchLanguage reports the available language matching a single tag, such
// as a ?lang= value or cookie. Unlike ParseAcceptLanguage it does not fall
// back to the first available language.
func MatchLanguage(tag string, available []string) (string, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", false
	}
	return matchTag(tag, available)
}

func matchTag(tag string, available []string) (string, bool) {
	for _, avail := range available {
		if strings.EqualFold(tag, avail) {
			return avail, true
		}
	}
	base := baseLanguage(tag)
	for _, avail := range available {
		if strings.EqualFold(base, baseLanguage(avail)) {
			return avail, true
		}
	}
	return "", false
}

// parseLanguageTags returns the header's tags ordered by quality, highest
// first. Wildcards and zero-quality entries are dropped.
func parseLanguageTags(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		lang, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" || lang == "*" {
			continue
		}

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(q, 64); err == nil && v >= 0 && v <= 1 {
				quality = v
			}
		}
		if quality == 0 {
			continue
		}

		tags = append(tags, weightedTag{tag: lang, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}
