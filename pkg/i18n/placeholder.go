package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// ReplacePlaceholders substitutes {{name}} markers with values from
// placeholders. Unknown markers are left untouched.
//
//	ReplacePlaceholders("Thanks, {{name}}!", M{"name": "Ana"}) // "Thanks, Ana!"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func replacePlaceholders(template string, placeholders ...M) string {
	switch len(placeholders) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(template, merged)
}
