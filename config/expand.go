package config

import (
	"os"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandPlaceholders walks the document in place and substitutes ${NAME}
// tokens in string leaves with the contents of the NAME environment
// variable. Tokens whose variable is unset stay in place as literal text:
// substituting an empty string would silently lose the author's intent.
// Variables that are set but empty do substitute.
func expandPlaceholders(value any) any {
	switch v := value.(type) {
	case string:
		return expandString(v)
	case map[string]any:
		for key, elem := range v {
			v[key] = expandPlaceholders(elem)
		}
		return v
	case []any:
		for i, elem := range v {
			v[i] = expandPlaceholders(elem)
		}
		return v
	default:
		return value
	}
}

func expandString(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		name := token[2 : len(token)-1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return token
	})
}
