package emitter

import (
	"strings"
	"unicode"
)

// FileName returns the generated file name for typeName, e.g.
// "ParticleType" -> "particle_type_gen.go".
func FileName(typeName string) string {
	return snakeCase(typeName) + "_gen.go"
}

func snakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				sb.WriteRune('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
