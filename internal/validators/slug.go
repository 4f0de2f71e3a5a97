package validators

import (
	"strings"
	"unicode"
)

// Slugify reduce un nombre a un identificador apto para URL:
// minúsculas, [a-z0-9] y guiones simples. Si no sobrevive nada
// utilizable retorna "perfil".
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "perfil"
	}
	return slug
}
