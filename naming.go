package icons

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase splits s on whitespace, hyphens and underscores and joins the
// tokens with their first character upper-cased and the rest lower-cased:
// "icon home-screen" becomes "IconHomeScreen", "icon 3d-cube" "Icon3dCube".
func ToPascalCase(s string) string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
	// a Caser keeps state, so each call gets its own
	upper, lower := cases.Upper(language.Und), cases.Lower(language.Und)
	var b strings.Builder
	for _, t := range tokens {
		_, n := utf8.DecodeRuneInString(t)
		b.WriteString(upper.String(t[:n]))
		b.WriteString(lower.String(t[n:]))
	}
	return b.String()
}

// IconName returns the basename of path without its extension.
func IconName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PascalName returns the identifier of the named icon, "IconHome" for "home".
func PascalName(name string) string {
	return ToPascalCase("icon " + name)
}
