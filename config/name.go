package config

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/lixenwraith/turtle-dive/parameter"
)

// NormalizeName prepares a display name for results and storage
// NFC-composed, control runes dropped, trimmed, capped at MaxDisplayNameLength runes
// An empty result falls back to DefaultDisplayName
func NormalizeName(name string) string {
	name = norm.NFC.String(name)
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	runes := []rune(name)
	if len(runes) > parameter.MaxDisplayNameLength {
		name = strings.TrimSpace(string(runes[:parameter.MaxDisplayNameLength]))
	}
	if name == "" {
		return parameter.DefaultDisplayName
	}
	return name
}
