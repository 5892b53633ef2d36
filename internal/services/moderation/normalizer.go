package moderation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeASCII maps visually-confusable Unicode variants of Latin letters
// and digits to plain ASCII so the phrase scan cannot be dodged with
// look-alike characters. NFKC runs first to collapse ligatures and styled
// forms, then the known confusable blocks are remapped code point by code
// point. Everything else passes through unchanged.
func NormalizeASCII(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x1D400 && r <= 0x1D419: // mathematical bold A-Z
			b.WriteRune('A' + (r - 0x1D400))
		case r >= 0x1D41A && r <= 0x1D433: // mathematical bold a-z
			b.WriteRune('a' + (r - 0x1D41A))
		case r >= 0x1D7CE && r <= 0x1D7D7: // mathematical bold 0-9
			b.WriteRune('0' + (r - 0x1D7CE))
		case r >= 0xFF21 && r <= 0xFF3A: // fullwidth A-Z
			b.WriteRune('A' + (r - 0xFF21))
		case r >= 0xFF41 && r <= 0xFF5A: // fullwidth a-z
			b.WriteRune('a' + (r - 0xFF41))
		case r >= 0xFF10 && r <= 0xFF19: // fullwidth 0-9
			b.WriteRune('0' + (r - 0xFF10))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
