package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// zero-width and BOM code points that survive NFKC but carry no content.
func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	}
	return false
}

// Normalize applies the canonical review-text normalization: NFKC
// composition, zero-width stripping, trim, lowercase, and collapsing of
// whitespace runs to single spaces. It is pure and total; identity hashing
// depends on its output being stable.
func Normalize(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if isZeroWidth(r) {
			continue
		}
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CleanForMatching prepares text for lexicon matching: Normalize plus
// replacing every non-word rune with a space, then collapsing again.
// Word runes are letters, digits and underscore.
func CleanForMatching(s string) string {
	s = Normalize(s)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
			continue
		}
		space = true
	}
	return b.String()
}
