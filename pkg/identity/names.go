package identity

import (
	"strings"
	"unicode"
)

// foldTurkish lowercases with Turkish dotted/dotless-I semantics and
// strips Turkish diacritics, so "YILMAZ" and "yılmaz" and "Yilmaz" all
// fold to "yilmaz".
func foldTurkish(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'İ':
			r = 'i'
		case 'I', 'ı':
			r = 'i'
		case 'Ğ', 'ğ':
			r = 'g'
		case 'Ü', 'ü':
			r = 'u'
		case 'Ş', 'ş':
			r = 's'
		case 'Ö', 'ö':
			r = 'o'
		case 'Ç', 'ç':
			r = 'c'
		default:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CompareTurkishNames reports whether a provided name matches the stored
// name. Both are tokenized by whitespace. When the stored name has two
// or more tokens the provided name must also carry at least two;
// otherwise one suffices. Every provided token must contain or be
// contained in some stored token after Turkish folding, each stored
// token consumed at most once.
func CompareTurkishNames(provided, stored string) bool {
	providedTokens := strings.Fields(foldTurkish(provided))
	storedTokens := strings.Fields(foldTurkish(stored))
	if len(providedTokens) == 0 || len(storedTokens) == 0 {
		return false
	}

	required := 1
	if len(storedTokens) >= 2 {
		required = 2
	}
	if len(providedTokens) < required {
		return false
	}

	used := make([]bool, len(storedTokens))
	for _, p := range providedTokens {
		matched := false
		for i, s := range storedTokens {
			if used[i] {
				continue
			}
			if strings.Contains(s, p) || strings.Contains(p, s) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
