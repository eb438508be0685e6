package curp

import (
	"strings"
	"unicode/utf8"
)

func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return r >= 'A' && r <= 'Z' && !isVowel(r)
}

// firstInternal returns the first rune after position 0 of s matching fn, or
// Placeholder when there is none.
func firstInternal(s string, fn func(rune) bool) rune {
	_, size := utf8.DecodeRuneInString(s)
	for _, r := range s[size:] {
		if fn(r) {
			return r
		}
	}
	return Placeholder
}

// FirstInternalVowel returns the first vowel after the leading character of
// the uppercased fragment. A leading vowel is never returned.
func FirstInternalVowel(s string) rune {
	return firstInternal(strings.ToUpper(s), isVowel)
}

// FirstInternalConsonant returns the first A-Z consonant after the leading
// character of the uppercased fragment.
func FirstInternalConsonant(s string) rune {
	return firstInternal(strings.ToUpper(s), isConsonant)
}

// initial returns the first character of s unchanged, or Placeholder when s
// is empty.
func initial(s string) rune {
	if s == "" {
		return Placeholder
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
