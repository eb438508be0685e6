package curp

import "unicode/utf8"

// Length is the number of characters in a generated code.
const Length = 18

// Placeholder fills any field whose source text is missing or has no
// qualifying letter.
const Placeholder = 'X'

// Gender markers accepted in strict mode.
const (
	GenderMale   rune = 'H'
	GenderFemale rune = 'M'
)

// PersonRecord is the personal data a code is derived from.
//
// BirthDate uses the YYYY-MM-DD layout. MaternalSurname may be empty.
// BirthState is matched case-insensitively against the region table.
type PersonRecord struct {
	FirstName       string
	PaternalSurname string
	MaternalSurname string
	BirthDate       string
	Gender          rune
	BirthState      string
}

// Code is a generated identifier. A Code returned without error always holds
// exactly Length characters laid out as:
//
//	[0]     paternal surname initial
//	[1]     first internal vowel of the paternal surname
//	[2]     maternal surname initial
//	[3]     first name initial
//	[4:10]  birth date as YYMMDD
//	[10]    gender marker
//	[11:13] region code
//	[13:16] internal consonants of paternal, maternal, first name
//	[16]    random letter
//	[17]    random digit
type Code string

func (c Code) String() string {
	return string(c)
}

// Stem returns the deterministic first sixteen characters.
func (c Code) Stem() string {
	return c.slice(0, 16)
}

// BirthDigits returns the YYMMDD field.
func (c Code) BirthDigits() string {
	return c.slice(4, 10)
}

// Region returns the two-letter region field.
func (c Code) Region() string {
	return c.slice(11, 13)
}

// Differentiator returns the random letter and digit suffix.
func (c Code) Differentiator() string {
	return c.slice(16, 18)
}

// slice indexes by character rather than byte so initials outside ASCII do
// not shift the fixed-width fields.
func (c Code) slice(from, to int) string {
	runes := []rune(string(c))
	if len(runes) != Length {
		return ""
	}
	return string(runes[from:to])
}

// Len reports the number of characters in the code.
func (c Code) Len() int {
	return utf8.RuneCountInString(string(c))
}
