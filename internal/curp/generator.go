// Package curp derives the 18-character personal identifier code from a
// person's name, birth date, gender and birth state.
//
// The algorithm is a simplified variant of the national format: it does not
// apply the official inconvenient-word substitutions or compute a check digit.
// The last two characters are random and carry no uniqueness guarantee.
package curp

import (
	"fmt"
	"strings"
	"time"

	dErrors "curp/pkg/domain-errors"
)

// BirthDateLayout is the accepted birth date format.
const BirthDateLayout = "2006-01-02"

var (
	// ErrInvalidBirthDate is returned when the birth date is not a
	// YYYY-MM-DD date.
	ErrInvalidBirthDate = dErrors.New(dErrors.CodeValidation, "invalid birth date format")
	// ErrInvalidGender is returned in strict mode for markers other than H or M.
	ErrInvalidGender = dErrors.New(dErrors.CodeValidation, "invalid gender marker")
)

// Generator builds codes. It holds no mutable state and is safe for
// concurrent use when its Differentiator is.
type Generator struct {
	diff         Differentiator
	strictGender bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithDifferentiator replaces the random suffix source.
func WithDifferentiator(d Differentiator) Option {
	return func(g *Generator) {
		g.diff = d
	}
}

// WithStrictGender rejects gender markers other than H and M instead of
// copying them through.
func WithStrictGender(strict bool) Option {
	return func(g *Generator) {
		g.strictGender = strict
	}
}

// NewGenerator constructs a Generator using RandomDifferentiator unless
// overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{diff: RandomDifferentiator{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate derives a code from p. On error no partial code is returned.
func (g *Generator) Generate(p PersonRecord) (Code, error) {
	var b strings.Builder
	b.Grow(Length)

	b.WriteRune(initial(p.PaternalSurname))
	b.WriteRune(FirstInternalVowel(p.PaternalSurname))
	b.WriteRune(initial(p.MaternalSurname))
	b.WriteRune(initial(p.FirstName))

	digits, err := birthDigits(p.BirthDate)
	if err != nil {
		return "", err
	}
	b.WriteString(digits)

	if g.strictGender && p.Gender != GenderMale && p.Gender != GenderFemale {
		return "", ErrInvalidGender
	}
	b.WriteRune(p.Gender)

	b.WriteString(RegionCode(p.BirthState))

	b.WriteRune(FirstInternalConsonant(p.PaternalSurname))
	b.WriteRune(FirstInternalConsonant(p.MaternalSurname))
	b.WriteRune(FirstInternalConsonant(p.FirstName))

	b.WriteRune(g.diff.Letter())
	b.WriteRune(g.diff.Digit())

	return Code(b.String()), nil
}

// birthDigits returns YYMMDD for a YYYY-MM-DD date.
func birthDigits(date string) (string, error) {
	if len(date) != len(BirthDateLayout) {
		return "", ErrInvalidBirthDate
	}
	if _, err := time.Parse(BirthDateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBirthDate, err)
	}
	return date[2:4] + date[5:7] + date[8:10], nil
}
