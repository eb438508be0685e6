package curp

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "curp/pkg/domain-errors"
)

type fixedDifferentiator struct {
	letter rune
	digit  rune
}

func (f fixedDifferentiator) Letter() rune { return f.letter }
func (f fixedDifferentiator) Digit() rune  { return f.digit }

// layout matches a code produced from plain ASCII input.
var layout = regexp.MustCompile(`^[A-Z]{4}[0-9]{6}[A-Z]{3}[A-Z]{3}[A-Z][0-9]$`)

type GeneratorSuite struct {
	suite.Suite
	gen *Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	s.gen = NewGenerator(WithDifferentiator(fixedDifferentiator{letter: 'Q', digit: '7'}))
}

func juan() PersonRecord {
	return PersonRecord{
		FirstName:       "Juan",
		PaternalSurname: "Gomez",
		MaternalSurname: "Lopez",
		BirthDate:       "1990-05-21",
		Gender:          'H',
		BirthState:      "Jalisco",
	}
}

func (s *GeneratorSuite) TestGenerate() {
	s.Run("reference record", func() {
		code, err := s.gen.Generate(juan())
		s.Require().NoError(err)
		s.Equal("GOLJ900521HJOMPNQ7", code.String())
		s.Equal("GOLJ900521HJOMPN", code.Stem())
		s.Equal("900521", code.BirthDigits())
		s.Equal("JO", code.Region())
		s.Equal("Q7", code.Differentiator())
	})

	s.Run("uppercase input produces well formed layout", func() {
		rec := PersonRecord{
			FirstName:       "MARIA",
			PaternalSurname: "HERNANDEZ",
			MaternalSurname: "RUIZ",
			BirthDate:       "2001-12-03",
			Gender:          'M',
			BirthState:      "nuevo leon",
		}
		code, err := s.gen.Generate(rec)
		s.Require().NoError(err)
		s.Equal("HERM011203MNLRZRQ7", code.String())
		s.Regexp(layout, code.String())
	})

	s.Run("initials are copied without uppercasing", func() {
		rec := juan()
		rec.PaternalSurname = "gomez"
		rec.MaternalSurname = "lopez"
		rec.FirstName = "juan"
		code, err := s.gen.Generate(rec)
		s.Require().NoError(err)
		s.Equal("gOlj900521HJOMPNQ7", code.String())
	})

	s.Run("empty maternal surname uses placeholder", func() {
		rec := juan()
		rec.MaternalSurname = ""
		code, err := s.gen.Generate(rec)
		s.Require().NoError(err)
		s.Equal(Length, code.Len())
		s.Equal("X", string([]rune(code.String())[2]))
		s.Equal("X", string([]rune(code.String())[14]))
	})

	s.Run("empty first name and paternal surname use placeholder", func() {
		rec := juan()
		rec.FirstName = ""
		rec.PaternalSurname = ""
		code, err := s.gen.Generate(rec)
		s.Require().NoError(err)
		s.Equal("XXLX900521HJOXPXQ7", code.String())
	})

	s.Run("unknown region resolves to sentinel", func() {
		rec := juan()
		rec.BirthState = "Jaliscoo"
		code, err := s.gen.Generate(rec)
		s.Require().NoError(err)
		s.Equal(UnspecifiedRegion, code.Region())
	})

	s.Run("gender passes through by default", func() {
		rec := juan()
		rec.Gender = 'Z'
		code, err := s.gen.Generate(rec)
		s.Require().NoError(err)
		s.Equal("Z", string([]rune(code.String())[10]))
	})
}

func (s *GeneratorSuite) TestInvalidBirthDate() {
	for _, date := range []string{"", "1990-5-21", "90-05-21", "1990-05-211", "1990/05/21 ", "19900521"} {
		s.Run("length "+date, func() {
			rec := juan()
			rec.BirthDate = date
			code, err := s.gen.Generate(rec)
			s.Empty(code)
			s.ErrorIs(err, ErrInvalidBirthDate)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}

	s.Run("ten characters that are not a date", func() {
		rec := juan()
		rec.BirthDate = "1990-13-45"
		code, err := s.gen.Generate(rec)
		s.Empty(code)
		s.True(errors.Is(err, ErrInvalidBirthDate))
	})

	s.Run("no differentiator is drawn on failure", func() {
		counter := &countingDifferentiator{}
		gen := NewGenerator(WithDifferentiator(counter))
		rec := juan()
		rec.BirthDate = "1990-05"
		_, err := gen.Generate(rec)
		s.Error(err)
		s.Zero(counter.calls)
	})
}

func (s *GeneratorSuite) TestStrictGender() {
	gen := NewGenerator(WithStrictGender(true), WithDifferentiator(fixedDifferentiator{letter: 'A', digit: '0'}))

	s.Run("accepts documented markers", func() {
		for _, g := range []rune{GenderMale, GenderFemale} {
			rec := juan()
			rec.Gender = g
			_, err := gen.Generate(rec)
			s.NoError(err)
		}
	})

	s.Run("rejects other markers", func() {
		rec := juan()
		rec.Gender = 'h'
		code, err := gen.Generate(rec)
		s.Empty(code)
		s.ErrorIs(err, ErrInvalidGender)
	})
}

func (s *GeneratorSuite) TestStemIsDeterministic() {
	gen := NewGenerator()
	first, err := gen.Generate(juan())
	s.Require().NoError(err)
	for range 50 {
		code, err := gen.Generate(juan())
		s.Require().NoError(err)
		s.Equal(Length, code.Len())
		s.Equal(first.Stem(), code.Stem())
	}
}

// TestDifferentiatorDistribution draws enough samples that each bucket is
// expected around 1000 times; bounds sit roughly ten standard deviations out.
func (s *GeneratorSuite) TestDifferentiatorDistribution() {
	gen := NewGenerator()
	letters := map[rune]int{}
	digits := map[rune]int{}

	const trials = 26000
	for range trials {
		code, err := gen.Generate(juan())
		s.Require().NoError(err)
		suffix := []rune(code.Differentiator())
		letters[suffix[0]]++
		digits[suffix[1]]++
	}

	s.Len(letters, 26)
	for r := 'A'; r <= 'Z'; r++ {
		s.InDelta(trials/26, letters[r], 300, "letter %c", r)
	}
	s.Len(digits, 10)
	for r := '0'; r <= '9'; r++ {
		s.InDelta(trials/10, digits[r], 500, "digit %c", r)
	}
}

func (s *GeneratorSuite) TestConcurrentGenerate() {
	type result struct {
		code Code
		err  error
	}
	gen := NewGenerator()
	done := make(chan result, 32)
	for range cap(done) {
		go func() {
			code, err := gen.Generate(juan())
			done <- result{code: code, err: err}
		}()
	}
	for range cap(done) {
		res := <-done
		s.Require().NoError(res.err)
		s.Equal(Length, res.code.Len())
		s.True(strings.HasPrefix(res.code.String(), "GOLJ900521HJOMPN"), "code %q", res.code)
	}
}

type countingDifferentiator struct {
	calls int
}

func (c *countingDifferentiator) Letter() rune {
	c.calls++
	return 'A'
}

func (c *countingDifferentiator) Digit() rune {
	c.calls++
	return '0'
}
