package handler

import (
	"strings"
	"unicode/utf8"

	"curp/internal/curp"
	dErrors "curp/pkg/domain-errors"
)

// GenerateRequest is the HTTP request body for POST /generate_curp.
type GenerateRequest struct {
	FirstName     string `json:"first_name"`
	FatherSurname string `json:"father_surname"`
	MotherSurname string `json:"mother_surname"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	BirthState    string `json:"birth_state"`

	// Parsed values (populated by Validate)
	parsedGender rune
}

// Normalize trims surrounding whitespace from the birth state so form input
// such as "Jalisco " still matches the region table. Every other field is
// passed to the generator exactly as received: initials and the birth date
// length are part of the code.
func (r *GenerateRequest) Normalize() {
	r.BirthState = strings.TrimSpace(r.BirthState)
}

// Validate checks transport-level shape only. Content rules (birth date
// layout, region lookup) belong to the generator so their failures follow
// the configured error policy. Body size is bounded by DecodeAndPrepare.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *GenerateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if utf8.RuneCountInString(r.Gender) != 1 {
		return dErrors.New(dErrors.CodeBadRequest, "gender must be a single character")
	}
	r.parsedGender, _ = utf8.DecodeRuneInString(r.Gender)
	return nil
}

// Record converts the validated request to the generator's input.
func (r *GenerateRequest) Record() curp.PersonRecord {
	return curp.PersonRecord{
		FirstName:       r.FirstName,
		PaternalSurname: r.FatherSurname,
		MaternalSurname: r.MotherSurname,
		BirthDate:       r.BirthDate,
		Gender:          r.parsedGender,
		BirthState:      r.BirthState,
	}
}
