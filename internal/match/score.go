package match

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingInt matches the integer prefix of a score cell, e.g. "13" in "13*".
var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// Score is a team's running score. Valid is false when the page text was not
// a number; such scores render as "NaN".
type Score struct {
	Value int
	Valid bool
}

// NewScore returns a valid score
func NewScore(v int) Score {
	return Score{Value: v, Valid: true}
}

// ParseScore reads the base-10 integer at the start of text. Anything else
// yields an invalid Score rather than an error.
func ParseScore(text string) Score {
	digits := leadingInt.FindString(strings.TrimSpace(text))
	if digits == "" {
		return Score{}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return Score{}
	}
	return NewScore(v)
}

// String returns the decimal value or "NaN"
func (s Score) String() string {
	if !s.Valid {
		return "NaN"
	}
	return strconv.Itoa(s.Value)
}

// MarshalJSON encodes invalid scores as null.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.Value)), nil
}
