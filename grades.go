package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// ParseError reports a token that is not a finite number.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grade %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errNotFinite = xerrors.New("not a finite number")
	errHexFloat  = xerrors.New("hexadecimal notation")
)

func isHex(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")
	return len(tok) > 1 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X')
}

// ParseGrades splits entry on whitespace and parses every token, accepting
// both ',' and '.' as decimal separator. A single bad token fails the whole
// entry.
func ParseGrades(entry string) ([]float64, error) {
	var grades []float64
	for _, tok := range strings.Fields(entry) {
		if isHex(tok) {
			return nil, &ParseError{Token: tok, Err: errHexFloat}
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", "."), 64)
		if err != nil {
			return nil, &ParseError{Token: tok, Err: err}
		}
		// ParseFloat accepts "NaN" and "Inf" spellings
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Token: tok, Err: errNotFinite}
		}
		grades = append(grades, v)
	}
	return grades, nil
}
