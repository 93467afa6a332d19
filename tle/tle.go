// Package tle parses two-line element sets into the mean orbital elements
// SGP4Init needs. Column layout and field decoding follow the fixed-width
// NORAD format as read by the reference parser (go-satellite's ParseTLE,
// itself a port of the same Vallado-derived layout the propagator uses).
package tle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anupshinde/sgp4go/propagation"
	"github.com/anupshinde/sgp4go/satrec"
)

// ParseError reports a malformed TLE field, naming the field and the raw
// text that failed to parse so a caller can report a useful diagnostic
// without re-deriving the column layout.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tle: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Elements holds the raw (not yet SGP4Init'd) mean elements parsed from a
// TLE, in the units SGP4Init expects: angles in radians, mean motion in
// rad/min, Bstar in 1/earth-radii, Epoch in days since 1950-01-00 00h.
type Elements struct {
	SatelliteNumber  int
	Classification   byte
	EpochYear        int
	EpochDays        float64
	Epoch            float64 // days since 1950-01-00 00h
	Ndot             float64
	Nddot            float64
	Bstar            float64
	Inclo            float64
	Nodeo            float64
	Ecco             float64
	Argpo            float64
	Mo               float64
	No               float64 // Kozai mean motion, rad/min
	RevolutionNumber int
}

const (
	xpdotp = 1440.0 / (2.0 * math.Pi) // rev/day -> rad/min conversion factor
)

// Parse decodes a two-line element set into Elements. It never panics;
// every column it cannot parse as a number is reported as a *ParseError,
// except the revolution number, which is left at zero when unparsable.
func Parse(line1, line2 string) (Elements, error) {
	line1 = strings.TrimRight(line1, "\r\n")
	line2 = strings.TrimRight(line2, "\r\n")

	if len(line1) < 69 {
		return Elements{}, &ParseError{Field: "line1", Value: line1, Err: fmt.Errorf("want at least 69 columns, got %d", len(line1))}
	}
	if len(line2) < 69 {
		return Elements{}, &ParseError{Field: "line2", Value: line2, Err: fmt.Errorf("want at least 69 columns, got %d", len(line2))}
	}

	var e Elements
	var err error

	if e.SatelliteNumber, err = atoi(line1[2:7]); err != nil {
		return Elements{}, &ParseError{Field: "satellite number", Value: line1[2:7], Err: err}
	}
	e.Classification = line1[7]

	if e.EpochYear, err = atoi(line1[18:20]); err != nil {
		return Elements{}, &ParseError{Field: "epoch year", Value: line1[18:20], Err: err}
	}
	if e.EpochDays, err = atof(line1[20:32]); err != nil {
		return Elements{}, &ParseError{Field: "epoch day", Value: line1[20:32], Err: err}
	}

	if e.Ndot, err = atof(strings.ReplaceAll(line1[33:43], " ", "")); err != nil {
		return Elements{}, &ParseError{Field: "ndot", Value: line1[33:43], Err: err}
	}
	if e.Nddot, err = parseExponential(line1[44:45], line1[45:50], line1[50:52]); err != nil {
		return Elements{}, &ParseError{Field: "nddot", Value: line1[44:52], Err: err}
	}
	if e.Bstar, err = parseExponential(line1[53:54], line1[54:59], line1[59:61]); err != nil {
		return Elements{}, &ParseError{Field: "bstar", Value: line1[53:61], Err: err}
	}

	if e.Inclo, err = atof(strings.TrimSpace(line2[8:16])); err != nil {
		return Elements{}, &ParseError{Field: "inclination", Value: line2[8:16], Err: err}
	}
	if e.Nodeo, err = atof(strings.TrimSpace(line2[17:25])); err != nil {
		return Elements{}, &ParseError{Field: "raan", Value: line2[17:25], Err: err}
	}
	if e.Ecco, err = atof("0." + strings.TrimSpace(line2[26:33])); err != nil {
		return Elements{}, &ParseError{Field: "eccentricity", Value: line2[26:33], Err: err}
	}
	if e.Argpo, err = atof(strings.TrimSpace(line2[34:42])); err != nil {
		return Elements{}, &ParseError{Field: "argument of perigee", Value: line2[34:42], Err: err}
	}
	if e.Mo, err = atof(strings.TrimSpace(line2[43:51])); err != nil {
		return Elements{}, &ParseError{Field: "mean anomaly", Value: line2[43:51], Err: err}
	}
	if e.No, err = atof(strings.TrimSpace(line2[52:63])); err != nil {
		return Elements{}, &ParseError{Field: "mean motion", Value: line2[52:63], Err: err}
	}
	if len(line2) >= 68 {
		e.RevolutionNumber, _ = atoi(strings.TrimSpace(line2[63:68]))
	}

	year := e.EpochYear + 1900
	if e.EpochYear < 57 {
		year = e.EpochYear + 2000
	}
	mon, day, hr, minute, sec := days2mdhms(year, e.EpochDays)
	e.Epoch = jday(year, mon, day, hr, minute, sec) - 2433281.5

	// Convert TLE units (degrees, revs/day) to SGP4's working units
	// (radians, rad/min).
	e.Inclo *= propagation.Deg2Rad
	e.Nodeo *= propagation.Deg2Rad
	e.Argpo *= propagation.Deg2Rad
	e.Mo *= propagation.Deg2Rad
	e.No /= xpdotp
	e.Ndot /= xpdotp * 1440.0
	e.Nddot /= xpdotp * 1440.0 * 1440.0

	return e, nil
}

// ToSatRec initializes a SatRec from parsed TLE elements with the given
// opsmode, running the full SGP4Init coefficient derivation.
func (e Elements) ToSatRec(opsMode satrec.OpsMode) (*satrec.SatRec, error) {
	return propagation.SGP4Init(propagation.InitOptions{
		OpsMode: opsMode,
		Epoch:   e.Epoch,
		Bstar:   e.Bstar,
		Ecco:    e.Ecco,
		Argpo:   e.Argpo,
		Inclo:   e.Inclo,
		Mo:      e.Mo,
		No:      e.No,
		Nodeo:   e.Nodeo,
	})
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func atof(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseExponential reconstructs a TLE-style implied-decimal-point,
// implied-exponent number from its three fixed-width pieces: a leading
// sign, the digits after the decimal point, and a signed single-digit
// power-of-ten exponent (e.g. sign=" ", mantissa="12345", exp="-3" means
// 0.12345e-3).
func parseExponential(sign, mantissa, exp string) (float64, error) {
	s := strings.TrimSpace(sign)
	if s == "" {
		s = "+"
	}
	m := strings.TrimSpace(mantissa)
	x := strings.TrimSpace(exp)
	if m == "" || x == "" {
		return 0, nil
	}
	str := s + "0." + m + "e" + x
	return strconv.ParseFloat(str, 64)
}
