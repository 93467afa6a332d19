package tle

import (
	"math"
	"testing"

	"github.com/anupshinde/sgp4go/satrec"
)

// ISS (ZARYA), a well-known near-Earth TLE used across SGP4 test suites.
const (
	issLine1 = "1 25544U 98067A   08264.51782528 -.00002182  00000-0 -11606-4 0  2927"
	issLine2 = "2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.72125391563537"

	// A deep-space (Molniya-class) TLE, period well above 225 minutes.
	molniyaLine1 = "1 16925U 86065D   06176.82412014  .00008885  00000-0  12808-3 0  3985"
	molniyaLine2 = "2 16925  62.5600  58.8490 7318736  20.4419 358.7461  2.02558331 41580"
)

func TestParseISS(t *testing.T) {
	e, err := Parse(issLine1, issLine2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e.SatelliteNumber != 25544 {
		t.Errorf("satellite number: got %d want 25544", e.SatelliteNumber)
	}
	if e.EpochYear != 8 {
		t.Errorf("epoch year: got %d want 8", e.EpochYear)
	}
	wantIncloDeg := 51.6416
	if gotDeg := e.Inclo * 180.0 / math.Pi; math.Abs(gotDeg-wantIncloDeg) > 1e-4 {
		t.Errorf("inclination: got %f deg want %f deg", gotDeg, wantIncloDeg)
	}
	if math.Abs(e.Ecco-0.0006703) > 1e-7 {
		t.Errorf("eccentricity: got %f want 0.0006703", e.Ecco)
	}
	if e.Bstar == 0 {
		t.Errorf("bstar: expected nonzero drag term from -.11606-4 field")
	}
}

func TestParseTruncatedLine(t *testing.T) {
	_, err := Parse(issLine1[:40], issLine2)
	if err == nil {
		t.Fatal("expected an error for a truncated line 1")
	}
	var perr *ParseError
	if !asParseError(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func asParseError(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if ok {
		*target = pe
	}
	return ok
}

func TestToSatRecNearEarth(t *testing.T) {
	e, err := Parse(issLine1, issLine2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec, err := e.ToSatRec(satrec.Improved)
	if err != nil {
		t.Fatalf("ToSatRec: %v", err)
	}
	if rec.Method != satrec.NearEarth {
		t.Errorf("ISS should classify as near-earth, got %s", rec.Method)
	}
	if rec.Error != satrec.ErrNone {
		t.Errorf("unexpected init error: %s", rec.Error)
	}
}

func TestToSatRecDeepSpace(t *testing.T) {
	e, err := Parse(molniyaLine1, molniyaLine2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec, err := e.ToSatRec(satrec.Improved)
	if err != nil {
		t.Fatalf("ToSatRec: %v", err)
	}
	if rec.Method != satrec.DeepSpace {
		t.Errorf("period %.1f min satellite should classify as deep-space, got %s", rec.Period(), rec.Method)
	}
}

func TestParseExponentialField(t *testing.T) {
	got, err := parseExponential("-", "11606", "4")
	if err != nil {
		t.Fatalf("parseExponential: %v", err)
	}
	want := -0.11606e4
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %g want %g", got, want)
	}
}

func TestDays2MDHMSLeapYear(t *testing.T) {
	mon, day, hr, minute, sec := days2mdhms(2008, 264.51782528)
	if mon != 9 || day != 20 {
		t.Errorf("day-of-year 264 in 2008: got month=%d day=%d, want September 20", mon, day)
	}
	if hr != 12 {
		t.Errorf("hour: got %d want 12", hr)
	}
	_, _ = minute, sec
}
