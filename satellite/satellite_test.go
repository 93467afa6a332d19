package satellite

import (
	"math"
	"testing"
	"time"

	"github.com/anupshinde/sgp4go/coord"
	"github.com/anupshinde/sgp4go/satrec"
	"github.com/anupshinde/sgp4go/timescale"
)

// ISS TLE (representative, may be outdated — we just need valid propagation).
const (
	issName  = "ISS (ZARYA)"
	issLine1 = "1 25544U 98067A   24001.00000000  .00016717  00000-0  10270-3 0  9005"
	issLine2 = "2 25544  51.6400 208.9163 0006703 247.1970 112.8444 15.49560830999999"
)

func mustFromTLE(t *testing.T, line1, line2 string) Sat {
	t.Helper()
	sat, err := FromTLE(issName, line1, line2, satrec.Improved)
	if err != nil {
		t.Fatalf("FromTLE: %v", err)
	}
	return sat
}

func TestFromTLE(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	if sat.Name != issName {
		t.Errorf("name: got %q want %q", sat.Name, issName)
	}
	if sat.Rec.Method != satrec.NearEarth {
		t.Errorf("ISS should classify as near-earth, got %s", sat.Rec.Method)
	}
}

func TestSubPoint(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	jd := timescale.TimeToJDUTC(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	g, err := sat.SubPoint(jd)
	if err != nil {
		t.Fatalf("SubPoint: %v", err)
	}
	latDeg := g.LatitudeRad * 180.0 / math.Pi

	// ISS orbit: inclination ~51.6°, so latitude stays within that band.
	if latDeg < -52 || latDeg > 52 {
		t.Errorf("latitude out of ISS range: %f deg", latDeg)
	}
}

func TestSubPointDifferentTimes(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	t0 := timescale.TimeToJDUTC(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	t1 := timescale.TimeToJDUTC(time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC))

	g0, err := sat.SubPoint(t0)
	if err != nil {
		t.Fatalf("SubPoint t0: %v", err)
	}
	g1, err := sat.SubPoint(t1)
	if err != nil {
		t.Fatalf("SubPoint t1: %v", err)
	}

	if g0.LatitudeRad == g1.LatitudeRad && g0.LongitudeRad == g1.LongitudeRad {
		t.Error("position unchanged after 30 minutes")
	}
	if math.IsNaN(g0.LatitudeRad) || math.IsNaN(g0.LongitudeRad) || math.IsNaN(g1.LatitudeRad) || math.IsNaN(g1.LongitudeRad) {
		t.Error("got NaN coordinates")
	}
}

// issEpochUTC is the ISS TLE epoch (2024-01-01 00:00 UTC) as a UTC Julian date.
var issEpochUTC = timescale.TimeToJDUTC(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

// nycObserver is the ground station used across the pass-prediction tests.
var nycObserver = coord.Geodetic{
	LatitudeRad:  40.7128 * math.Pi / 180.0,
	LongitudeRad: -74.0060 * math.Pi / 180.0,
}

func TestFindEventsBasic(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	startJD := issEpochUTC
	endJD := startJD + 1.0 // 1 day

	events, err := FindEvents(sat, nycObserver, startJD, endJD, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	// ISS orbits ~15.5 times/day; not all passes are visible from one location.
	if len(events) < 3 {
		t.Errorf("got %d events in 24h, want at least 3 (one pass)", len(events))
	}

	for i := 1; i < len(events); i++ {
		if events[i].JDUTC < events[i-1].JDUTC {
			t.Errorf("events not sorted: event %d before event %d", i, i-1)
			break
		}
	}
}

func TestFindEventsPassStructure(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	startJD := issEpochUTC
	endJD := startJD + 1.0

	events, err := FindEvents(sat, nycObserver, startJD, endJD, 0.0)
	if err != nil {
		t.Fatal(err)
	}

	i := 0
	passes := 0
	for i < len(events) {
		if events[i].Kind != Rise {
			t.Errorf("expected Rise at index %d, got kind=%d", i, events[i].Kind)
			break
		}
		if i+2 >= len(events) {
			break // incomplete pass at end of range
		}
		if events[i+1].Kind != Culmination {
			t.Errorf("expected Culmination at index %d, got kind=%d", i+1, events[i+1].Kind)
			break
		}
		if events[i+2].Kind != Set {
			t.Errorf("expected Set at index %d, got kind=%d", i+2, events[i+2].Kind)
			break
		}
		if events[i+1].ElevDeg < events[i].ElevDeg {
			t.Errorf("pass %d: culmination elev %.2f < rise elev %.2f",
				passes, events[i+1].ElevDeg, events[i].ElevDeg)
		}
		if events[i].JDUTC >= events[i+1].JDUTC || events[i+1].JDUTC >= events[i+2].JDUTC {
			t.Errorf("pass %d: times not ordered", passes)
		}
		passes++
		i += 3
	}
	if passes == 0 {
		t.Error("no complete passes found")
	}
}

func TestFindEventsMinAltitude(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	startJD := issEpochUTC
	endJD := startJD + 1.0

	allEvents, err := FindEvents(sat, nycObserver, startJD, endJD, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	highEvents, err := FindEvents(sat, nycObserver, startJD, endJD, 30.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(highEvents) > len(allEvents) {
		t.Errorf("30deg threshold gave %d events > %d events at 0deg", len(highEvents), len(allEvents))
	}
}

func TestFindEventsCulminationAltitude(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	startJD := issEpochUTC
	endJD := startJD + 2.0

	events, err := FindEvents(sat, nycObserver, startJD, endJD, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range events {
		if e.Kind != Culmination {
			continue
		}
		if e.ElevDeg <= 0 {
			t.Errorf("event %d: culmination elev = %.2f deg, should be positive", i, e.ElevDeg)
		}
		if e.ElevDeg > 90 {
			t.Errorf("event %d: culmination elev = %.2f deg, should be <= 90", i, e.ElevDeg)
		}
	}
}

func TestFindEventsShortRange(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	startJD := issEpochUTC
	endJD := startJD + 1.0/24.0

	events, err := FindEvents(sat, nycObserver, startJD, endJD, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(events); i++ {
		if events[i].JDUTC < events[i-1].JDUTC {
			t.Error("events not sorted in short range")
			break
		}
	}
}

func TestPropagateMatchesPropagateJD(t *testing.T) {
	sat := mustFromTLE(t, issLine1, issLine2)
	t0 := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	want, err := sat.Propagate(t0)
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	got, err := sat.PropagateJD(timescale.TimeToJDUTC(t0))
	if err != nil {
		t.Fatalf("PropagateJD: %v", err)
	}
	if want.Position != got.Position || want.Velocity != got.Velocity {
		t.Errorf("Propagate and PropagateJD disagree: %+v vs %+v", want, got)
	}
}
