// Package satellite is the top-level façade: given a TLE, it propagates to
// a wall-clock or Julian-date instant and answers pass-prediction queries
// against a ground station, wiring together tle, propagation, coord,
// timescale, and search the way the reference satellite package wires
// together go-satellite, coord, search, and timescale.
package satellite

import (
	"fmt"
	"math"
	"time"

	"github.com/anupshinde/sgp4go/coord"
	"github.com/anupshinde/sgp4go/propagation"
	"github.com/anupshinde/sgp4go/satrec"
	"github.com/anupshinde/sgp4go/search"
	"github.com/anupshinde/sgp4go/timescale"
	"github.com/anupshinde/sgp4go/tle"
)

// Sat holds a named, initialized satellite ready for propagation.
type Sat struct {
	Name string
	Rec  *satrec.SatRec
}

// FromTLE parses a two-line element set and runs SGP4Init, producing a Sat
// ready to propagate. opsMode selects AFSPC-legacy vs. improved sidereal
// time/node-wrapping behavior; most callers want satrec.Improved.
func FromTLE(name, line1, line2 string, opsMode satrec.OpsMode) (Sat, error) {
	elements, err := tle.Parse(line1, line2)
	if err != nil {
		return Sat{}, fmt.Errorf("satellite: parsing %q: %w", name, err)
	}
	rec, err := elements.ToSatRec(opsMode)
	if err != nil {
		return Sat{}, fmt.Errorf("satellite: initializing %q: %w", name, err)
	}
	return Sat{Name: name, Rec: rec}, nil
}

// Propagate returns the TEME position (km) and velocity (km/s) at the given
// wall-clock time. The record's State is mutated by this call (spec.md's
// SatRec reuse invariant); concurrent callers should Clone the record first.
func (s Sat) Propagate(t time.Time) (satrec.SGP4Result, error) {
	return s.PropagateJD(timescale.TimeToJDUTC(t))
}

// PropagateJD returns the TEME position and velocity at the given UTC
// Julian date.
func (s Sat) PropagateJD(jdUTC float64) (satrec.SGP4Result, error) {
	tsince := (jdUTC - s.Rec.JdSatEpoch - s.Rec.JdSatEpochOffset) * propagationMinutesPerDay
	return propagation.SGP4(s.Rec, tsince)
}

const propagationMinutesPerDay = 1440.0

// SubPoint returns the sub-satellite point (geodetic, radians/km) at the
// given UTC Julian date.
func (s Sat) SubPoint(jdUTC float64) (coord.Geodetic, error) {
	result, err := s.PropagateJD(jdUTC)
	if err != nil {
		return coord.Geodetic{}, err
	}
	gmst := gmstRad(jdUTC)
	pos := coord.Vector3{X: result.Position.X, Y: result.Position.Y, Z: result.Position.Z}
	return coord.SubPoint(pos, gmst), nil
}

// Event kinds returned by FindEvents.
const (
	Rise        = 0
	Culmination = 1
	Set         = 2
)

// PassEvent represents a satellite pass event (rise, culmination, or set)
// as seen from a ground station.
type PassEvent struct {
	JDUTC   float64
	Kind    int
	ElevDeg float64
}

// FindEvents finds rise, culmination, and set events for a satellite as
// seen from a ground observer across [startJD, endJD] (UTC Julian dates).
// minElevDeg is the visibility threshold, typically 0.
func FindEvents(s Sat, observer coord.Geodetic, startJD, endJD, minElevDeg float64) ([]PassEvent, error) {
	const stepDays = 1.0 / 1440.0 // 1 minute; LEO passes last only a few minutes

	elevFunc := elevationFunc(s, observer)

	discreteFunc := func(jd float64) int {
		if elevFunc(jd) >= minElevDeg {
			return 1
		}
		return 0
	}
	transitions, err := search.FindDiscrete(startJD, endJD, stepDays, discreteFunc, 0)
	if err != nil {
		return nil, err
	}

	var events []PassEvent
	for i := 0; i < len(transitions); i++ {
		e := transitions[i]
		if e.NewValue != 1 {
			continue
		}
		riseJD := e.T
		events = append(events, PassEvent{JDUTC: riseJD, Kind: Rise, ElevDeg: elevFunc(riseJD)})

		setJD := endJD
		if i+1 < len(transitions) && transitions[i+1].NewValue == 0 {
			setJD = transitions[i+1].T
			i++

			maxima, err := search.FindMaxima(riseJD, setJD, stepDays, elevFunc, 0)
			if err == nil && len(maxima) > 0 {
				best := maxima[0]
				for _, m := range maxima[1:] {
					if m.Value > best.Value {
						best = m
					}
				}
				events = append(events, PassEvent{JDUTC: best.T, Kind: Culmination, ElevDeg: best.Value})
			}
			events = append(events, PassEvent{JDUTC: setJD, Kind: Set, ElevDeg: elevFunc(setJD)})
		}
	}

	return events, nil
}

// elevationFunc returns a function computing a satellite's elevation in
// degrees as seen from a ground observer, given a UTC Julian date.
func elevationFunc(s Sat, observer coord.Geodetic) func(float64) float64 {
	return func(jdUTC float64) float64 {
		result, err := s.PropagateJD(jdUTC)
		if err != nil {
			return -90.0
		}
		gmst := gmstRad(jdUTC)
		pos := coord.Vector3{X: result.Position.X, Y: result.Position.Y, Z: result.Position.Z}
		la := coord.LookAnglesECI(observer, pos, gmst)
		return la.ElevationRad * 180.0 / math.Pi
	}
}

// gmstRad returns Greenwich Mean Sidereal Time, in radians, for a UTC
// Julian date, via UT1 (through the timescale package's ΔT estimate) and
// the propagator's own GSTime formula, so the whole façade shares one
// sidereal-time implementation with the propagator.
func gmstRad(jdUTC float64) float64 {
	jdTT := timescale.UTCToTT(jdUTC)
	jdUT1 := timescale.TTToUT1(jdTT)
	return propagation.GSTime(jdUT1)
}
