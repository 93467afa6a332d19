// Package timescale converts between the time scales an orbit propagator
// has to juggle: civil UTC (what a TLE epoch and a ground-station clock
// give you), TT (what SGP4's secular-rate constants are implicitly tuned
// against), and UT1 (what Earth's actual rotation angle, and therefore
// GMST, depends on). The conversions follow the standard USNO/IERS
// formulas; DeltaT and LeapSecondOffset are table-driven rather than
// fitted, matching how the rest of this module favors small lookup tables
// over closed-form approximations wherever the underlying quantity is
// itself tabulated data (leap seconds are an IERS decree, not a formula).
package timescale

import (
	"math"
	"time"
)

// SecPerDay converts between days and seconds.
const SecPerDay = 86400.0

// jdUnixEpoch is the Julian date of 1970-01-01T00:00:00 UTC.
const jdUnixEpoch = 2440587.5

// TimeToJDUTC converts a wall-clock time (in any location; it is first
// normalized to UTC) to a Julian date.
func TimeToJDUTC(t time.Time) float64 {
	t = t.UTC()
	sinceEpoch := t.Sub(time.Unix(0, 0).UTC())
	return jdUnixEpoch + sinceEpoch.Seconds()/SecPerDay
}

// JDToCalendar converts a UTC Julian date back to a time.Time, the inverse
// of TimeToJDUTC.
func JDToCalendar(jdUTC float64) time.Time {
	seconds := (jdUTC - jdUnixEpoch) * SecPerDay
	whole := math.Floor(seconds)
	nanos := (seconds - whole) * 1e9
	return time.Unix(int64(whole), int64(math.Round(nanos))).UTC()
}

// leapSecondEntry pairs a Julian date (UTC, start of validity) with the
// TAI-UTC offset in effect from that moment on.
type leapSecondEntry struct {
	jdUTC  float64
	offset float64
}

// leapSeconds is the IERS leap-second schedule since the start of the
// modern leap-second era (1972-01-01). Offsets are whole seconds, TAI-UTC.
var leapSeconds = []leapSecondEntry{
	{2441317.5, 10}, // 1972-01-01
	{2441499.5, 11}, // 1972-07-01
	{2441683.5, 12}, // 1973-01-01
	{2442048.5, 13}, // 1974-01-01
	{2442413.5, 14}, // 1975-01-01
	{2442778.5, 15}, // 1976-01-01
	{2443144.5, 16}, // 1977-01-01
	{2443509.5, 17}, // 1978-01-01
	{2443874.5, 18}, // 1979-01-01
	{2444239.5, 19}, // 1980-01-01
	{2444786.5, 20}, // 1981-07-01
	{2445151.5, 21}, // 1982-07-01
	{2445516.5, 22}, // 1983-07-01
	{2446247.5, 23}, // 1985-07-01
	{2447161.5, 24}, // 1988-01-01
	{2447892.5, 25}, // 1990-01-01
	{2448257.5, 26}, // 1991-01-01
	{2448804.5, 27}, // 1992-07-01
	{2449169.5, 28}, // 1993-07-01
	{2449534.5, 29}, // 1994-07-01
	{2450083.5, 30}, // 1996-01-01
	{2450630.5, 31}, // 1997-07-01
	{2451179.5, 32}, // 1999-01-01
	{2453736.5, 33}, // 2006-01-01
	{2454832.5, 34}, // 2009-01-01
	{2456109.5, 35}, // 2012-07-01
	{2457204.5, 36}, // 2015-07-01
	{2457754.5, 37}, // 2017-01-01
}

// LeapSecondOffset returns TAI-UTC, in seconds, for the given UTC Julian
// date. Dates before the table's first entry return the first entry's
// offset; dates after the last known leap second return the last entry's
// offset, since no further leap seconds have been announced.
func LeapSecondOffset(jdUTC float64) float64 {
	if jdUTC < leapSeconds[0].jdUTC {
		return leapSeconds[0].offset
	}
	offset := leapSeconds[0].offset
	for _, e := range leapSeconds {
		if jdUTC < e.jdUTC {
			break
		}
		offset = e.offset
	}
	return offset
}

// deltaTEntry pairs a decimal year with ΔT = TT - UT1, in seconds.
type deltaTEntry struct {
	year float64
	dt   float64
}

// deltaTTable is a decade-spaced history of ΔT, covering the historical
// record's slow drift (positive in the 19th century, briefly near zero
// around 1870-1900, then growing through the 20th and 21st centuries as
// Earth's rotation lags ephemeris time) plus a long-term linear
// continuation beyond the last observed decade.
var deltaTTable = []deltaTEntry{
	{1800, 18.3670},
	{1810, 16.0},
	{1820, 14.6},
	{1830, 13.0},
	{1840, 10.0},
	{1850, 7.0},
	{1860, 5.0},
	{1870, 2.0},
	{1880, -3.0},
	{1890, -6.0},
	{1900, -2.8},
	{1910, 3.0},
	{1920, 10.0},
	{1930, 21.0},
	{1940, 24.3},
	{1950, 29.1},
	{1960, 33.1},
	{1970, 40.2},
	{1980, 50.5},
	{1990, 56.9},
	{2000, 63.829},
	{2010, 66.1},
	{2020, 72.0},
	{2030, 76.0},
	{2040, 80.0},
	{2050, 85.0},
	{2075, 92.0},
	{2100, 100.0},
	{2150, 140.0},
	{2200, 180.0},
}

// DeltaT returns an estimate of ΔT = TT - UT1, in seconds, for a decimal
// year, linearly interpolating between decade table entries. Years before
// or after the table's range are clamped to the nearest endpoint.
func DeltaT(year float64) float64 {
	n := len(deltaTTable)
	if year <= deltaTTable[0].year {
		return deltaTTable[0].dt
	}
	if year >= deltaTTable[n-1].year {
		return deltaTTable[n-1].dt
	}
	idx := 0
	for idx < n-1 && deltaTTable[idx+1].year < year {
		idx++
	}
	if idx >= n-1 {
		return deltaTTable[n-1].dt
	}
	lo, hi := deltaTTable[idx], deltaTTable[idx+1]
	frac := (year - lo.year) / (hi.year - lo.year)
	return lo.dt + frac*(hi.dt-lo.dt)
}

// UTCToTT converts a UTC Julian date to Terrestrial Time: TT = UTC +
// (TAI-UTC) + 32.184s, the fixed TT-TAI offset fixed by definition in 1977.
func UTCToTT(jdUTC float64) float64 {
	return jdUTC + (LeapSecondOffset(jdUTC)+32.184)/SecPerDay
}

// TTToUT1 converts a TT Julian date to UT1 using the ΔT table.
func TTToUT1(jdTT float64) float64 {
	year := 2000.0 + (jdTT-2451545.0)/365.25
	return jdTT - DeltaT(year)/SecPerDay
}

// TDBMinusTT returns TDB-TT, in seconds, using the standard Fairhead &
// Bretagnon approximation: a sub-2-millisecond periodic term driven by
// Earth's orbital mean anomaly, negligible for SGP4's purposes but
// provided for callers needing precise light-time or Doppler work.
func TDBMinusTT(jdTT float64) float64 {
	g := (357.53 + 0.9856003*(jdTT-2451545.0)) * Deg2Rad
	return 0.001658*math.Sin(g) + 0.000014*math.Sin(2*g)
}

const Deg2Rad = math.Pi / 180.0
