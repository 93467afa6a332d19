package coord

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGeodeticToECFEquator(t *testing.T) {
	p := GeodeticToECF(Geodetic{LatitudeRad: 0, LongitudeRad: 0, HeightKm: 0})
	if !almostEqual(p.X, wgs84A, 1e-9) || !almostEqual(p.Y, 0, 1e-9) || !almostEqual(p.Z, 0, 1e-9) {
		t.Errorf("equator/prime meridian: got %+v, want X=%f", p, wgs84A)
	}
}

func TestGeodeticToECFPole(t *testing.T) {
	p := GeodeticToECF(Geodetic{LatitudeRad: math.Pi / 2, LongitudeRad: 0, HeightKm: 0})
	if !almostEqual(p.X, 0, 1e-6) || !almostEqual(p.Y, 0, 1e-6) {
		t.Errorf("pole: got nonzero equatorial component %+v", p)
	}
	if p.Z <= wgs84B-1.0 || p.Z >= wgs84A {
		t.Errorf("pole height: got Z=%f, want close to polar radius %f", p.Z, wgs84B)
	}
}

func TestGeodeticECFRoundtrip(t *testing.T) {
	cases := []Geodetic{
		{LatitudeRad: 0.7, LongitudeRad: 1.2, HeightKm: 0.4},
		{LatitudeRad: -0.5, LongitudeRad: -2.1, HeightKm: 0.0},
		{LatitudeRad: 1.4, LongitudeRad: 3.0, HeightKm: 1.5},
	}
	for _, g := range cases {
		ecf := GeodeticToECF(g)
		back := ECFToGeodetic(ecf)
		if !almostEqual(g.LatitudeRad, back.LatitudeRad, 1e-9) {
			t.Errorf("lat roundtrip: got %f want %f", back.LatitudeRad, g.LatitudeRad)
		}
		if !almostEqual(g.LongitudeRad, back.LongitudeRad, 1e-9) {
			t.Errorf("lon roundtrip: got %f want %f", back.LongitudeRad, g.LongitudeRad)
		}
		if !almostEqual(g.HeightKm, back.HeightKm, 1e-6) {
			t.Errorf("height roundtrip: got %f want %f", back.HeightKm, g.HeightKm)
		}
	}
}

func TestECIECFRoundtrip(t *testing.T) {
	eci := Vector3{X: 4000, Y: 3000, Z: 5000}
	gmst := 1.23456
	ecf := ECIToECF(eci, gmst)
	back := ECFToECI(ecf, gmst)
	if !almostEqual(eci.X, back.X, 1e-9) || !almostEqual(eci.Y, back.Y, 1e-9) || !almostEqual(eci.Z, back.Z, 1e-9) {
		t.Errorf("ECI/ECF roundtrip: got %+v want %+v", back, eci)
	}
	// A rotation about Z never changes the Z component or the magnitude.
	if !almostEqual(ecf.Z, eci.Z, 1e-9) {
		t.Errorf("rotation changed Z: got %f want %f", ecf.Z, eci.Z)
	}
	if !almostEqual(ecf.Length(), eci.Length(), 1e-6) {
		t.Errorf("rotation changed magnitude: got %f want %f", ecf.Length(), eci.Length())
	}
}

func TestLookAnglesOverhead(t *testing.T) {
	observer := Geodetic{LatitudeRad: 0.5, LongitudeRad: 1.0, HeightKm: 0}
	observerECF := GeodeticToECF(observer)
	dir := Vector3{X: observerECF.X, Y: observerECF.Y, Z: observerECF.Z}
	n := dir.Length()
	satECF := observerECF.Add(dir.Scale(500.0 / n))

	la := LookAnglesECF(observer, satECF)
	if la.ElevationRad < 1.55 {
		t.Errorf("directly overhead: got elevation %f rad, want near pi/2", la.ElevationRad)
	}
	if !almostEqual(la.RangeKm, 500.0, 1e-6) {
		t.Errorf("range: got %f want 500", la.RangeKm)
	}
}

func TestDopplerFactorStationary(t *testing.T) {
	observer := Vector3{X: 0, Y: 0, Z: 6378.135}
	position := Vector3{X: 0, Y: 0, Z: 6878.135}
	velocity := Vector3{X: 7.91, Y: 0, Z: 0}

	got := DopplerFactor(observer, position, velocity)
	if !almostEqual(got, 1.0, 1e-6) {
		t.Errorf("doppler factor: got %f, want ~1.0", got)
	}
}

func TestDopplerFactorApproaching(t *testing.T) {
	observer := Vector3{X: 0, Y: 0, Z: 0}
	position := Vector3{X: 1000, Y: 0, Z: 0}
	velocity := Vector3{X: -1.0, Y: 0, Z: 0}

	got := DopplerFactor(observer, position, velocity)
	if got >= 1.0 {
		t.Errorf("approaching satellite should blueshift: got factor %f", got)
	}
}
