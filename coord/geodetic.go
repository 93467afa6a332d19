// Package coord converts between the Earth-fixed (ECF) and Earth-centered
// inertial (ECI/TEME) frames SGP4 works in, and between those and a ground
// observer's topocentric look angles. The rotations and the WGS84 ellipsoid
// geometry follow transforms.rs; the Doppler factor follows
// doppler_factor.rs.
package coord

import "math"

// WGS84 ellipsoid, the reference body ground-station geometry is computed
// against (distinct from the WGS-72 gravity constants SGP4 itself uses).
const (
	wgs84A = 6378.137 // equatorial radius, km
	wgs84B = 6356.7523142
	wgs84F = (wgs84A - wgs84B) / wgs84A
	wgs84E2 = 2.0*wgs84F - wgs84F*wgs84F
)

// Geodetic is a ground or sub-satellite point in geodetic coordinates.
type Geodetic struct {
	LatitudeRad  float64
	LongitudeRad float64
	HeightKm     float64
}

// GeodeticToECF converts geodetic coordinates to Earth-centered-fixed
// Cartesian position, in km.
func GeodeticToECF(g Geodetic) Vector3 {
	sinLat, cosLat := math.Sincos(g.LatitudeRad)
	sinLon, cosLon := math.Sincos(g.LongitudeRad)

	normal := wgs84A / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)

	return Vector3{
		X: (normal + g.HeightKm) * cosLat * cosLon,
		Y: (normal + g.HeightKm) * cosLat * sinLon,
		Z: (normal*(1.0-wgs84E2) + g.HeightKm) * sinLat,
	}
}

// ECFToGeodetic converts an ECF Cartesian position (km) to geodetic
// coordinates via Vallado's iterative procedure (20 fixed-point iterations
// on the ellipsoid's radius of curvature; converges well inside that bound
// for any physically realizable altitude).
func ECFToGeodetic(ecf Vector3) Geodetic {
	const maxIter = 20

	r := math.Hypot(ecf.X, ecf.Y)
	lon := math.Atan2(ecf.Y, ecf.X)

	lat := math.Atan2(ecf.Z, r)
	var c float64
	for i := 0; i < maxIter; i++ {
		sinLat := math.Sin(lat)
		c = 1.0 / math.Sqrt(1.0-wgs84E2*sinLat*sinLat)
		lat = math.Atan2(ecf.Z+wgs84A*c*wgs84E2*sinLat, r)
	}

	height := r/math.Cos(lat) - wgs84A*c
	return Geodetic{LatitudeRad: lat, LongitudeRad: lon, HeightKm: height}
}

// ECIToECF rotates an Earth-centered-inertial (TEME) position into the
// Earth-fixed frame through the Greenwich sidereal angle gmst (radians).
func ECIToECF(eci Vector3, gmst float64) Vector3 {
	sinG, cosG := math.Sincos(gmst)
	return Vector3{
		X: eci.X*cosG + eci.Y*sinG,
		Y: -eci.X*sinG + eci.Y*cosG,
		Z: eci.Z,
	}
}

// ECFToECI rotates an Earth-fixed position back into the inertial (TEME)
// frame through the Greenwich sidereal angle gmst (radians): the inverse
// of ECIToECF.
func ECFToECI(ecf Vector3, gmst float64) Vector3 {
	sinG, cosG := math.Sincos(gmst)
	return Vector3{
		X: ecf.X*cosG - ecf.Y*sinG,
		Y: ecf.X*sinG + ecf.Y*cosG,
		Z: ecf.Z,
	}
}

// SubPoint returns the geodetic sub-satellite point for a TEME position at
// the given Greenwich sidereal time, matching the reference
// "eci_to_geodetic" convenience combination of ECIToECF and ECFToGeodetic.
func SubPoint(eci Vector3, gmst float64) Geodetic {
	return ECFToGeodetic(ECIToECF(eci, gmst))
}
