package propagation

import "math"

// GSTime computes Greenwich sidereal time, in radians, from a Julian date
// (UT1). Ported from original_source's gstime.rs; used by initl's
// "improved" opsmode branch and by the satellite package to get the angle
// it passes to coord's TEME/ECF rotation.
func GSTime(jdut1 float64) float64 {
	tut1 := (jdut1 - 2451545.0) / 36525.0

	temp := -6.2e-6*tut1*tut1*tut1 +
		0.093104*tut1*tut1 +
		(876600.0*3600+8640184.812866)*tut1 +
		67310.54841

	temp = math.Mod(temp*Deg2Rad/240.0, TwoPi)
	if temp < 0.0 {
		temp += TwoPi
	}
	return temp
}
