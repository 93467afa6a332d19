package coord

// earthRotationRad is Earth's mean angular rotation rate, rad/s, used to
// fold the observer's own ECF-frame motion into a velocity-frame range rate.
const earthRotationRad = 7.292115e-5

// lightSpeedKmS is the speed of light in km/s.
const lightSpeedKmS = 299792.458

// DopplerFactor returns the ratio a received frequency must be multiplied
// by to correct for relative motion between a fixed ECF observer and a
// satellite with the given ECF position and velocity: 1 + range-rate/c,
// signed by the direction of closure. Ported from doppler_factor.rs.
func DopplerFactor(observerECF, positionECF, velocityECF Vector3) float64 {
	rangeVec := positionECF.Sub(observerECF)
	rangeMag := rangeVec.Length()
	if rangeMag == 0 {
		return 1.0
	}

	rangeVel := Vector3{
		X: velocityECF.X + earthRotationRad*observerECF.Y,
		Y: velocityECF.Y - earthRotationRad*observerECF.X,
		Z: velocityECF.Z,
	}

	rangeRate := rangeVec.Dot(rangeVel) / rangeMag

	sign := 1.0
	if rangeRate < 0 {
		sign = -1.0
	}
	return (1.0 + rangeRate/lightSpeedKmS) * sign
}
