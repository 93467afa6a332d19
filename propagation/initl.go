package propagation

import (
	"math"

	"github.com/anupshinde/sgp4go/satrec"
)

// InitlInput carries the inputs initl needs: the epoch mean elements plus
// the epoch date and operating mode. Kept as a named struct per spec.md
// §9's design note on option structs, rather than a long positional
// argument list.
type InitlInput struct {
	Ecco    float64
	Epoch   float64 // days since 1950-01-00 00h
	Inclo   float64
	No      float64 // Kozai mean motion, rad/min
	OpsMode satrec.OpsMode
}

// InitlOutput carries initl's auxiliary epoch quantities.
type InitlOutput struct {
	No     float64 // un-Kozai'd (Brouwer) mean motion
	Method satrec.Method

	Ainv, Ao             float64
	Con41, Con42         float64
	Cosio, Cosio2        float64
	Eccsq, Omeosq, Posq  float64
	Rp, Rteosq, Sinio    float64
	Gsto                 float64
}

// Initl un-Kozais the mean motion and computes the auxiliary epoch
// quantities every downstream step (dscom, dsinit, sgp4init) needs: the
// semimajor axis, geometry terms built from cos(i), and Greenwich sidereal
// time at epoch. The un-Kozai procedure is two fixed-point iterations, not
// iteration to convergence — intentional per Vallado (spec.md §9 Open
// Question); do not "fix" it into a converging loop.
func Initl(in InitlInput) InitlOutput {
	ecco := in.Ecco
	inclo := in.Inclo
	no := in.No

	eccsq := ecco * ecco
	omeosq := 1.0 - eccsq
	rteosq := math.Sqrt(omeosq)
	cosio := math.Cos(inclo)
	cosio2 := cosio * cosio

	// Un-Kozai the mean motion: two fixed-point corrections, per spec.md §4.1.
	ak := math.Pow(XKE/no, X2o3)
	d1 := 0.75 * J2 * (3.0*cosio2 - 1.0) / (rteosq * omeosq)
	delPrime := d1 / (ak * ak)
	adel := ak * (1.0 - delPrime*delPrime - delPrime*(1.0/3.0+134.0*delPrime*delPrime/81.0))
	delPrime = d1 / (adel * adel)
	no = no / (1.0 + delPrime)

	ao := math.Pow(XKE/no, X2o3)
	sinio := math.Sin(inclo)
	po := ao * omeosq
	con42 := 1.0 - 5.0*cosio2
	con41 := -con42 - cosio2 - cosio2
	ainv := 1.0 / ao
	posq := po * po
	rp := ao * (1.0 - ecco)

	var gsto float64
	if in.OpsMode == satrec.AFSPCLegacy {
		// Legacy AFSPC GST: a quadratic in days since 1970, fit constants
		// from the original NORAD element-set processing chain.
		ts70 := in.Epoch - 7305.0
		ds70 := math.Floor(ts70 + 1.0e-8)
		tfrac := ts70 - ds70
		const (
			c1     = 1.72027916940703639e-2
			thgr70 = 1.7321343856509374
			fk5r   = 5.07551419432269442e-15
		)
		c1p2p := c1 + TwoPi
		gsto = math.Mod(thgr70+c1*ds70+c1p2p*tfrac+ts70*ts70*fk5r, TwoPi)
		if gsto < 0 {
			gsto += TwoPi
		}
	} else {
		gsto = GSTime(in.Epoch + 2433281.5)
	}

	return InitlOutput{
		No:     no,
		Method: satrec.NearEarth, // deep-space determination happens in sgp4init

		Ainv:   ainv,
		Ao:     ao,
		Con41:  con41,
		Con42:  con42,
		Cosio:  cosio,
		Cosio2: cosio2,
		Eccsq:  eccsq,
		Omeosq: omeosq,
		Posq:   posq,
		Rp:     rp,
		Rteosq: rteosq,
		Sinio:  sinio,
		Gsto:   gsto,
	}
}
