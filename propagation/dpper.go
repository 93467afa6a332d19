package propagation

import (
	"math"

	"github.com/anupshinde/sgp4go/satrec"
)

// dpperInput bundles dpper's epoch-constant coefficients (from dscom) with
// the per-call mean elements it perturbs.
type dpperInput struct {
	Coeffs  *satrec.Coefficients
	Phase   satrec.InitPhase
	OpsMode satrec.OpsMode
	T       float64

	Ep, Inclp, Nodep, Argpp, Mp float64
}

type dpperOutput struct {
	Ep, Inclp, Nodep, Argpp, Mp float64
}

// dpper applies deep-space long-period periodic corrections to the mean
// elements. With Phase == Initializing it returns the elements unchanged
// and stores nothing; every later call subtracts the baseline
// Peo/Pinco/Plo/Pgho/Pho before applying the corrections. dscom sets that
// baseline to zero, so the full periodic terms are applied (dpper.rs).
func dpper(in dpperInput) dpperOutput {
	c := in.Coeffs
	const (
		zns = 1.19459e-5
		zes = 0.01675
		znl = 1.5835218e-4
		zel = 0.05490
	)

	ep := in.Ep
	inclp := in.Inclp
	nodep := in.Nodep
	argpp := in.Argpp
	mp := in.Mp

	zm := c.Zmos + zns*in.T
	if in.Phase == satrec.Initializing {
		zm = c.Zmos
	}
	zf := zm + 2.0*zes*math.Sin(zm)
	sinzf := math.Sin(zf)
	f2 := 0.5*sinzf*sinzf - 0.25
	f3 := -0.5 * sinzf * math.Cos(zf)

	ses := c.Se2*f2 + c.Se3*f3
	sis := c.Si2*f2 + c.Si3*f3
	sls := c.Sl2*f2 + c.Sl3*f3 + c.Sl4*sinzf
	sghs := c.Sgh2*f2 + c.Sgh3*f3 + c.Sgh4*sinzf
	shs := c.Sh2*f2 + c.Sh3*f3

	zm = c.Zmol + znl*in.T
	if in.Phase == satrec.Initializing {
		zm = c.Zmol
	}
	zf = zm + 2.0*zel*math.Sin(zm)
	sinzf = math.Sin(zf)
	f2 = 0.5*sinzf*sinzf - 0.25
	f3 = -0.5 * sinzf * math.Cos(zf)

	sel := c.Ee2*f2 + c.E3*f3
	sil := c.Xi2*f2 + c.Xi3*f3
	sll := c.Xl2*f2 + c.Xl3*f3 + c.Xl4*sinzf
	sghl := c.Xgh2*f2 + c.Xgh3*f3 + c.Xgh4*sinzf
	shll := c.Xh2*f2 + c.Xh3*f3

	pe := ses + sel
	pinc := sis + sil
	pl := sls + sll
	pgh := sghs + sghl
	ph := shs + shll

	if in.Phase != satrec.Initializing {
		pe -= c.Peo
		pinc -= c.Pinco
		pl -= c.Plo
		pgh -= c.Pgho
		ph -= c.Pho
		inclp += pinc
		ep += pe
		sinip := math.Sin(inclp)
		cosip := math.Cos(inclp)

		// Lyddane modification: below 0.2 rad inclination the ph/sin(i)
		// correction is numerically unstable, so apply periodics through
		// the alfdp/betdp auxiliary angles instead (spec.md's dpper
		// design note; 0.2 rad matches the perturbed, not original,
		// inclination per the widely adopted GSFC variant).
		if inclp >= 0.2 {
			ph /= sinip
			pgh -= cosip * ph
			argpp += pgh
			nodep += ph
			mp += pl
		} else {
			sinop := math.Sin(nodep)
			cosop := math.Cos(nodep)
			alfdp := sinip*sinop + ph*cosop + pinc*cosip*sinop
			betdp := sinip*cosop - ph*sinop + pinc*cosip*cosop
			nodep = math.Mod(nodep, TwoPi)
			if nodep < 0.0 && in.OpsMode == satrec.AFSPCLegacy {
				nodep += TwoPi
			}
			xls := mp + argpp + cosip*nodep + (pl + pgh) - pinc*nodep*sinip
			xnoh := nodep
			nodep = math.Atan2(alfdp, betdp)
			if nodep < 0.0 && in.OpsMode == satrec.AFSPCLegacy {
				nodep += TwoPi
			}
			if math.Abs(xnoh-nodep) > Pi {
				if nodep < xnoh {
					nodep += TwoPi
				} else {
					nodep -= TwoPi
				}
			}
			mp += pl
			argpp = xls - mp - cosip*nodep
		}
	}

	return dpperOutput{Ep: ep, Inclp: inclp, Nodep: nodep, Argpp: argpp, Mp: mp}
}
