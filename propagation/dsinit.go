package propagation

import (
	"math"

	"github.com/anupshinde/sgp4go/satrec"
)

// dsinitInput bundles the epoch geometry (from initl), the common terms
// (from dscom), and the running mean elements dsinit adjusts in place.
type dsinitInput struct {
	Cosim, Sinim             float64
	Emsq, Ecco, Eccsq        float64
	Argpo                    float64
	S1, S2, S3, S4, S5       float64
	Ss1, Ss2, Ss3, Ss4, Ss5  float64
	Sz1, Sz3, Sz11, Sz13     float64
	Sz21, Sz23, Sz31, Sz33   float64
	Z1, Z3, Z11, Z13         float64
	Z21, Z23, Z31, Z33       float64
	T, Tc, Gsto              float64
	Mo, Mdot, No             float64
	Nodeo, Nodedot, Xpidot   float64

	Em, Argpm, Inclm, Mm, Nm, Nodem float64
}

type dsinitOutput struct {
	Em, Argpm, Inclm, Mm, Nm, Nodem float64
	Irez                            satrec.ResonanceClass
	Atime                           float64
	D2201, D2211, D3210, D3222      float64
	D4410, D4422, D5220, D5232      float64
	D5421, D5433                    float64
	Dedt, Didt, Dmdt, Dnodt, Domdt  float64
	Del1, Del2, Del3                float64
	Xfact, Xlamo, Xli, Xni          float64
}

// dsinit computes the deep-space resonance contributions to mean motion:
// it classifies the orbit into one of the two geopotential resonances
// (synchronous, ~24h; half-day, ~12h) and, for resonant orbits, derives
// the D-coefficients dspace's Euler-Maclaurin integrator consumes.
// Ported from original_source's dsinit.rs.
func dsinit(in dsinitInput) dsinitOutput {
	const (
		q22    = 1.7891679e-6
		q31    = 2.1460748e-6
		q33    = 2.2123015e-7
		root22 = 1.7891679e-6
		root44 = 7.3636953e-9
		root54 = 2.1765803e-9
		rptim  = 4.37526908801129966e-3
		root32 = 3.7393792e-7
		root52 = 1.1428639e-7
		znl    = 1.5835218e-4
		zns    = 1.19459e-5
	)

	em := in.Em
	argpm := in.Argpm
	inclm := in.Inclm
	mm := in.Mm
	nm := in.Nm
	nodem := in.Nodem
	emsq := in.Emsq

	irez := satrec.ResonanceNone
	if nm < 0.0052359877 && nm > 0.0034906585 {
		irez = satrec.ResonanceSynchronous
	}
	if nm >= 8.26e-3 && nm <= 9.24e-3 && em >= 0.5 {
		irez = satrec.ResonanceHalfDay
	}

	// Solar terms.
	ses := in.Ss1 * zns * in.Ss5
	sis := in.Ss2 * zns * (in.Sz11 + in.Sz13)
	sls := -zns * in.Ss3 * (in.Sz1 + in.Sz3 - 14.0 - 6.0*emsq)
	sghs := in.Ss4 * zns * (in.Sz31 + in.Sz33 - 6.0)
	shs := -zns * in.Ss2 * (in.Sz21 + in.Sz23)
	if inclm < 5.2359877e-2 || inclm > Pi-5.2359877e-2 {
		shs = 0.0
	}
	if in.Sinim != 0.0 {
		shs /= in.Sinim
	}
	sgs := sghs - in.Cosim*shs

	// Lunar terms.
	dedt := ses + in.S1*znl*in.S5
	didt := sis + in.S2*znl*(in.Z11+in.Z13)
	dmdt := sls - znl*in.S3*(in.Z1+in.Z3-14.0-6.0*emsq)
	sghl := in.S4 * znl * (in.Z31 + in.Z33 - 6.0)
	shll := -znl * in.S2 * (in.Z21 + in.Z23)
	if inclm < 5.2359877e-2 || inclm > Pi-5.2359877e-2 {
		shll = 0.0
	}
	domdt := sgs + sghl
	dnodt := shs
	if in.Sinim != 0.0 {
		domdt -= (in.Cosim / in.Sinim) * shll
		dnodt += shll / in.Sinim
	}

	dndt := 0.0
	theta := math.Mod(in.Gsto+in.Tc*rptim, TwoPi)
	em += dedt * in.T
	inclm += didt * in.T
	argpm += domdt * in.T
	nodem += dnodt * in.T
	mm += dmdt * in.T

	var d2201, d2211, d3210, d3222, d4410, d4422, d5220, d5232, d5421, d5433 float64
	var del1, del2, del3, xfact, xlamo, xli, xni float64

	if irez != satrec.ResonanceNone {
		aonv := math.Pow(nm/XKE, X2o3)

		if irez == satrec.ResonanceHalfDay {
			cosisq := in.Cosim * in.Cosim
			emo := em
			em = in.Ecco
			emsqo := emsq
			emsq = in.Eccsq
			eoc := em * emsq
			g201 := -0.306 - (em-0.64)*0.440

			var g211, g310, g322, g410, g422, g520 float64
			if em <= 0.65 {
				g211 = 3.616 - 13.2470*em + 16.2900*emsq
				g310 = -19.302 + 117.3900*em - 228.4190*emsq + 156.5910*eoc
				g322 = -18.9068 + 109.7927*em - 214.6334*emsq + 146.5816*eoc
				g410 = -41.122 + 242.6940*em - 471.0940*emsq + 313.9530*eoc
				g422 = -146.407 + 841.8800*em - 1629.014*emsq + 1083.4350*eoc
				g520 = -532.114 + 3017.977*em - 5740.032*emsq + 3708.2760*eoc
			} else {
				g211 = -72.099 + 331.819*em - 508.738*emsq + 266.724*eoc
				g310 = -346.844 + 1582.851*em - 2415.925*emsq + 1246.113*eoc
				g322 = -342.585 + 1554.908*em - 2366.899*emsq + 1215.972*eoc
				g410 = -1052.797 + 4758.686*em - 7193.992*emsq + 3651.957*eoc
				g422 = -3581.690 + 16178.110*em - 24462.770*emsq + 12422.520*eoc
				if em > 0.715 {
					g520 = -5149.66 + 29936.92*em - 54087.36*emsq + 31324.56*eoc
				} else {
					g520 = 1464.74 - 4664.75*em + 3763.64*emsq
				}
			}

			var g533, g521, g532 float64
			if em < 0.7 {
				g533 = -919.22770 + 4988.6100*em - 9064.7700*emsq + 5542.21*eoc
				g521 = -822.71072 + 4568.6173*em - 8491.4146*emsq + 5337.524*eoc
				g532 = -853.66600 + 4690.2500*em - 8624.7700*emsq + 5341.4*eoc
			} else {
				g533 = -37995.780 + 161616.52*em - 229838.20*emsq + 109377.94*eoc
				g521 = -51752.104 + 218913.95*em - 309468.16*emsq + 146349.42*eoc
				g532 = -40023.880 + 170470.89*em - 242699.48*emsq + 115605.82*eoc
			}

			sini2 := in.Sinim * in.Sinim
			f220 := 0.75 * (1.0 + 2.0*in.Cosim + cosisq)
			f221 := 1.5 * sini2
			f321 := 1.875 * in.Sinim * (1.0 - 2.0*in.Cosim - 3.0*cosisq)
			f322 := -1.875 * in.Sinim * (1.0 + 2.0*in.Cosim - 3.0*cosisq)
			f441 := 35.0 * sini2 * f220
			f442 := 39.3750 * sini2 * sini2
			f522 := 9.84375 * in.Sinim * (sini2*(1.0-2.0*in.Cosim-5.0*cosisq) + 0.33333333*(-2.0+4.0*in.Cosim+6.0*cosisq))
			f523 := in.Sinim * (4.92187512*sini2*(-2.0-4.0*in.Cosim+10.0*cosisq) + 6.56250012*(1.0+2.0*in.Cosim-3.0*cosisq))
			f542 := 29.53125 * in.Sinim * (2.0 - 8.0*in.Cosim + cosisq*(-12.0+8.0*in.Cosim+10.0*cosisq))
			f543 := 29.53125 * in.Sinim * (-2.0 - 8.0*in.Cosim + cosisq*(12.0+8.0*in.Cosim-10.0*cosisq))

			xno2 := nm * nm
			ainv2 := aonv * aonv
			temp1 := 3.0 * xno2 * ainv2
			temp := temp1 * root22
			d2201 = temp * f220 * g201
			d2211 = temp * f221 * g211
			temp1 *= aonv
			temp = temp1 * root32
			d3210 = temp * f321 * g310
			d3222 = temp * f322 * g322
			temp1 *= aonv
			temp = 2.0 * temp1 * root44
			d4410 = temp * f441 * g410
			d4422 = temp * f442 * g422
			temp1 *= aonv
			temp = temp1 * root52
			d5220 = temp * f522 * g520
			d5232 = temp * f523 * g532
			temp = 2.0 * temp1 * root54
			d5421 = temp * f542 * g521
			d5433 = temp * f543 * g533
			xlamo = math.Mod(in.Mo+in.Nodeo+in.Nodeo-(theta+theta), TwoPi)
			xfact = in.Mdot + dmdt + 2.0*(in.Nodedot+dnodt-rptim) - in.No
			em = emo
			emsq = emsqo
		}

		if irez == satrec.ResonanceSynchronous {
			g200 := 1.0 + emsq*(-2.5+0.8125*emsq)
			g310 := 1.0 + 2.0*emsq
			g300 := 1.0 + emsq*(-6.0+6.60937*emsq)
			f220 := 0.75 * (1.0 + in.Cosim) * (1.0 + in.Cosim)
			f311 := 0.9375*in.Sinim*in.Sinim*(1.0+3.0*in.Cosim) - 0.75*(1.0+in.Cosim)
			f330 := 1.0 + in.Cosim
			f330 *= 1.875 * f330 * f330
			del1 = 3.0 * nm * nm * aonv * aonv
			del2 = 2.0 * del1 * f220 * g200 * q22
			del3 = 3.0 * del1 * f330 * g300 * q33 * aonv
			del1 = del1 * f311 * g310 * q31 * aonv
			xlamo = math.Mod(in.Mo+in.Nodeo+in.Argpo-theta, TwoPi)
			xfact = in.Mdot + in.Xpidot + dmdt + domdt + dnodt - (in.No + rptim)
		}

		xli = xlamo
		xni = in.No
		nm = in.No + dndt
	}

	return dsinitOutput{
		Em: em, Argpm: argpm, Inclm: inclm, Mm: mm, Nm: nm, Nodem: nodem,
		Irez: irez, Atime: 0.0,
		D2201: d2201, D2211: d2211, D3210: d3210, D3222: d3222,
		D4410: d4410, D4422: d4422, D5220: d5220, D5232: d5232,
		D5421: d5421, D5433: d5433,
		Dedt: dedt, Didt: didt, Dmdt: dmdt, Dnodt: dnodt, Domdt: domdt,
		Del1: del1, Del2: del2, Del3: del3,
		Xfact: xfact, Xlamo: xlamo, Xli: xli, Xni: xni,
	}
}
