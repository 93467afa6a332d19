package propagation

import (
	"math"

	"github.com/anupshinde/sgp4go/satrec"
)

type dspaceInput struct {
	Irez                                                   satrec.ResonanceClass
	D2201, D2211, D3210, D3222, D4410, D4422                float64
	D5220, D5232, D5421, D5433                              float64
	Dedt, Del1, Del2, Del3, Didt, Dmdt, Dnodt, Domdt         float64
	Argpo, Argpdot                                           float64
	T, Tc, Gsto                                              float64
	Xfact, Xlamo, No                                         float64
	Atime, Em, Argpm, Inclm, Xli, Mm, Xni, Nodem, Nm         float64
}

type dspaceOutput struct {
	Atime, Em, Argpm, Inclm, Xli, Mm, Xni, Nodem, Dndt, Nm float64
}

// dspace advances the deep-space resonance state (Atime/Xli/Xni) by
// numerically integrating the Euler-Maclaurin quadrature over whichever
// resonance dsinit detected, in 720-minute steps. The integrator resets to
// epoch whenever Atime is zero, the call lies on the other side of epoch
// from the carried Atime, or |T| is smaller than |Atime| (spec.md's reset
// invariant); otherwise it continues from Atime. This mirrors dspace.rs's
// "epoch restart" branch exactly, a carry-over from the original NORAD
// code whose exact motivation the reference author notes is no longer
// known.
func dspace(in dspaceInput) dspaceOutput {
	const (
		fasx2 = 0.13130908
		fasx4 = 2.8843198
		fasx6 = 0.37448087
		g22   = 5.7686396
		g32   = 0.95240898
		g44   = 1.8014998
		g52   = 1.0508330
		g54   = 4.4108898
		rptim = 4.37526908801129966e-3
		stepp = 720.0
		stepn = -720.0
		step2 = 259200.0
	)

	atime := in.Atime
	em := in.Em
	argpm := in.Argpm
	inclm := in.Inclm
	xli := in.Xli
	mm := in.Mm
	xni := in.Xni
	nodem := in.Nodem
	nm := in.Nm

	theta := math.Mod(in.Gsto+in.Tc*rptim, TwoPi)
	em += in.Dedt * in.T
	inclm += in.Didt * in.T
	argpm += in.Domdt * in.T
	nodem += in.Dnodt * in.T
	mm += in.Dmdt * in.T

	dndt := 0.0

	if in.Irez != satrec.ResonanceNone {
		if atime == 0.0 || in.T*atime <= 0.0 || math.Abs(in.T) < math.Abs(atime) {
			atime = 0.0
			xni = in.No
			xli = in.Xlamo
		}

		var delt float64
		if in.T > 0.0 {
			delt = stepp
		} else {
			delt = stepn
		}

		var xldot, xnddt, xndt, ft float64
		for {
			if in.Irez != satrec.ResonanceHalfDay {
				xndt = in.Del1*math.Sin(xli-fasx2) +
					in.Del2*math.Sin(2.0*(xli-fasx4)) +
					in.Del3*math.Sin(3.0*(xli-fasx6))
				xldot = xni + in.Xfact
				xnddt = in.Del1*math.Cos(xli-fasx2) +
					2.0*in.Del2*math.Cos(2.0*(xli-fasx4)) +
					3.0*in.Del3*math.Cos(3.0*(xli-fasx6))
				xnddt *= xldot
			} else {
				xomi := in.Argpo + in.Argpdot*atime
				x2omi := xomi + xomi
				x2li := xli + xli
				xndt = in.D2201*math.Sin(x2omi+xli-g22) +
					in.D2211*math.Sin(xli-g22) +
					in.D3210*math.Sin(xomi+xli-g32) +
					in.D3222*math.Sin(-xomi+xli-g32) +
					in.D4410*math.Sin(x2omi+x2li-g44) +
					in.D4422*math.Sin(x2li-g44) +
					in.D5220*math.Sin(xomi+xli-g52) +
					in.D5232*math.Sin(-xomi+xli-g52) +
					in.D5421*math.Sin(xomi+x2li-g54) +
					in.D5433*math.Sin(-xomi+x2li-g54)
				xldot = xni + in.Xfact
				xnddt = in.D2201*math.Cos(x2omi+xli-g22) +
					in.D2211*math.Cos(xli-g22) +
					in.D3210*math.Cos(xomi+xli-g32) +
					in.D3222*math.Cos(-xomi+xli-g32) +
					in.D5220*math.Cos(xomi+xli-g52) +
					in.D5232*math.Cos(-xomi+xli-g52) +
					2.0*(in.D4410*math.Cos(x2omi+x2li-g44)+
						in.D4422*math.Cos(x2li-g44)+
						in.D5421*math.Cos(xomi+x2li-g54)+
						in.D5433*math.Cos(-xomi+x2li-g54))
				xnddt *= xldot
			}

			if math.Abs(in.T-atime) < stepp {
				ft = in.T - atime
				break
			}

			xli += xldot*delt + xndt*step2
			xni += xndt*delt + xnddt*step2
			atime += delt
		}

		nm = xni + xndt*ft + xnddt*ft*ft*0.5
		xl := xli + xldot*ft + xndt*ft*ft*0.5
		if in.Irez != satrec.ResonanceSynchronous {
			mm = xl - 2.0*nodem + 2.0*theta
			dndt = nm - in.No
		} else {
			mm = xl - nodem - argpm + theta
			dndt = nm - in.No
		}
		nm = in.No + dndt
	}

	return dspaceOutput{
		Atime: atime, Em: em, Argpm: argpm, Inclm: inclm, Xli: xli,
		Mm: mm, Xni: xni, Nodem: nodem, Dndt: dndt, Nm: nm,
	}
}
