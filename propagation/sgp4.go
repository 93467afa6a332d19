package propagation

import (
	"math"

	"github.com/anupshinde/sgp4go/satrec"
)

// SGP4 propagates a satellite record forward to tsince minutes since its
// epoch, returning the TEME position (km) and velocity (km/s). On failure
// it records the failure code on the record's State and returns the
// wrapping error; the record's remaining fields are left at whatever
// partial values were computed, matching the reference implementation's
// "set satrec.error and return" behavior rather than stdlib's usual
// leave-output-untouched convention (spec.md's SatRec reuse invariant:
// callers inspect rec.Error, not just the returned error).
func SGP4(rec *satrec.SatRec, tsince float64) (satrec.SGP4Result, error) {
	rec.T = tsince
	rec.Error = satrec.ErrNone

	xmdf := rec.Mo + rec.Mdot*rec.T
	argpdf := rec.Argpo + rec.Argpdot*rec.T
	nodedf := rec.Nodeo + rec.Nodedot*rec.T
	argpm := argpdf
	mm := xmdf
	t2 := rec.T * rec.T
	nodem := nodedf + rec.Nodecf*t2
	tempa := 1.0 - rec.Cc1*rec.T
	tempe := rec.Bstar * rec.Cc4 * rec.T
	templ := rec.T2cof * t2

	if !rec.Isimp {
		delomg := rec.Omgcof * rec.T
		delmtemp := 1.0 + rec.Eta*math.Cos(xmdf)
		delm := rec.Xmcof * (delmtemp*delmtemp*delmtemp - rec.Delmo)
		temp := delomg + delm
		mm = xmdf + temp
		argpm = argpdf - temp
		t3 := t2 * rec.T
		t4 := t3 * rec.T
		tempa = tempa - rec.D2*t2 - rec.D3*t3 - rec.D4*t4
		tempe += rec.Bstar * rec.Cc5 * (math.Sin(mm) - rec.Sinmao)
		templ = templ + rec.T3cof*t3 + t4*(rec.T4cof+rec.T*rec.T5cof)
	}

	nm := rec.No
	em := rec.Ecco
	inclm := rec.Inclo

	if rec.Method == satrec.DeepSpace {
		dsOut := dspace(dspaceInput{
			Irez: rec.Irez,
			D2201: rec.D2201, D2211: rec.D2211, D3210: rec.D3210, D3222: rec.D3222,
			D4410: rec.D4410, D4422: rec.D4422, D5220: rec.D5220, D5232: rec.D5232,
			D5421: rec.D5421, D5433: rec.D5433,
			Dedt: rec.Dedt, Del1: rec.Del1, Del2: rec.Del2, Del3: rec.Del3,
			Didt: rec.Didt, Dmdt: rec.Dmdt, Dnodt: rec.Dnodt, Domdt: rec.Domdt,
			Argpo: rec.Argpo, Argpdot: rec.Argpdot,
			T: rec.T, Tc: rec.T, Gsto: rec.Gsto,
			Xfact: rec.Xfact, Xlamo: rec.Xlamo, No: rec.No,
			Atime: rec.Atime, Em: em, Argpm: argpm, Inclm: inclm,
			Xli: rec.Xli, Mm: mm, Xni: rec.Xni, Nodem: nodem, Nm: nm,
		})
		rec.Atime = dsOut.Atime
		rec.Xli = dsOut.Xli
		rec.Xni = dsOut.Xni
		em = dsOut.Em
		argpm = dsOut.Argpm
		inclm = dsOut.Inclm
		mm = dsOut.Mm
		nodem = dsOut.Nodem
		nm = dsOut.Nm
	}

	if nm <= 0.0 {
		rec.Error = satrec.ErrMeanMotion
		return satrec.SGP4Result{}, &satrec.PropagationError{Code: rec.Error, Value: nm}
	}

	am := math.Pow(XKE/nm, X2o3) * tempa * tempa
	nm = XKE / math.Pow(am, 1.5)
	em -= tempe

	if em >= 1.0 || em < -0.001 {
		rec.Error = satrec.ErrMeanEccentricity
		return satrec.SGP4Result{}, &satrec.PropagationError{Code: rec.Error, Value: em}
	}
	if em < 1.0e-6 {
		em = 1.0e-6
	}

	mm += rec.No * templ
	xlm := mm + argpm + nodem
	nodem = math.Mod(nodem, TwoPi)
	argpm = math.Mod(argpm, TwoPi)
	xlm = math.Mod(xlm, TwoPi)
	mm = math.Mod(xlm-argpm-nodem, TwoPi)

	sinim := math.Sin(inclm)
	cosim := math.Cos(inclm)

	ep := em
	xincp := inclm
	argpp := argpm
	nodep := nodem
	mp := mm
	sinip := sinim
	cosip := cosim

	if rec.Method == satrec.DeepSpace {
		dpOut := dpper(dpperInput{
			Coeffs: &rec.Coefficients, Phase: satrec.Propagating, OpsMode: rec.OperationMode,
			T: rec.T, Ep: ep, Inclp: xincp, Nodep: nodep, Argpp: argpp, Mp: mp,
		})
		ep = dpOut.Ep
		nodep = dpOut.Nodep
		argpp = dpOut.Argpp
		mp = dpOut.Mp
		xincp = dpOut.Inclp

		if xincp < 0.0 {
			xincp = -xincp
			nodep += Pi
			argpp -= Pi
		}
		if ep < 0.0 || ep > 1.0 {
			rec.Error = satrec.ErrPerturbedEccentricity
			return satrec.SGP4Result{}, &satrec.PropagationError{Code: rec.Error, Value: ep}
		}
	}

	if rec.Method == satrec.DeepSpace {
		sinip = math.Sin(xincp)
		cosip = math.Cos(xincp)
		rec.Aycof = -0.5 * J3OJ2 * sinip
		if math.Abs(cosip+1.0) > Temp4 {
			rec.Xlcof = (-0.25 * J3OJ2 * sinip * (3.0 + 5.0*cosip)) / (1.0 + cosip)
		} else {
			rec.Xlcof = (-0.25 * J3OJ2 * sinip * (3.0 + 5.0*cosip)) / Temp4
		}
	}

	axnl := ep * math.Cos(argpp)
	temp := 1.0 / (am * (1.0 - ep*ep))
	aynl := ep*math.Sin(argpp) + temp*rec.Aycof
	xl := mp + argpp + nodep + temp*rec.Xlcof*axnl

	u := math.Mod(xl-nodep, TwoPi)
	eo1 := u
	tem5 := 9999.9
	ktr := 1
	var sineo1, coseo1 float64
	for math.Abs(tem5) >= 1.0e-12 && ktr <= 10 {
		sineo1 = math.Sin(eo1)
		coseo1 = math.Cos(eo1)
		tem5 = 1.0 - coseo1*axnl - sineo1*aynl
		tem5 = (u - aynl*coseo1 + axnl*sineo1 - eo1) / tem5
		if math.Abs(tem5) >= 0.95 {
			if tem5 > 0.0 {
				tem5 = 0.95
			} else {
				tem5 = -0.95
			}
		}
		eo1 += tem5
		ktr++
	}

	ecose := axnl*coseo1 + aynl*sineo1
	esine := axnl*sineo1 - aynl*coseo1
	el2 := axnl*axnl + aynl*aynl
	pl := am * (1.0 - el2)
	if pl < 0.0 {
		rec.Error = satrec.ErrSemiLatusRectum
		return satrec.SGP4Result{}, &satrec.PropagationError{Code: rec.Error, Value: pl}
	}

	rl := am * (1.0 - ecose)
	rdotl := math.Sqrt(am) * esine / rl
	rvdotl := math.Sqrt(pl) / rl
	betal := math.Sqrt(1.0 - el2)
	temp = esine / (1.0 + betal)
	sinu := (am / rl) * (sineo1 - aynl - axnl*temp)
	cosu := (am / rl) * (coseo1 - axnl + aynl*temp)
	su := math.Atan2(sinu, cosu)
	sin2u := (cosu + cosu) * sinu
	cos2u := 1.0 - 2.0*sinu*sinu
	temp = 1.0 / pl
	temp1 := 0.5 * J2 * temp
	temp2 := temp1 * temp

	if rec.Method == satrec.DeepSpace {
		cosisq := cosip * cosip
		rec.Con41 = 3.0*cosisq - 1.0
		rec.X1mth2 = 1.0 - cosisq
		rec.X7thm1 = 7.0*cosisq - 1.0
	}

	mrt := rl*(1.0-1.5*temp2*betal*rec.Con41) + 0.5*temp1*rec.X1mth2*cos2u
	if mrt < 1.0 {
		rec.Error = satrec.ErrDecayed
		return satrec.SGP4Result{}, &satrec.PropagationError{Code: rec.Error, Value: mrt}
	}

	su -= 0.25 * temp2 * rec.X7thm1 * sin2u
	xnode := nodep + 1.5*temp2*cosip*sin2u
	xinc := xincp + 1.5*temp2*cosip*sinip*cos2u
	mvt := rdotl - nm*temp1*rec.X1mth2*sin2u/XKE
	rvdot := rvdotl + nm*temp1*(rec.X1mth2*cos2u+1.5*rec.Con41)/XKE

	sinsu := math.Sin(su)
	cossu := math.Cos(su)
	snod := math.Sin(xnode)
	cnod := math.Cos(xnode)
	sini := math.Sin(xinc)
	cosi := math.Cos(xinc)
	xmx := -snod * cosi
	xmy := cnod * cosi
	ux := xmx*sinsu + cnod*cossu
	uy := xmy*sinsu + snod*cossu
	uz := sini * sinsu
	vx := xmx*cossu - cnod*sinsu
	vy := xmy*cossu - snod*sinsu
	vz := sini * cossu

	return satrec.SGP4Result{
		Position: satrec.Vector3{
			X: mrt * ux * EarthRadius,
			Y: mrt * uy * EarthRadius,
			Z: mrt * uz * EarthRadius,
		},
		Velocity: satrec.Vector3{
			X: (mvt*ux + rvdot*vx) * VKMPERSEC,
			Y: (mvt*uy + rvdot*vy) * VKMPERSEC,
			Z: (mvt*uz + rvdot*vz) * VKMPERSEC,
		},
	}, nil
}
