package propagation

import (
	"math"

	"github.com/anupshinde/sgp4go/satrec"
)

// InitOptions are the mean elements and epoch sgp4init needs to derive a
// full SatRec's coefficients.
type InitOptions struct {
	OpsMode satrec.OpsMode
	Epoch   float64 // days since 1950-01-00 00h (+ fraction)
	Bstar   float64
	Ecco    float64
	Argpo   float64
	Inclo   float64
	Mo      float64
	No      float64 // Kozai mean motion, rad/min
	Nodeo   float64
}

// SGP4Init derives every coefficient SGP4 needs from a satellite's mean
// elements at epoch: un-Kozai the mean motion, build the near-Earth drag
// and secular-rate coefficients, and — for periods at or beyond 225
// minutes — run the deep-space dscom/dpper/dsinit pipeline. Ported from
// sgp4init.rs; the zeroing-then-overwrite structure is kept because later
// branches read back fields the earlier ones zeroed (e.g. Isimp gates
// whether D2-D4 ever get set).
func SGP4Init(opts InitOptions) (*satrec.SatRec, error) {
	rec := &satrec.SatRec{}

	rec.Bstar = opts.Bstar
	rec.Ecco = opts.Ecco
	rec.Argpo = opts.Argpo
	rec.Inclo = opts.Inclo
	rec.Mo = opts.Mo
	rec.No = opts.No
	rec.Nodeo = opts.Nodeo
	fullJD := opts.Epoch + 2433281.5
	rec.JdSatEpoch = math.Trunc(fullJD)
	rec.JdSatEpochOffset = fullJD - rec.JdSatEpoch
	rec.OperationMode = opts.OpsMode
	rec.Method = satrec.NearEarth

	ss := 78.0/EarthRadius + 1.0
	qzms2tTemp := (120.0 - 78.0) / EarthRadius
	qzms2t := qzms2tTemp * qzms2tTemp * qzms2tTemp * qzms2tTemp

	rec.T = 0.0

	il := Initl(InitlInput{
		Ecco: rec.Ecco, Epoch: opts.Epoch, Inclo: rec.Inclo, No: rec.No, OpsMode: opts.OpsMode,
	})

	ao := il.Ao
	con42 := il.Con42
	cosio := il.Cosio
	cosio2 := il.Cosio2
	eccsq := il.Eccsq
	omeosq := il.Omeosq
	posq := il.Posq
	rteosq := il.Rteosq
	rp := il.Rp
	sinio := il.Sinio

	rec.No = il.No
	rec.Con41 = il.Con41
	rec.Gsto = il.Gsto
	rec.A = math.Pow(rec.No*TUMIN, -2.0/3.0)
	rec.Alta = rec.A*(1.0+rec.Ecco) - 1.0
	rec.Altp = rec.A*(1.0-rec.Ecco) - 1.0
	rec.Error = satrec.ErrNone

	if omeosq < 0.0 && rec.No < 0.0 {
		return rec, &satrec.PropagationError{Code: satrec.ErrSubOrbital, Value: rp}
	}

	rec.Isimp = false
	if rp < 220.0/EarthRadius+1.0 {
		rec.Isimp = true
	}

	sfour := ss
	qzms24 := qzms2t
	perige := (rp - 1.0) * EarthRadius

	if perige < 156.0 {
		sfour = perige - 78.0
		if perige < 98.0 {
			sfour = 20.0
		}
		qzms24Temp := (120.0 - sfour) / EarthRadius
		qzms24 = qzms24Temp * qzms24Temp * qzms24Temp * qzms24Temp
		sfour = sfour/EarthRadius + 1.0
	}

	pinvsq := 1.0 / posq
	tsi := 1.0 / (ao - sfour)
	rec.Eta = ao * rec.Ecco * tsi
	etasq := rec.Eta * rec.Eta
	eeta := rec.Ecco * rec.Eta
	psisq := math.Abs(1.0 - etasq)
	coef := qzms24 * math.Pow(tsi, 4.0)
	coef1 := coef / math.Pow(psisq, 3.5)
	cc2 := coef1 * rec.No * (ao*(1.0+1.5*etasq+eeta*(4.0+etasq)) +
		0.375*J2*tsi/psisq*rec.Con41*(8.0+3.0*etasq*(8.0+etasq)))
	rec.Cc1 = rec.Bstar * cc2
	cc3 := 0.0
	if rec.Ecco > 1.0e-4 {
		cc3 = -2.0 * coef * tsi * J3OJ2 * rec.No * sinio / rec.Ecco
	}
	rec.X1mth2 = 1.0 - cosio2
	rec.Cc4 = 2.0 * rec.No * coef1 * ao * omeosq * (rec.Eta*(2.0+0.5*etasq) + rec.Ecco*(0.5+2.0*etasq) -
		J2*tsi/(ao*psisq)*(-3.0*rec.Con41*(1.0-2.0*eeta+etasq*(1.5-0.5*eeta))+
			0.75*rec.X1mth2*(2.0*etasq-eeta*(1.0+etasq))*math.Cos(2.0*rec.Argpo)))
	rec.Cc5 = 2.0 * coef1 * ao * omeosq * (1.0 + 2.75*(etasq+eeta) + eeta*etasq)
	cosio4 := cosio2 * cosio2
	temp1 := 1.5 * J2 * pinvsq * rec.No
	temp2 := 0.5 * temp1 * J2 * pinvsq
	temp3 := -0.46875 * J4 * pinvsq * pinvsq * rec.No
	rec.Mdot = rec.No + 0.5*temp1*rteosq*rec.Con41 + 0.0625*temp2*rteosq*(13.0-78.0*cosio2+137.0*cosio4)
	rec.Argpdot = -0.5*temp1*con42 + 0.0625*temp2*(7.0-114.0*cosio2+395.0*cosio4) +
		temp3*(3.0-36.0*cosio2+49.0*cosio4)
	xhdot1 := -temp1 * cosio
	rec.Nodedot = xhdot1 + (0.5*temp2*(4.0-19.0*cosio2)+2.0*temp3*(3.0-7.0*cosio2))*cosio
	xpidot := rec.Argpdot + rec.Nodedot
	rec.Omgcof = rec.Bstar * cc3 * math.Cos(rec.Argpo)
	rec.Xmcof = 0.0
	if rec.Ecco > 1.0e-4 {
		rec.Xmcof = -X2o3 * coef * rec.Bstar / eeta
	}
	rec.Nodecf = 3.5 * omeosq * xhdot1 * rec.Cc1
	rec.T2cof = 1.5 * rec.Cc1

	if math.Abs(cosio+1.0) > Temp4 {
		rec.Xlcof = (-0.25 * J3OJ2 * sinio * (3.0 + 5.0*cosio)) / (1.0 + cosio)
	} else {
		rec.Xlcof = (-0.25 * J3OJ2 * sinio * (3.0 + 5.0*cosio)) / Temp4
	}
	rec.Aycof = -0.5 * J3OJ2 * sinio
	delmoTemp := 1.0 + rec.Eta*math.Cos(rec.Mo)
	rec.Delmo = delmoTemp * delmoTemp * delmoTemp
	rec.Sinmao = math.Sin(rec.Mo)
	rec.X7thm1 = 7.0*cosio2 - 1.0

	if TwoPi/rec.No >= 225.0 {
		rec.Method = satrec.DeepSpace
		rec.Isimp = true
		tc := 0.0

		dc := dscom(dscomInput{
			Epoch: opts.Epoch, Ep: rec.Ecco, Argpp: rec.Argpo, Tc: tc,
			Inclp: rec.Inclo, Nodep: rec.Nodeo, Np: rec.No,
		})

		rec.E3, rec.Ee2 = dc.E3, dc.Ee2
		rec.Peo, rec.Pgho, rec.Pho, rec.Pinco, rec.Plo = dc.Peo, dc.Pgho, dc.Pho, dc.Pinco, dc.Plo
		rec.Se2, rec.Se3 = dc.Se2, dc.Se3
		rec.Sgh2, rec.Sgh3, rec.Sgh4 = dc.Sgh2, dc.Sgh3, dc.Sgh4
		rec.Sh2, rec.Sh3 = dc.Sh2, dc.Sh3
		rec.Si2, rec.Si3 = dc.Si2, dc.Si3
		rec.Sl2, rec.Sl3, rec.Sl4 = dc.Sl2, dc.Sl3, dc.Sl4
		rec.Xgh2, rec.Xgh3, rec.Xgh4 = dc.Xgh2, dc.Xgh3, dc.Xgh4
		rec.Xh2, rec.Xh3 = dc.Xh2, dc.Xh3
		rec.Xi2, rec.Xi3 = dc.Xi2, dc.Xi3
		rec.Xl2, rec.Xl3, rec.Xl4 = dc.Xl2, dc.Xl3, dc.Xl4
		rec.Zmol, rec.Zmos = dc.Zmol, dc.Zmos

		dp := dpper(dpperInput{
			Coeffs: &rec.Coefficients, Phase: satrec.Initializing, OpsMode: rec.OperationMode,
			T: 0.0, Ep: rec.Ecco, Inclp: rec.Inclo, Nodep: rec.Nodeo, Argpp: rec.Argpo, Mp: rec.Mo,
		})
		rec.Ecco = dp.Ep
		rec.Inclo = dp.Inclp
		rec.Nodeo = dp.Nodep
		rec.Argpo = dp.Argpp
		rec.Mo = dp.Mp

		di := dsinit(dsinitInput{
			Cosim: dc.Cosim, Sinim: dc.Sinim,
			Emsq: dc.Emsq, Ecco: rec.Ecco, Eccsq: eccsq,
			Argpo: rec.Argpo,
			S1: dc.S1, S2: dc.S2, S3: dc.S3, S4: dc.S4, S5: dc.S5,
			Ss1: dc.Ss1, Ss2: dc.Ss2, Ss3: dc.Ss3, Ss4: dc.Ss4, Ss5: dc.Ss5,
			Sz1: dc.Sz1, Sz3: dc.Sz3, Sz11: dc.Sz11, Sz13: dc.Sz13,
			Sz21: dc.Sz21, Sz23: dc.Sz23, Sz31: dc.Sz31, Sz33: dc.Sz33,
			Z1: dc.Z1, Z3: dc.Z3, Z11: dc.Z11, Z13: dc.Z13,
			Z21: dc.Z21, Z23: dc.Z23, Z31: dc.Z31, Z33: dc.Z33,
			T: rec.T, Tc: tc, Gsto: rec.Gsto,
			Mo: rec.Mo, Mdot: rec.Mdot, No: rec.No,
			Nodeo: rec.Nodeo, Nodedot: rec.Nodedot, Xpidot: xpidot,
			Em: dc.Em, Argpm: 0.0, Inclm: rec.Inclo, Mm: 0.0, Nm: dc.Nm, Nodem: 0.0,
		})

		rec.Irez = di.Irez
		rec.Atime = di.Atime
		rec.D2201, rec.D2211 = di.D2201, di.D2211
		rec.D3210, rec.D3222 = di.D3210, di.D3222
		rec.D4410, rec.D4422 = di.D4410, di.D4422
		rec.D5220, rec.D5232 = di.D5220, di.D5232
		rec.D5421, rec.D5433 = di.D5421, di.D5433
		rec.Dedt, rec.Didt, rec.Dmdt, rec.Dnodt, rec.Domdt = di.Dedt, di.Didt, di.Dmdt, di.Dnodt, di.Domdt
		rec.Del1, rec.Del2, rec.Del3 = di.Del1, di.Del2, di.Del3
		rec.Xfact, rec.Xlamo, rec.Xli, rec.Xni = di.Xfact, di.Xlamo, di.Xli, di.Xni
	}

	if !rec.Isimp {
		cc1sq := rec.Cc1 * rec.Cc1
		rec.D2 = 4.0 * ao * tsi * cc1sq
		temp := rec.D2 * tsi * rec.Cc1 / 3.0
		rec.D3 = (17.0*ao + sfour) * temp
		rec.D4 = 0.5 * temp * ao * tsi * (221.0*ao + 31.0*sfour) * rec.Cc1
		rec.T3cof = rec.D2 + 2.0*cc1sq
		rec.T4cof = 0.25 * (3.0*rec.D3 + rec.Cc1*(12.0*rec.D2+10.0*cc1sq))
		rec.T5cof = 0.2 * (3.0*rec.D4 + 12.0*rec.Cc1*rec.D3 + 6.0*rec.D2*rec.D2 + 15.0*cc1sq*(2.0*rec.D2+cc1sq))
	}

	_, err := SGP4(rec, 0.0)
	return rec, err
}
