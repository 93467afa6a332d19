package propagation

import "math"

// dscom computes the deep-space common terms that both dpper (periodic
// lunar/solar corrections) and dsinit (resonance detection) need: the
// lunar and solar gravitational secular and periodic amplitudes at epoch.
//
// original_source's Rust port does not include a dscom module (only
// dsinit, dspace, sgp4, sgp4init, gstime and initl survived extraction);
// this is reconstructed from the published Hoots & Roehrich 1980 / Vallado
// 2006 procedure that dsinit's and sgp4init's call sites fix uniquely --
// the field names and constants (zes, zel, c1ss, c1l, the z*s solar/lunar
// direction cosines, the two-pass lsflg loop) are the standard ones that
// appear throughout the public SGP4 reimplementation lineage (python-sgp4,
// satellite-js, the Vallado C++ distribution).
type dscomInput struct {
	Epoch, Ep, Argpp, Tc, Inclp, Nodep, Np float64
}

type dscomOutput struct {
	Snodm, Cnodm, Sinim, Cosim, Sinomm, Cosomm float64
	Day                                        float64
	E3, Ee2                                    float64
	Em, Emsq                                   float64
	Gam                                        float64
	Peo, Pgho, Pho, Pinco, Plo                 float64
	Rtemsq                                     float64
	Se2, Se3                                   float64
	Sgh2, Sgh3, Sgh4                           float64
	Sh2, Sh3                                   float64
	Si2, Si3                                   float64
	Sl2, Sl3, Sl4                              float64

	// Raw epoch-pass accumulators dsinit consumes directly.
	S1, S2, S3, S4, S5                                 float64
	Ss1, Ss2, Ss3, Ss4, Ss5                             float64
	Sz1, Sz3, Sz11, Sz13, Sz21, Sz23, Sz31, Sz33        float64
	Z1, Z3, Z11, Z13, Z21, Z23, Z31, Z33                float64

	Xgh2, Xgh3, Xgh4 float64
	Xh2, Xh3         float64
	Xi2, Xi3         float64
	Xl2, Xl3, Xl4    float64
	Nm               float64
	Zmol, Zmos       float64
}

const (
	zes    = 0.01675
	zel    = 0.05490
	c1ss   = 2.9864797e-6
	c1l    = 4.7968065e-7
	zsinis = 0.39785416
	zcosis = 0.91744867
	zcosgs = 0.1945905
	zsings = -0.98088458
)

// dscomPassTerms is everything one pass of the shared third-body
// summation (solar, then lunar) produces.
type dscomPassTerms struct {
	s1, s2, s3, s4, s5             float64
	s6, s7                         float64
	z1, z2, z3                     float64
	z11, z12, z13                  float64
	z21, z22, z23                  float64
	z31, z32, z33                  float64
}

func dscom(in dscomInput) dscomOutput {
	var out dscomOutput

	out.Nm = in.Np
	out.Em = in.Ep
	out.Snodm = math.Sin(in.Nodep)
	out.Cnodm = math.Cos(in.Nodep)
	out.Sinomm = math.Sin(in.Argpp)
	out.Cosomm = math.Cos(in.Argpp)
	out.Sinim = math.Sin(in.Inclp)
	out.Cosim = math.Cos(in.Inclp)
	out.Emsq = out.Em * out.Em
	betasq := 1.0 - out.Emsq
	out.Rtemsq = math.Sqrt(betasq)

	out.Day = in.Epoch + 18261.5 + in.Tc/1440.0
	xnodce := math.Mod(4.5236020-9.2422029e-4*out.Day, TwoPi)
	stem := math.Sin(xnodce)
	ctem := math.Cos(xnodce)
	zcosil := 0.91375164 - 0.03568096*ctem
	zsinil := math.Sqrt(1.0 - zcosil*zcosil)
	zsinhl := 0.089683511 * stem / zsinil
	zcoshl := math.Sqrt(1.0 - zsinhl*zsinhl)
	out.Gam = 5.8351514 + 0.0019443680*out.Day
	zx := math.Atan2(0.39785416*stem/zsinil, zcoshl*ctem+0.91744867*zsinhl*stem)
	zx = out.Gam + zx - xnodce
	zcosgl := math.Cos(zx)
	zsingl := math.Sin(zx)

	xnoi := 1.0 / out.Nm

	// Pass 1: solar terms.
	solar := dscomPass(out.Sinim, out.Cosim, out.Sinomm, out.Cosomm, out.Emsq,
		zcosgs, zsings, zcosis, zsinis, out.Cnodm, out.Snodm, c1ss, xnoi, out.Em, betasq)

	out.Ss1, out.Ss2, out.Ss3, out.Ss4, out.Ss5 = solar.s1, solar.s2, solar.s3, solar.s4, solar.s5
	out.Sz1, out.Sz3 = solar.z1, solar.z3
	out.Sz11, out.Sz13 = solar.z11, solar.z13
	out.Sz21, out.Sz23 = solar.z21, solar.z23
	out.Sz31, out.Sz33 = solar.z31, solar.z33

	// Pass 2: lunar terms, in the lunar node frame.
	zcoshCombined := zcoshl*out.Cnodm + zsinhl*out.Snodm
	zsinhCombined := out.Snodm*zcoshl - out.Cnodm*zsinhl
	lunar := dscomPass(out.Sinim, out.Cosim, out.Sinomm, out.Cosomm, out.Emsq,
		zcosgl, zsingl, zcosil, zsinil, zcoshCombined, zsinhCombined, c1l, xnoi, out.Em, betasq)

	out.S1, out.S2, out.S3, out.S4, out.S5 = lunar.s1, lunar.s2, lunar.s3, lunar.s4, lunar.s5
	out.Z1, out.Z3 = lunar.z1, lunar.z3
	out.Z11, out.Z13 = lunar.z11, lunar.z13
	out.Z21, out.Z23 = lunar.z21, lunar.z23
	out.Z31, out.Z33 = lunar.z31, lunar.z33

	out.Zmol = math.Mod(4.7199672+0.22997150*out.Day-out.Gam, TwoPi)
	out.Zmos = math.Mod(6.2565837+0.017201977*out.Day, TwoPi)

	// Solar-driven long-period amplitudes.
	out.Se2 = 2.0 * out.Ss1 * solar.s6
	out.Se3 = 2.0 * out.Ss1 * solar.s7
	out.Si2 = 2.0 * out.Ss2 * solar.z12
	out.Si3 = 2.0 * out.Ss2 * (out.Sz13 - out.Sz11)
	out.Sl2 = -2.0 * out.Ss3 * solar.z2
	out.Sl3 = -2.0 * out.Ss3 * (out.Sz3 - out.Sz1)
	out.Sl4 = -2.0 * out.Ss3 * (-21.0 - 9.0*out.Emsq) * zes
	out.Sgh2 = 2.0 * out.Ss4 * solar.z32
	out.Sgh3 = 2.0 * out.Ss4 * (out.Sz33 - out.Sz31)
	out.Sgh4 = -18.0 * out.Ss4 * zes
	out.Sh2 = -2.0 * out.Ss2 * solar.z22
	out.Sh3 = -2.0 * out.Ss2 * (solar.z23 - solar.z21)

	// Lunar-driven long-period amplitudes.
	out.Ee2 = 2.0 * out.S1 * lunar.s6
	out.E3 = 2.0 * out.S1 * lunar.s7
	out.Xi2 = 2.0 * out.S2 * lunar.z12
	out.Xi3 = 2.0 * out.S2 * (lunar.z13 - lunar.z11)
	out.Xl2 = -2.0 * out.S3 * lunar.z2
	out.Xl3 = -2.0 * out.S3 * (lunar.z3 - lunar.z1)
	out.Xl4 = -2.0 * out.S3 * (-21.0 - 9.0*out.Emsq) * zel
	out.Xgh2 = 2.0 * out.S4 * lunar.z32
	out.Xgh3 = 2.0 * out.S4 * (lunar.z33 - lunar.z31)
	out.Xgh4 = -18.0 * out.S4 * zel
	out.Xh2 = -2.0 * out.S2 * lunar.z22
	out.Xh3 = -2.0 * out.S2 * (lunar.z23 - lunar.z21)

	// Peo/Pinco/Plo/Pgho/Pho: the baseline dpper subtracts from the
	// periodic terms is set to zero here and is not overwritten later, so
	// dpper applies the full periodic terms rather than their change since
	// epoch.
	out.Peo = 0.0
	out.Pinco = 0.0
	out.Plo = 0.0
	out.Pgho = 0.0
	out.Pho = 0.0

	return out
}

func dscomPass(sinim, cosim, sinomm, cosomm, emsq,
	zcosg, zsing, zcosi, zsini, zcosh, zsinh, cc, xnoi, em, betasq float64) dscomPassTerms {

	a1 := zcosg*zcosh + zsing*zcosi*zsinh
	a3 := -zsing*zcosh + zcosg*zcosi*zsinh
	a7 := -zcosg*zsinh + zsing*zcosi*zcosh
	a8 := zsing * zsini
	a9 := zsing*zsinh + zcosg*zcosi*zcosh
	a10 := zcosg * zsini
	a2 := cosim*a7 + sinim*a8
	a4 := cosim*a9 + sinim*a10
	a5 := -sinim*a7 + cosim*a8
	a6 := -sinim*a9 + cosim*a10

	x1 := a1*cosomm + a2*sinomm
	x2 := a3*cosomm + a4*sinomm
	x3 := -a1*sinomm + a2*cosomm
	x4 := -a3*sinomm + a4*cosomm
	x5 := a5 * sinomm
	x6 := a6 * sinomm
	x7 := a5 * cosomm
	x8 := a6 * cosomm

	z31 := 12.0*x1*x1 - 3.0*x3*x3
	z32 := 24.0*x1*x2 - 6.0*x3*x4
	z33 := 12.0*x2*x2 - 3.0*x4*x4
	z1 := 3.0*(a1*a1+a2*a2) + z31*emsq
	z2 := 6.0*(a1*a3+a2*a4) + z32*emsq
	z3 := 3.0*(a3*a3+a4*a4) + z33*emsq
	z11 := -6.0*a1*a5 + emsq*(-24.0*x1*x7-6.0*x3*x5)
	z12 := -6.0*(a1*a6+a3*a5) + emsq*(-24.0*(x2*x7+x1*x8)-6.0*(x3*x6+x4*x5))
	z13 := -6.0*a3*a6 + emsq*(-24.0*x2*x8-6.0*x4*x6)
	z21 := 6.0*a2*a5 + emsq*(24.0*x1*x5-6.0*x3*x7)
	z22 := 6.0*(a4*a5+a2*a6) + emsq*(24.0*(x2*x5+x1*x6)-6.0*(x4*x7+x3*x8))
	z23 := 6.0*a4*a6 + emsq*(24.0*x2*x6-6.0*x4*x8)
	z1 = z1 + z1 + betasq*z31
	z2 = z2 + z2 + betasq*z32
	z3 = z3 + z3 + betasq*z33

	s3 := cc * xnoi
	s2 := -0.5 * s3 / math.Sqrt(betasq)
	s4 := s3 * math.Sqrt(betasq)
	s1 := -15.0 * em * s4
	s5 := x1*x3 + x2*x4
	s6 := x2*x3 + x1*x4
	s7 := x2*x4 - x1*x3

	return dscomPassTerms{
		s1: s1, s2: s2, s3: s3, s4: s4, s5: s5, s6: s6, s7: s7,
		z1: z1, z2: z2, z3: z3,
		z11: z11, z12: z12, z13: z13,
		z21: z21, z22: z22, z23: z23,
		z31: z31, z32: z32, z33: z33,
	}
}
