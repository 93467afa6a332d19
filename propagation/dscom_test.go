package propagation

import "testing"

// TestDscomLunarTermsDistinctFromSolar guards against feeding the solar
// pass's s1..s5 into the lunar slot (S1..S5) instead of the lunar pass's
// own s1..s5: dedt/didt/dmdt (dsinit.go) and Ee2/E3/Xi2/Xi3/Xl2-4/Xgh2-4/Xh2-3
// (dscom.go) are all built from S1..S5 paired with the lunar Z1..Z33, and a
// regression that quietly reuses Ss1..Ss5 there would still compile and
// still produce nonzero output, just the wrong one.
func TestDscomLunarTermsDistinctFromSolar(t *testing.T) {
	in := dscomInput{
		Epoch: 20000.0,
		Ep:    0.02,
		Argpp: 1.1,
		Tc:    0.0,
		Inclp: 0.9,
		Nodep: 0.4,
		Np:    0.008735,
	}
	out := dscom(in)

	// The solar and lunar third-body passes use different direction
	// cosines (different day-dependent geometry), so their raw s1..s5
	// terms must differ; if S1..S5 were accidentally bound to the solar
	// pass's values (as Ss1..Ss5 are), they'd be identical to Ss1..Ss5.
	if out.S1 == out.Ss1 && out.S2 == out.Ss2 && out.S3 == out.Ss3 &&
		out.S4 == out.Ss4 && out.S5 == out.Ss5 {
		t.Fatal("S1..S5 (lunar pass) are identical to Ss1..Ss5 (solar pass); " +
			"dscom is binding the lunar raw terms from the wrong pass")
	}
	if out.S1 == 0 {
		t.Fatal("S1 came out zero for a non-degenerate input; dscom's lunar pass looks broken")
	}
}

// TestDscomSolarAndLunarZTermsDistinct checks the Sz*/Z* pairing similarly:
// Sz* must come from the solar pass, Z* from the lunar pass, and the two
// passes' z-terms are expected to differ given the differing geometry.
func TestDscomSolarAndLunarZTermsDistinct(t *testing.T) {
	in := dscomInput{
		Epoch: 20000.0,
		Ep:    0.02,
		Argpp: 1.1,
		Tc:    0.0,
		Inclp: 0.9,
		Nodep: 0.4,
		Np:    0.008735,
	}
	out := dscom(in)

	if out.Sz1 == out.Z1 && out.Sz3 == out.Z3 &&
		out.Sz11 == out.Z11 && out.Sz13 == out.Z13 {
		t.Fatal("solar Sz* terms are identical to lunar Z* terms; " +
			"dscom's two passes are not producing distinguishable geometry")
	}
}
