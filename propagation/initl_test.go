package propagation

import (
	"math"
	"testing"

	"github.com/anupshinde/sgp4go/satrec"
)

func closeEnough(actual, expected, epsilon float64) bool {
	return math.Abs(actual-expected) < epsilon
}

// TestInitlLegacySiderealTime is a golden-value regression test lifted
// directly from the original implementation's initl fixture: an
// equatorial orbit with eccentricity ~0.185 under legacy AFSPC opsmode.
func TestInitlLegacySiderealTime(t *testing.T) {
	in := InitlInput{
		Ecco:    0.1846988,
		Epoch:   25938.538312919904,
		Inclo:   0.0,
		No:      0.0037028783237264057,
		OpsMode: satrec.AFSPCLegacy,
	}
	out := Initl(in)
	const epsilon = 1e-3

	cases := []struct {
		name           string
		got, want      float64
	}{
		{"ainv", out.Ainv, 0.1353414893496189},
		{"ao", out.Ao, 7.3887172721793},
		{"eccsq", out.Eccsq, 0.034113646721439995},
		{"gsto", out.Gsto, 5.220883431398299},
		{"no", out.No, 0.003702762286531528},
		{"omeosq", out.Omeosq, 0.96588635327856},
		{"posq", out.Posq, 50.931932818552305},
		{"rp", out.Rp, 6.02403005846851},
		{"rteosq", out.Rteosq, 0.9827951736137902},
	}
	for _, c := range cases {
		if !closeEnough(c.got, c.want, epsilon) {
			t.Errorf("%s: got %v want %v", c.name, c.got, c.want)
		}
	}

	if out.Con41 != 2.0 {
		t.Errorf("con41: got %v want 2.0", out.Con41)
	}
	if out.Con42 != -4.0 {
		t.Errorf("con42: got %v want -4.0", out.Con42)
	}
	if out.Cosio != 1.0 {
		t.Errorf("cosio: got %v want 1.0", out.Cosio)
	}
	if out.Cosio2 != 1.0 {
		t.Errorf("cosio2: got %v want 1.0", out.Cosio2)
	}
	if out.Sinio != 0.0 {
		t.Errorf("sinio: got %v want 0.0", out.Sinio)
	}
	if out.Method != satrec.NearEarth {
		t.Errorf("method: got %s want near-earth", out.Method)
	}
}
