// Command sgp4propagate propagates a TLE to one or more instants and prints
// TEME position/velocity and the sub-satellite point.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/anupshinde/sgp4go/satellite"
	"github.com/anupshinde/sgp4go/satrec"
	"github.com/anupshinde/sgp4go/timescale"
)

func main() {
	name := flag.String("name", "UNNAMED", "satellite name")
	line1 := flag.String("line1", "", "TLE line 1")
	line2 := flag.String("line2", "", "TLE line 2")
	atStr := flag.String("at", "", "instant to propagate to, RFC3339 (default: now)")
	stepMin := flag.Float64("step-minutes", 0, "if > 0, print a track every step-minutes from -at for -count steps")
	count := flag.Int("count", 1, "number of steps to print when -step-minutes is set")
	afspc := flag.Bool("afspc", false, "use legacy AFSPC opsmode instead of improved")
	flag.Parse()

	if *line1 == "" || *line2 == "" {
		fmt.Fprintln(os.Stderr, "usage: sgp4propagate -line1 ... -line2 ... [-at RFC3339] [-step-minutes N -count N]")
		os.Exit(2)
	}

	opsMode := satrec.Improved
	if *afspc {
		opsMode = satrec.AFSPCLegacy
	}

	sat, err := satellite.FromTLE(*name, *line1, *line2, opsMode)
	if err != nil {
		log.Fatalf("sgp4propagate: %v", err)
	}

	t0 := time.Now().UTC()
	if *atStr != "" {
		t0, err = time.Parse(time.RFC3339, *atStr)
		if err != nil {
			log.Fatalf("sgp4propagate: invalid -at: %v", err)
		}
		t0 = t0.UTC()
	}

	fmt.Printf("Satellite: %s\n\n", sat.Name)
	fmt.Printf("%-20s %14s %14s %14s  %10s %10s\n",
		"Time (UTC)", "X (km)", "Y (km)", "Z (km)", "Lat (deg)", "Lon (deg)")

	steps := 1
	if *stepMin > 0 {
		steps = *count
	}

	for i := 0; i < steps; i++ {
		t := t0.Add(time.Duration(float64(i) * (*stepMin) * float64(time.Minute)))

		result, err := sat.Propagate(t)
		if err != nil {
			log.Fatalf("sgp4propagate: propagation failed at %s: %v", t.Format(time.RFC3339), err)
		}
		ground, err := sat.SubPoint(timescale.TimeToJDUTC(t))
		if err != nil {
			log.Fatalf("sgp4propagate: sub-point failed at %s: %v", t.Format(time.RFC3339), err)
		}

		lon := ground.LongitudeRad * 180.0 / math.Pi
		if lon > 180 {
			lon -= 360
		}

		fmt.Printf("%-20s %14.3f %14.3f %14.3f  %10.3f %10.3f\n",
			t.Format("2006-01-02 15:04:05"),
			result.Position.X, result.Position.Y, result.Position.Z,
			ground.LatitudeRad*180.0/math.Pi, lon)
	}
}
