// Command sgp4passes prints a table of rise/culminate/set events for a
// satellite as seen from a ground station over a given time window.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/anupshinde/sgp4go/coord"
	"github.com/anupshinde/sgp4go/satellite"
	"github.com/anupshinde/sgp4go/satrec"
	"github.com/anupshinde/sgp4go/timescale"
)

func main() {
	name := flag.String("name", "UNNAMED", "satellite name")
	line1 := flag.String("line1", "", "TLE line 1")
	line2 := flag.String("line2", "", "TLE line 2")
	lat := flag.Float64("lat", 0, "observer latitude, degrees")
	lon := flag.Float64("lon", 0, "observer longitude, degrees")
	startStr := flag.String("start", "", "window start, RFC3339 (default: now)")
	hours := flag.Float64("hours", 24, "window length in hours")
	minElev := flag.Float64("min-elevation", 0, "minimum elevation to count as visible, degrees")
	afspc := flag.Bool("afspc", false, "use legacy AFSPC opsmode instead of improved")
	flag.Parse()

	if *line1 == "" || *line2 == "" {
		fmt.Fprintln(os.Stderr, "usage: sgp4passes -line1 ... -line2 ... -lat ... -lon ... [-start RFC3339] [-hours N]")
		os.Exit(2)
	}

	opsMode := satrec.Improved
	if *afspc {
		opsMode = satrec.AFSPCLegacy
	}

	sat, err := satellite.FromTLE(*name, *line1, *line2, opsMode)
	if err != nil {
		log.Fatalf("sgp4passes: %v", err)
	}

	start := time.Now().UTC()
	if *startStr != "" {
		start, err = time.Parse(time.RFC3339, *startStr)
		if err != nil {
			log.Fatalf("sgp4passes: invalid -start: %v", err)
		}
		start = start.UTC()
	}
	end := start.Add(time.Duration(*hours * float64(time.Hour)))

	observer := coord.Geodetic{
		LatitudeRad:  *lat * math.Pi / 180.0,
		LongitudeRad: *lon * math.Pi / 180.0,
	}

	events, err := satellite.FindEvents(sat, observer,
		timescale.TimeToJDUTC(start), timescale.TimeToJDUTC(end), *minElev)
	if err != nil {
		log.Fatalf("sgp4passes: %v", err)
	}

	fmt.Printf("Passes for %s, %.4f deg N, %.4f deg E, %s to %s\n\n",
		sat.Name, *lat, *lon, start.Format(time.RFC3339), end.Format(time.RFC3339))

	if len(events) == 0 {
		fmt.Println("No passes found.")
		return
	}

	fmt.Printf("%-20s %-12s %10s\n", "Time (UTC)", "Event", "Elev (deg)")
	fmt.Println("-------------------- ------------ ----------")
	for _, e := range events {
		t := timescale.JDToCalendar(e.JDUTC)
		fmt.Printf("%-20s %-12s %10.2f\n", t.Format("2006-01-02 15:04:05"), eventName(e.Kind), e.ElevDeg)
	}
}

func eventName(kind int) string {
	switch kind {
	case satellite.Rise:
		return "rise"
	case satellite.Culmination:
		return "culmination"
	case satellite.Set:
		return "set"
	default:
		return "unknown"
	}
}
