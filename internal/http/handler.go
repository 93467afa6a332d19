// Package http wires the satellite façade to JSON HTTP endpoints, layered
// the way ngs-tides-api's internal/http package wires its prediction use
// case: a thin Handler translating query parameters into façade calls and
// façade results into gin.H responses.
package http

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anupshinde/sgp4go/coord"
	"github.com/anupshinde/sgp4go/satellite"
	"github.com/anupshinde/sgp4go/satrec"
	"github.com/anupshinde/sgp4go/timescale"
)

// Handler serves the propagation and pass-prediction endpoints. It holds no
// mutable state: every request parses its own TLE and builds its own
// satrec.SatRec, so concurrent requests never share a record.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

func parseOpsMode(s string) satrec.OpsMode {
	if s == "afspc" {
		return satrec.AFSPCLegacy
	}
	return satrec.Improved
}

func satFromQuery(c *gin.Context) (satellite.Sat, bool) {
	line1 := c.Query("line1")
	line2 := c.Query("line2")
	if line1 == "" || line2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line1 and line2 query parameters are required"})
		return satellite.Sat{}, false
	}
	name := c.Query("name")
	if name == "" {
		name = "UNNAMED"
	}
	sat, err := satellite.FromTLE(name, line1, line2, parseOpsMode(c.Query("opsmode")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return satellite.Sat{}, false
	}
	return sat, true
}

// vectorJSON is the wire representation of a satrec.Vector3.
type vectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GetPropagate handles GET /v1/propagate: TLE + a wall-clock instant in,
// TEME position/velocity and sub-satellite point out.
func (h *Handler) GetPropagate(c *gin.Context) {
	sat, ok := satFromQuery(c)
	if !ok {
		return
	}

	timeStr := c.Query("time")
	if timeStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time parameter is required (RFC3339)"})
		return
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid time (expected RFC3339): %v", err)})
		return
	}
	t = t.UTC()

	// Propagate on a private copy of the record so a second concurrent
	// request against the same TLE never observes this request's State.
	rec := sat.Rec.Clone()
	sat.Rec = &rec

	result, err := sat.Propagate(t)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ground, err := sat.SubPoint(timescale.TimeToJDUTC(t))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name": sat.Name,
		"time": t.Format(time.RFC3339),
		"position_km": vectorJSON{X: result.Position.X, Y: result.Position.Y, Z: result.Position.Z},
		"velocity_km_s": vectorJSON{X: result.Velocity.X, Y: result.Velocity.Y, Z: result.Velocity.Z},
		"sub_point": gin.H{
			"latitude_deg":  ground.LatitudeRad * 180.0 / math.Pi,
			"longitude_deg": ground.LongitudeRad * 180.0 / math.Pi,
			"height_km":     ground.HeightKm,
		},
	})
}

// GetPasses handles GET /v1/passes: TLE + ground station + time window in,
// rise/culminate/set events out.
func (h *Handler) GetPasses(c *gin.Context) {
	sat, ok := satFromQuery(c)
	if !ok {
		return
	}

	lat, lon, ok := latLonFromQuery(c)
	if !ok {
		return
	}

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end parameters are required (RFC3339)"})
		return
	}
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid start time: %v", err)})
		return
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid end time: %v", err)})
		return
	}

	minElev := 0.0
	if s := c.Query("min_elevation"); s != "" {
		minElev, err = strconv.ParseFloat(s, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid min_elevation: %v", err)})
			return
		}
	}

	observer := coord.Geodetic{
		LatitudeRad:  lat * math.Pi / 180.0,
		LongitudeRad: lon * math.Pi / 180.0,
	}

	events, err := satellite.FindEvents(sat, observer, timescale.TimeToJDUTC(start), timescale.TimeToJDUTC(end), minElev)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	response := make([]gin.H, len(events))
	for i, e := range events {
		response[i] = gin.H{
			"time":          timescale.JDToCalendar(e.JDUTC).Format(time.RFC3339),
			"kind":          eventKindName(e.Kind),
			"elevation_deg": e.ElevDeg,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"name":   sat.Name,
		"passes": response,
	})
}

// HealthCheck handles GET /healthz.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func latLonFromQuery(c *gin.Context) (lat, lon float64, ok bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return 0, 0, false
	}
	var err error
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid lat: %v", err)})
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid lon: %v", err)})
		return 0, 0, false
	}
	return lat, lon, true
}

func eventKindName(kind int) string {
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
