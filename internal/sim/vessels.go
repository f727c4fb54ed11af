package sim

import (
	"fmt"
	"math"
	"time"

	"shipwatch/internal/ais"
)

// Fleet is a set of vessels orbiting the same center as the ownship,
// staggered around the circle and counter-rotating so tracks cross.
type Fleet struct {
	CenterLatDeg float64
	CenterLonDeg float64
	RadiusNm     float64
	SpeedKt      float64
	Period       time.Duration
	Count        int

	// baseMMSI numbers the fleet; Danish block by default.
	BaseMMSI uint32
}

type vesselState struct {
	mmsi     uint32
	name     string
	latDeg   float64
	lonDeg   float64
	trackDeg float64
}

func (f Fleet) states(now time.Time) []vesselState {
	count := f.Count
	if count <= 0 {
		count = 3
	}
	period := f.Period
	if period <= 0 {
		period = 10 * time.Minute
	}
	radiusNm := f.RadiusNm
	if radiusNm <= 0 {
		radiusNm = 2.0
	}
	base := f.BaseMMSI
	if base == 0 {
		base = 219000001
	}

	radiusDeg := radiusNm / 60.0
	phase := float64(now.UnixNano()%period.Nanoseconds()) / float64(period.Nanoseconds())
	// Counter-rotate relative to the ownship circle.
	baseTheta := -2 * math.Pi * phase

	out := make([]vesselState, 0, count)
	for i := 0; i < count; i++ {
		theta := baseTheta + 2*math.Pi*float64(i)/float64(count)
		lat := f.CenterLatDeg + radiusDeg*math.Cos(theta)
		lon := f.CenterLonDeg + radiusDeg*math.Sin(theta)/math.Cos(f.CenterLatDeg*math.Pi/180.0)
		track := math.Mod(theta*180/math.Pi-90+720, 360)
		out = append(out, vesselState{
			mmsi:     base + uint32(i),
			name:     fmt.Sprintf("SIMULATED %d", i+1),
			latDeg:   lat,
			lonDeg:   lon,
			trackDeg: track,
		})
	}
	return out
}

// Sentences returns this tick's feed: a type 1 position report per
// vessel, plus static reports on a slow cadence so name resolution and
// multi-fragment reassembly stay exercised.
func (f Fleet) Sentences(now time.Time) []string {
	speed := f.SpeedKt
	if speed <= 0 {
		speed = 8
	}

	var out []string
	for i, v := range f.states(now) {
		out = append(out, ais.EncodePositionReport(v.mmsi, v.latDeg, v.lonDeg, v.trackDeg, speed, now))

		// Stagger static reports across vessels, one per ~30s.
		if int(now.Unix()/30)%maxInt(f.Count, 1) != i {
			continue
		}
		if i%2 == 0 {
			out = append(out, ais.EncodeStaticReportA(v.mmsi, v.name))
		} else {
			out = append(out, ais.EncodeStaticVoyage(v.mmsi, v.name, fmt.Sprintf("OX%04d", i), "HELSINGBORG", 70, i%10)...)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
