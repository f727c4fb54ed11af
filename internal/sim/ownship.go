// Package sim generates a deterministic NMEA feed — our own vessel plus
// a small fleet — through the real encoder, for demos and end-to-end
// tests without a receiver.
package sim

import (
	"fmt"
	"math"
	"time"

	"shipwatch/internal/ais"
)

type Ownship struct {
	CenterLatDeg float64
	CenterLonDeg float64
	RadiusNm     float64
	SpeedKt      float64
	Period       time.Duration
}

// Position returns a circular track around the configured center.
func (s Ownship) Position(now time.Time) (latDeg, lonDeg, trackDeg float64) {
	period := s.Period
	if period <= 0 {
		period = 10 * time.Minute
	}
	radiusNm := s.RadiusNm
	if radiusNm <= 0 {
		radiusNm = 1.0
	}

	// Convert NM to degrees latitude (~60 NM per degree).
	radiusDeg := radiusNm / 60.0

	phase := float64(now.UnixNano()%period.Nanoseconds()) / float64(period.Nanoseconds())
	theta := 2 * math.Pi * phase

	latDeg = s.CenterLatDeg + radiusDeg*math.Cos(theta)
	lonDeg = s.CenterLonDeg + radiusDeg*math.Sin(theta)/math.Cos(s.CenterLatDeg*math.Pi/180.0)

	// Tangent of the circle, clockwise from north.
	trackDeg = math.Mod(theta*180/math.Pi+90+360, 360)
	return latDeg, lonDeg, trackDeg
}

// RMCSentence frames the current position as a $GPRMC sentence.
func (s Ownship) RMCSentence(now time.Time) string {
	lat, lon, track := s.Position(now)
	sog := s.SpeedKt
	if sog <= 0 {
		sog = 8
	}

	body := fmt.Sprintf("GPRMC,%s,A,%s,%s,%05.1f,%05.1f,%s,,,A",
		now.UTC().Format("150405"),
		formatLat(lat), formatLon(lon),
		sog, track,
		now.UTC().Format("020106"))
	return fmt.Sprintf("$%s*%02X", body, ais.Checksum(body))
}

// formatLat renders ddmm.mmmm,H.
func formatLat(latDeg float64) string {
	hemi := "N"
	if latDeg < 0 {
		hemi = "S"
		latDeg = -latDeg
	}
	deg := int(latDeg)
	min := (latDeg - float64(deg)) * 60
	return fmt.Sprintf("%02d%07.4f,%s", deg, min, hemi)
}

// formatLon renders dddmm.mmmm,H.
func formatLon(lonDeg float64) string {
	hemi := "E"
	if lonDeg < 0 {
		hemi = "W"
		lonDeg = -lonDeg
	}
	deg := int(lonDeg)
	min := (lonDeg - float64(deg)) * 60
	return fmt.Sprintf("%03d%07.4f,%s", deg, min, hemi)
}
