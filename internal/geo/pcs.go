package geo

import "math"

// PCS is a position/course/speed record with cached track velocity in
// degrees per hour, so position extrapolation is two multiply-adds.
type PCS struct {
	LatDeg float64
	LonDeg float64
	// HasPosition is false when the record carries no fix.
	HasPosition bool

	CourseDeg float64
	// HasCourse is false when course over ground is unknown; the
	// velocity components are zero in that case.
	HasCourse bool

	SpeedKt float64

	north float64 // degrees latitude per hour
	east  float64 // degrees longitude per hour
}

// New builds a PCS with position, course and speed all present.
func New(latDeg, lonDeg, courseDeg, speedKt float64) PCS {
	p := PCS{
		LatDeg:      latDeg,
		LonDeg:      lonDeg,
		HasPosition: true,
		CourseDeg:   courseDeg,
		HasCourse:   true,
		SpeedKt:     speedKt,
	}
	// 60 NM per degree of latitude; longitude shrinks with cos(lat).
	p.north = speedKt / 60 * math.Cos(Rad(courseDeg))
	p.east = speedKt / 60 * math.Sin(Rad(courseDeg)) / math.Abs(math.Cos(Rad(latDeg)))
	return p
}

// NewPosition builds a PCS with a fix but unknown course and speed.
func NewPosition(latDeg, lonDeg float64) PCS {
	return PCS{LatDeg: latDeg, LonDeg: lonDeg, HasPosition: true}
}

// NorthSpeed is the north component of track velocity in degrees
// latitude per hour.
func (p PCS) NorthSpeed() float64 { return p.north }

// EastSpeed is the east component of track velocity in degrees
// longitude per hour.
func (p PCS) EastSpeed() float64 { return p.east }

// At extrapolates the position t hours ahead along the cached velocity.
// ok is false without a fix.
func (p PCS) At(tHours float64) (lonDeg, latDeg float64, ok bool) {
	if !p.HasPosition {
		return 0, 0, false
	}
	return p.LonDeg + p.east*tHours, p.LatDeg + p.north*tHours, true
}

// TCPA returns the time to the closest point of approach in hours.
// Negative values mean the closest point is in the past (diverging
// tracks). ok is false when our course or either position is unknown.
func TCPA(us, them PCS) (float64, bool) {
	if !us.HasCourse || !us.HasPosition || !them.HasPosition {
		return 0, false
	}
	dvE := us.east - them.east
	dvN := us.north - them.north
	dd := dvE*dvE + dvN*dvN
	if dd == 0 {
		// Identical velocity: the separation never changes.
		return 0, true
	}
	dLon := us.LonDeg - them.LonDeg
	dLat := us.LatDeg - them.LatDeg
	return -(dLon*dvE + dLat*dvN) / dd, true
}

// Distance returns the separation in nautical miles t hours ahead.
func Distance(us, them PCS, tHours float64) (float64, bool) {
	if !us.HasCourse {
		return 0, false
	}
	uLon, uLat, ok := us.At(tHours)
	if !ok {
		return 0, false
	}
	tLon, tLat, ok := them.At(tHours)
	if !ok {
		return 0, false
	}
	return math.Hypot(uLon-tLon, uLat-tLat) * 60, true
}

// CPA returns the distance at the closest point of approach.
func CPA(us, them PCS) (float64, bool) {
	t, ok := TCPA(us, them)
	if !ok {
		return 0, false
	}
	return Distance(us, them, t)
}
