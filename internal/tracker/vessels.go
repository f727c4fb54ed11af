package tracker

import (
	"sort"
	"time"

	"shipwatch/internal/ais"
	"shipwatch/internal/geo"
)

// VesselSnapshot is a UI-friendly view of one tracked vessel, with
// range/bearing/CPA against our own position when both are known.
type VesselSnapshot struct {
	MMSI uint32 `json:"mmsi"`
	Name string `json:"name,omitempty"`

	LatDeg    *float64 `json:"lat_deg,omitempty"`
	LonDeg    *float64 `json:"lon_deg,omitempty"`
	CourseDeg *float64 `json:"course_deg,omitempty"`
	SOGKt     *float64 `json:"sog_kt,omitempty"`

	RangeNm    *float64 `json:"range_nm,omitempty"`
	BearingDeg *float64 `json:"bearing_deg,omitempty"`
	CPANm      *float64 `json:"cpa_nm,omitempty"`
	TCPAHours  *float64 `json:"tcpa_hours,omitempty"`
}

// Vessels returns a snapshot of every tracked vessel, stalest entries
// purged, sorted by MMSI.
func (w *Watcher) Vessels(nowUTC time.Time) []VesselSnapshot {
	us, hasUs := w.Ownship()

	mmsis := w.store.MMSIs(nowUTC)
	sort.Slice(mmsis, func(i, j int) bool { return mmsis[i] < mmsis[j] })

	out := make([]VesselSnapshot, 0, len(mmsis))
	for _, mmsi := range mmsis {
		snap := VesselSnapshot{MMSI: mmsi}
		if name, ok := w.names.Get(mmsi); ok {
			snap.Name = name
		}

		them, ok := w.latestPCS(mmsi)
		if ok {
			snap.LatDeg = ptr(them.LatDeg)
			snap.LonDeg = ptr(them.LonDeg)
			if them.HasCourse {
				snap.CourseDeg = ptr(them.CourseDeg)
				snap.SOGKt = ptr(them.SpeedKt)
			}
			if hasUs {
				snap.RangeNm = ptr(geo.Range(us.LatDeg, us.LonDeg, them.LatDeg, them.LonDeg))
				snap.BearingDeg = ptr(geo.Bearing(us.LatDeg, us.LonDeg, them.LatDeg, them.LonDeg))
				if t, ok := geo.TCPA(us, them); ok {
					snap.TCPAHours = ptr(t)
					if d, ok := geo.Distance(us, them, t); ok {
						snap.CPANm = ptr(d)
					}
				}
			}
		}
		out = append(out, snap)
	}
	return out
}

// latestPCS derives the freshest target PCS from the message index,
// preferring Class A over Class B over aid-to-navigation reports.
func (w *Watcher) latestPCS(mmsi uint32) (geo.PCS, bool) {
	for _, key := range []ais.Key{ais.KeyPositionA1, ais.KeyPositionA2, ais.KeyPositionA3} {
		if m, ok := w.store.Latest(mmsi, key); ok {
			if pr, ok := m.(*ais.PositionReport); ok {
				if pcs, ok := positionPCS(pr.LatDeg, pr.LonDeg, pr.Course, pr.SOG); ok {
					return pcs, true
				}
			}
		}
	}
	if m, ok := w.store.Latest(mmsi, ais.KeyPositionB); ok {
		if cb, ok := m.(*ais.ClassBPosition); ok {
			if pcs, ok := positionPCS(cb.LatDeg, cb.LonDeg, cb.Course, cb.SOG); ok {
				return pcs, true
			}
		}
	}
	if m, ok := w.store.Latest(mmsi, ais.KeyAidToNav); ok {
		if aid, ok := m.(*ais.AidToNavigation); ok {
			if lat, latOK := aid.LatDeg(); latOK {
				if lon, lonOK := aid.LonDeg(); lonOK {
					return geo.New(lat, lon, 0, 0), true
				}
			}
		}
	}
	return geo.PCS{}, false
}

func positionPCS(latF, lonF func() (float64, bool), courseF, sogF func() (float64, bool)) (geo.PCS, bool) {
	lat, latOK := latF()
	lon, lonOK := lonF()
	if !latOK || !lonOK {
		return geo.PCS{}, false
	}
	course, courseOK := courseF()
	if !courseOK {
		return geo.NewPosition(lat, lon), true
	}
	sog, _ := sogF()
	return geo.New(lat, lon, course, sog), true
}

func ptr(v float64) *float64 { return &v }
