package ais

import "time"

// Key identifies a message variant in the per-vessel index. Wire types
// map directly except type 24, whose two halves get distinct keys.
type Key int

const (
	KeyPositionA1     Key = 1
	KeyPositionA2     Key = 2
	KeyPositionA3     Key = 3
	KeyStaticVoyage   Key = 5
	KeyPositionB      Key = 18
	KeyAidToNav       Key = 21
	KeyStaticReportA  Key = 0x24A
	KeyStaticReportB  Key = 0x24B
)

// Message is a decoded AIS message.
type Message interface {
	Key() Key
	MMSI() uint32
}

// Sentinel wire values meaning "not available".
const (
	speedNotAvailable   = 102.3
	courseNotAvailable  = 360.0
	headingNotAvailable = 511
	latMinNotAvailable  = 91 * 60.0  // minutes
	lonMinNotAvailable  = 181 * 60.0 // minutes
)

// PositionReport is the Class A position report (types 1, 2 and 3),
// which share the common navigation block.
type PositionReport struct {
	Type     int // wire type: 1, 2 or 3
	Repeat   int
	UserID   uint32
	Status   int
	Turn     float64 // raw rate-of-turn field, scaled by 10^-3
	Speed    float64 // knots; 102.3 when not available
	Accuracy bool
	LonMin   float64 // minutes east; 181 deg when not available
	LatMin   float64 // minutes north; 91 deg when not available
	CourseOG float64 // degrees true; 360.0 when not available
	HeadingT int     // degrees true; 511 when not available
	Timestmp int     // UTC second; >= 60 when not available
	Maneuver int
	RAIM     bool
	Radio    int
}

func (m *PositionReport) Key() Key      { return Key(m.Type) }
func (m *PositionReport) MMSI() uint32  { return m.UserID }

// SOG reports speed over ground in knots.
func (m *PositionReport) SOG() (float64, bool) {
	return m.Speed, m.Speed != speedNotAvailable
}

// Course reports course over ground in degrees true.
func (m *PositionReport) Course() (float64, bool) {
	return m.CourseOG, m.CourseOG != courseNotAvailable
}

// Heading reports true heading in degrees.
func (m *PositionReport) Heading() (int, bool) {
	return m.HeadingT, m.HeadingT != headingNotAvailable
}

// Second reports the UTC second the position was taken.
func (m *PositionReport) Second() (int, bool) {
	return m.Timestmp, m.Timestmp < 60
}

func (m *PositionReport) LatDeg() (float64, bool) {
	return m.LatMin / 60, m.LatMin != latMinNotAvailable
}

func (m *PositionReport) LonDeg() (float64, bool) {
	return m.LonMin / 60, m.LonMin != lonMinNotAvailable
}

func (m *PositionReport) StatusText() (string, bool) {
	return lookup(NavigationStatuses, m.Status)
}

func (m *PositionReport) ManeuverText() (string, bool) {
	return lookup(ManeuverIndicators, m.Maneuver)
}

// StaticVoyage is the type 5 static and voyage related data report.
type StaticVoyage struct {
	Repeat      int
	UserID      uint32
	AISVersion  int
	IMO         int
	Callsign    string
	Shipname    string
	ShipType    int
	ToBow       int
	ToStern     int
	ToPort      int
	ToStarboard int
	EPFD        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Draught     float64 // metres
	Destination string
	DTE         bool
}

func (m *StaticVoyage) Key() Key     { return KeyStaticVoyage }
func (m *StaticVoyage) MMSI() uint32 { return m.UserID }

func (m *StaticVoyage) ShipTypeText() (string, bool) {
	return lookup(ShipTypes, m.ShipType)
}

func (m *StaticVoyage) EPFDText() (string, bool) {
	return lookup(EPFDFixTypes, m.EPFD)
}

// ETA resolves the month/day/hour/minute fields against now, rolling to
// the next year when the instant has already passed. Month or day of
// zero means the ETA was not reported.
func (m *StaticVoyage) ETA(now time.Time) (time.Time, bool) {
	if m.Month < 1 || m.Month > 12 || m.Day < 1 || m.Day > 31 {
		return time.Time{}, false
	}
	eta := time.Date(now.Year(), time.Month(m.Month), m.Day, m.Hour, m.Minute, 0, 0, time.UTC)
	if eta.Before(now) {
		eta = eta.AddDate(1, 0, 0)
	}
	return eta, true
}

// ClassBPosition is the type 18 standard Class B position report.
type ClassBPosition struct {
	Repeat   int
	UserID   uint32
	Speed    float64
	Accuracy bool
	LonMin   float64
	LatMin   float64
	CourseOG float64
	HeadingT int
	Timestmp int
	Regional int
	CS       bool
	Display  bool
	DSC      bool
	Band     bool
	Msg22    bool
	Assigned bool
	RAIM     bool
	Radio    int
}

func (m *ClassBPosition) Key() Key     { return KeyPositionB }
func (m *ClassBPosition) MMSI() uint32 { return m.UserID }

func (m *ClassBPosition) SOG() (float64, bool) {
	return m.Speed, m.Speed != speedNotAvailable
}

func (m *ClassBPosition) Course() (float64, bool) {
	return m.CourseOG, m.CourseOG != courseNotAvailable
}

func (m *ClassBPosition) Heading() (int, bool) {
	return m.HeadingT, m.HeadingT != headingNotAvailable
}

func (m *ClassBPosition) Second() (int, bool) {
	return m.Timestmp, m.Timestmp < 60
}

func (m *ClassBPosition) LatDeg() (float64, bool) {
	return m.LatMin / 60, m.LatMin != latMinNotAvailable
}

func (m *ClassBPosition) LonDeg() (float64, bool) {
	return m.LonMin / 60, m.LonMin != lonMinNotAvailable
}

// AidToNavigation is the type 21 aid-to-navigation report.
type AidToNavigation struct {
	Repeat      int
	UserID      uint32
	AidType     int
	Name        string
	Accuracy    bool
	LonMin      float64
	LatMin      float64
	ToBow       int
	ToStern     int
	ToPort      int
	ToStarboard int
	EPFD        int
	Timestmp    int
	OffPosition bool
	Regional    int
	RAIM        bool
	VirtualAid  bool
	Assigned    bool
}

func (m *AidToNavigation) Key() Key     { return KeyAidToNav }
func (m *AidToNavigation) MMSI() uint32 { return m.UserID }

func (m *AidToNavigation) AidTypeText() (string, bool) {
	return lookup(NavAidTypes, m.AidType)
}

func (m *AidToNavigation) Second() (int, bool) {
	return m.Timestmp, m.Timestmp < 60
}

func (m *AidToNavigation) LatDeg() (float64, bool) {
	return m.LatMin / 60, m.LatMin != latMinNotAvailable
}

func (m *AidToNavigation) LonDeg() (float64, bool) {
	return m.LonMin / 60, m.LonMin != lonMinNotAvailable
}

// StaticReportA is part A of the type 24 static data report.
type StaticReportA struct {
	Repeat   int
	UserID   uint32
	Shipname string
}

func (m *StaticReportA) Key() Key     { return KeyStaticReportA }
func (m *StaticReportA) MMSI() uint32 { return m.UserID }

// StaticReportB is part B of the type 24 static data report. Bits 132+
// carry either vessel dimensions or, for an auxiliary craft (MMSI
// 98XXXYYYY), the mothership MMSI. Both readings are decoded; pick by
// Auxiliary.
type StaticReportB struct {
	Repeat         int
	UserID         uint32
	ShipType       int
	VendorID       string
	Model          int
	Serial         int
	Callsign       string
	MothershipMMSI uint32
	ToBow          int
	ToStern        int
	ToPort         int
	ToStarboard    int
}

func (m *StaticReportB) Key() Key     { return KeyStaticReportB }
func (m *StaticReportB) MMSI() uint32 { return m.UserID }

// Auxiliary reports whether the MMSI marks an auxiliary craft, in which
// case MothershipMMSI is meaningful and the dimension fields are not.
func (m *StaticReportB) Auxiliary() bool {
	return m.UserID/10000000 == 98
}

func (m *StaticReportB) ShipTypeText() (string, bool) {
	return lookup(ShipTypes, m.ShipType)
}
