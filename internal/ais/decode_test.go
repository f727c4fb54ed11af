package ais

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Payloads below are well-known samples from the AIVDM reference
// recordings.

func TestDecodePositionReport(t *testing.T) {
	m, err := Decode(NewPayload("13u?etPv2;0n:dDPwUM1U1Cb069D", 0))
	require.NoError(t, err)
	pr, ok := m.(*PositionReport)
	require.True(t, ok, "expected *PositionReport, got %T", m)

	assert.Equal(t, 1, pr.Type)
	assert.Equal(t, Key(1), pr.Key())
	assert.Equal(t, uint32(265547250), pr.MMSI())
	assert.Equal(t, 0, pr.Repeat)
	assert.Equal(t, 0, pr.Status)
	assert.InDelta(t, -0.008, pr.Turn, 1e-9)

	sog, ok := pr.SOG()
	require.True(t, ok)
	assert.InDelta(t, 13.9, sog, 1e-9)

	course, ok := pr.Course()
	require.True(t, ok)
	assert.InDelta(t, 40.4, course, 1e-9)

	heading, ok := pr.Heading()
	require.True(t, ok)
	assert.Equal(t, 41, heading)

	second, ok := pr.Second()
	require.True(t, ok)
	assert.Equal(t, 53, second)

	lat, ok := pr.LatDeg()
	require.True(t, ok)
	assert.InDelta(t, 57.6603533, lat, 1e-6)

	lon, ok := pr.LonDeg()
	require.True(t, ok)
	assert.InDelta(t, 11.8329767, lon, 1e-6)

	assert.Equal(t, 25172, pr.Radio)

	status, ok := pr.StatusText()
	require.True(t, ok)
	assert.Equal(t, "Under way using engine", status)
}

func TestDecodeStaticVoyageReassembled(t *testing.T) {
	// Two-fragment type 5 chain, payloads concatenated.
	payload := "55P5TL01VIaAL@7WKO@mBplU@<PDhh000000001S;AJ::4A80?4i@E53" +
		"1@0000000000000"
	m, err := Decode(NewPayload(payload, 2))
	require.NoError(t, err)
	sv, ok := m.(*StaticVoyage)
	require.True(t, ok, "expected *StaticVoyage, got %T", m)

	assert.Equal(t, KeyStaticVoyage, sv.Key())
	assert.Equal(t, uint32(369190000), sv.MMSI())
	assert.Equal(t, 6710932, sv.IMO)
	assert.Equal(t, "WDA9674", sv.Callsign)
	assert.Equal(t, "MT.MITCHELL", sv.Shipname)
	assert.Equal(t, 99, sv.ShipType)
	assert.Equal(t, 90, sv.ToBow)
	assert.Equal(t, 90, sv.ToStern)
	assert.Equal(t, 10, sv.ToPort)
	assert.Equal(t, 10, sv.ToStarboard)
	assert.Equal(t, 1, sv.EPFD)
	assert.InDelta(t, 6.0, sv.Draught, 1e-9)
	assert.Equal(t, "SEATTLE", sv.Destination)

	epfd, ok := sv.EPFDText()
	require.True(t, ok)
	assert.Equal(t, "GPS", epfd)
}

func TestStaticVoyageETARollsToNextYear(t *testing.T) {
	sv := &StaticVoyage{Month: 1, Day: 2, Hour: 8, Minute: 0}

	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	eta, ok := sv.ETA(now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC), eta)

	// Still ahead in the current year: no roll.
	now = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	eta, ok = sv.ETA(now)
	require.True(t, ok)
	assert.Equal(t, 2024, eta.Year())
}

func TestStaticVoyageETANotReported(t *testing.T) {
	sv := &StaticVoyage{Month: 0, Day: 0}
	_, ok := sv.ETA(time.Now())
	assert.False(t, ok)
}

func TestDecodeClassBPosition(t *testing.T) {
	m, err := Decode(NewPayload("B52K>;h00Fc>jpUlNV@ikwpUoP06", 0))
	require.NoError(t, err)
	cb, ok := m.(*ClassBPosition)
	require.True(t, ok, "expected *ClassBPosition, got %T", m)

	assert.Equal(t, KeyPositionB, cb.Key())
	assert.Equal(t, uint32(338087471), cb.MMSI())

	sog, ok := cb.SOG()
	require.True(t, ok)
	assert.InDelta(t, 0.1, sog, 1e-9)

	course, ok := cb.Course()
	require.True(t, ok)
	assert.InDelta(t, 79.6, course, 1e-9)

	_, ok = cb.Heading()
	assert.False(t, ok, "heading 511 must be absent")

	lat, ok := cb.LatDeg()
	require.True(t, ok)
	assert.InDelta(t, 40.68454, lat, 1e-6)

	lon, ok := cb.LonDeg()
	require.True(t, ok)
	assert.InDelta(t, -74.0721317, lon, 1e-6)

	assert.True(t, cb.CS)
	assert.True(t, cb.Band)
	assert.True(t, cb.RAIM)
	assert.Equal(t, 917510, cb.Radio)
}

func TestDecodeAidToNavigation(t *testing.T) {
	m, err := Decode(NewPayload("E>k`sO70VQ97aRh1T0W72V@611@=FVj<;V5d@00003v010", 4))
	require.NoError(t, err)
	aid, ok := m.(*AidToNavigation)
	require.True(t, ok, "expected *AidToNavigation, got %T", m)

	assert.Equal(t, KeyAidToNav, aid.Key())
	assert.Equal(t, uint32(993672060), aid.MMSI())
	assert.Equal(t, 14, aid.AidType)
	assert.Equal(t, "AMBROSE CHANNEL LBB", aid.Name)
	assert.True(t, aid.VirtualAid)

	_, ok = aid.Second()
	assert.False(t, ok, "timestamp 60 must be absent")

	lat, ok := aid.LatDeg()
	require.True(t, ok)
	assert.InDelta(t, 40.52795, lat, 1e-6)

	lon, ok := aid.LonDeg()
	require.True(t, ok)
	assert.InDelta(t, -74.0093667, lon, 1e-6)

	typeText, ok := aid.AidTypeText()
	require.True(t, ok)
	assert.Equal(t, "Beacon, starboard hand", typeText)
}

func TestAidNameExtension(t *testing.T) {
	// A name of exactly 20 characters continues in the extension
	// block at bit 272.
	w := &fieldWriter{}
	w.uint(21, 6)
	w.uint(0, 2)
	w.uint(123456789, 30)
	w.uint(1, 5)
	w.text("AAAAABBBBBCCCCCDDDDD", 120)
	w.uint(0, 272-163) // accuracy through assigned, plus spare
	w.text("EXTRA", 84)
	payload, pad := w.armour()

	m, err := Decode(NewPayload(payload, pad))
	require.NoError(t, err)
	aid := m.(*AidToNavigation)
	assert.Equal(t, "AAAAABBBBBCCCCCDDDDDEXTRA", aid.Name)
}

func TestDecodeStaticReportParts(t *testing.T) {
	m, err := Decode(NewPayload("H42O55i18tMET00000000000000", 2))
	require.NoError(t, err)
	a, ok := m.(*StaticReportA)
	require.True(t, ok, "expected *StaticReportA, got %T", m)
	assert.Equal(t, KeyStaticReportA, a.Key())
	assert.Equal(t, uint32(271041815), a.MMSI())
	assert.Equal(t, "PROGUY", a.Shipname)

	m, err = Decode(NewPayload("H42O55lti4hhhilD3nink000?050", 0))
	require.NoError(t, err)
	b, ok := m.(*StaticReportB)
	require.True(t, ok, "expected *StaticReportB, got %T", m)
	assert.Equal(t, KeyStaticReportB, b.Key())
	assert.Equal(t, uint32(271041815), b.MMSI())
	assert.Equal(t, 60, b.ShipType)
	assert.Equal(t, "1D0", b.VendorID)
	assert.Equal(t, "TC6163", b.Callsign)
	assert.Equal(t, 0, b.ToBow)
	assert.Equal(t, 15, b.ToStern)
	assert.Equal(t, 0, b.ToPort)
	assert.Equal(t, 5, b.ToStarboard)
	assert.False(t, b.Auxiliary())
}

func TestStaticReportBAuxiliary(t *testing.T) {
	b := &StaticReportB{UserID: 980312345}
	assert.True(t, b.Auxiliary())
	b.UserID = 271041815
	assert.False(t, b.Auxiliary())
}

func TestDecodeSentinels(t *testing.T) {
	w := &fieldWriter{}
	w.uint(1, 6)
	w.uint(0, 2)
	w.uint(265547250, 30)
	w.uint(15, 4)       // status not defined
	w.signed(-128, 8)   // turn not available
	w.uint(1023, 10)    // sog not available
	w.boolean(false)
	w.signed(181 * 60 * 10000, 28) // lon not available
	w.signed(91 * 60 * 10000, 27)  // lat not available
	w.uint(3600, 12)    // course not available
	w.uint(511, 9)      // heading not available
	w.uint(60, 6)       // second not available
	w.uint(0, 2)
	w.uint(0, 3)
	w.boolean(false)
	w.uint(0, 19)
	payload, pad := w.armour()

	m, err := Decode(NewPayload(payload, pad))
	require.NoError(t, err)
	pr := m.(*PositionReport)

	_, ok := pr.SOG()
	assert.False(t, ok)
	_, ok = pr.Course()
	assert.False(t, ok)
	_, ok = pr.Heading()
	assert.False(t, ok)
	_, ok = pr.Second()
	assert.False(t, ok)
	_, ok = pr.LatDeg()
	assert.False(t, ok)
	_, ok = pr.LonDeg()
	assert.False(t, ok)
}

func TestDecodeShortPayload(t *testing.T) {
	_, err := Decode(NewPayload("13u?et", 0))
	assert.ErrorIs(t, err, ErrShortPayload)
}

func TestDecodeUnsupportedType(t *testing.T) {
	// Type 9 (SAR aircraft) is outside the decoded set.
	w := &fieldWriter{}
	w.uint(9, 6)
	w.uint(0, 162)
	payload, pad := w.armour()
	_, err := Decode(NewPayload(payload, pad))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDecodeEmptyPayload(t *testing.T) {
	_, err := Decode(NewPayload("", 0))
	assert.ErrorIs(t, err, ErrShortPayload)
}
