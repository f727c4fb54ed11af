package geo

import (
	"math"
	"testing"
)

func TestRangeZeroAtSamePoint(t *testing.T) {
	if d := Range(50.1, -1.3, 50.1, -1.3); d > 1e-9 {
		t.Fatalf("Range(a,a)=%v want 0", d)
	}
}

func TestRangeSolentCrossing(t *testing.T) {
	d := Range(50.1, -1.3, 50.4, -1.6)
	if math.Abs(d-21.38) > 0.05 {
		t.Fatalf("Range=%v want ~21.38", d)
	}
}

func TestRangeOneDegreeOfLatitude(t *testing.T) {
	// With R = 3440 NM a degree of latitude is about 60.04 NM.
	d := Range(50.0, -1.0, 51.0, -1.0)
	if math.Abs(d-60.04) > 0.1 {
		t.Fatalf("Range=%v want ~60", d)
	}
}

func TestBearingZeroAtSamePoint(t *testing.T) {
	if b := Bearing(50.1, -1.3, 50.1, -1.3); b != 0 {
		t.Fatalf("Bearing(a,a)=%v want 0", b)
	}
}

func TestBearingNorthwesterly(t *testing.T) {
	b := Bearing(50.1, -1.3, 50.4, -1.6)
	if math.Abs(b-327.5) > 0.5 {
		t.Fatalf("Bearing=%v want ~327.5", b)
	}
}

func TestBearingReciprocal(t *testing.T) {
	fwd := Bearing(50.1, -1.3, 50.4, -1.6)
	back := Bearing(50.4, -1.6, 50.1, -1.3)
	diff := math.Mod(back-fwd+720, 360)
	if math.Abs(diff-180) > 0.5 {
		t.Fatalf("fwd=%v back=%v: reciprocal off by %v", fwd, back, diff-180)
	}
}

func TestPCSVelocityComponents(t *testing.T) {
	// Due north at 60 kn covers one degree of latitude per hour.
	p := New(50, -1, 0, 60)
	if math.Abs(p.NorthSpeed()-1) > 1e-9 {
		t.Fatalf("north=%v want 1", p.NorthSpeed())
	}
	if math.Abs(p.EastSpeed()) > 1e-9 {
		t.Fatalf("east=%v want 0", p.EastSpeed())
	}

	// Due east the longitude rate grows with latitude.
	p = New(60, -1, 90, 60)
	if math.Abs(p.NorthSpeed()) > 1e-9 {
		t.Fatalf("north=%v want 0", p.NorthSpeed())
	}
	if math.Abs(p.EastSpeed()-1/math.Cos(Rad(60))) > 1e-9 {
		t.Fatalf("east=%v want %v", p.EastSpeed(), 1/math.Cos(Rad(60)))
	}
}

func TestPCSVelocityComponentsDiffer(t *testing.T) {
	// North and east components come from different axes; a course
	// that is neither cardinal must produce distinct values.
	p := New(50, -1, 40, 10)
	if p.NorthSpeed() == p.EastSpeed() {
		t.Fatalf("north and east components must differ, both %v", p.NorthSpeed())
	}
}

func TestAtExtrapolates(t *testing.T) {
	p := New(50, -1, 0, 60)
	lon, lat, ok := p.At(0.5)
	if !ok {
		t.Fatalf("expected ok")
	}
	if math.Abs(lat-50.5) > 1e-9 || math.Abs(lon-(-1)) > 1e-9 {
		t.Fatalf("At(0.5)=(%v,%v) want (-1,50.5)", lon, lat)
	}

	if _, _, ok := (PCS{}).At(1); ok {
		t.Fatalf("At without a fix must not be ok")
	}
}

func TestTCPAHeadOn(t *testing.T) {
	us := New(50.0, -1.0, 0, 10)
	them := New(50.1, -1.0, 180, 10)

	tcpa, ok := TCPA(us, them)
	if !ok {
		t.Fatalf("expected ok")
	}
	if math.Abs(tcpa-0.3) > 1e-9 {
		t.Fatalf("TCPA=%v want 0.3", tcpa)
	}

	cpa, ok := CPA(us, them)
	if !ok {
		t.Fatalf("expected ok")
	}
	if cpa > 1e-9 {
		t.Fatalf("CPA=%v want 0", cpa)
	}
}

func TestTCPAWithSelfIsZero(t *testing.T) {
	p := New(50, -1, 45, 12)
	tcpa, ok := TCPA(p, p)
	if !ok || tcpa != 0 {
		t.Fatalf("TCPA(x,x)=%v ok=%v want 0", tcpa, ok)
	}
}

func TestTCPADiverging(t *testing.T) {
	us := New(50.0, -1.0, 0, 10)
	them := New(50.1, -1.0, 0, 20) // same course, pulling away ahead
	tcpa, ok := TCPA(us, them)
	if !ok {
		t.Fatalf("expected ok")
	}
	if tcpa >= 0 {
		t.Fatalf("TCPA=%v want negative for a diverging target", tcpa)
	}
}

func TestTCPAAbsentWithoutCourse(t *testing.T) {
	us := NewPosition(50, -1)
	them := New(50.1, -1, 180, 10)
	if _, ok := TCPA(us, them); ok {
		t.Fatalf("TCPA without our course must be absent")
	}
	if _, ok := Distance(us, them, 0.5); ok {
		t.Fatalf("Distance without our course must be absent")
	}
	if _, ok := CPA(us, them); ok {
		t.Fatalf("CPA without our course must be absent")
	}
}

func TestDistanceNow(t *testing.T) {
	us := New(50.0, -1.0, 0, 0)
	them := New(50.5, -1.0, 0, 0)
	d, ok := Distance(us, them, 0)
	if !ok {
		t.Fatalf("expected ok")
	}
	if math.Abs(d-30) > 1e-9 {
		t.Fatalf("Distance=%v want 30", d)
	}
}
