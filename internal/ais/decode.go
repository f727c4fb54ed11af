package ais

import (
	"errors"
	"fmt"
)

var (
	// ErrShortPayload means a field ran past the end of the payload.
	ErrShortPayload = errors.New("ais: payload too short")
	// ErrUnsupportedType means the wire type is outside the decoded set.
	ErrUnsupportedType = errors.New("ais: unsupported message type")
)

// fieldReader extracts fields with sticky failure, so a decode can read
// its whole layout and check once at the end.
type fieldReader struct {
	p      Payload
	failed bool
}

func (r *fieldReader) uint(start, length int) int {
	v, ok := r.p.Unsigned(start, length)
	if !ok {
		r.failed = true
	}
	return v
}

func (r *fieldReader) uscaled(start, length, scale int) float64 {
	v, ok := r.p.UnsignedScaled(start, length, scale)
	if !ok {
		r.failed = true
	}
	return v
}

func (r *fieldReader) sscaled(start, length, scale int) float64 {
	v, ok := r.p.SignedScaled(start, length, scale)
	if !ok {
		r.failed = true
	}
	return v
}

func (r *fieldReader) boolean(start int) bool {
	v, ok := r.p.Boolean(start)
	if !ok {
		r.failed = true
	}
	return v
}

func (r *fieldReader) text(start, length int) string {
	return r.p.Text(start, length)
}

// Decode parses a reassembled payload into a typed message.
func Decode(p Payload) (Message, error) {
	wireType, ok := p.Unsigned(0, 6)
	if !ok {
		return nil, ErrShortPayload
	}

	switch wireType {
	case 1, 2, 3:
		return decodeCNB(p, wireType)
	case 5:
		return decodeStaticVoyage(p)
	case 18:
		return decodeClassB(p)
	case 21:
		return decodeAidToNav(p)
	case 24:
		part, ok := p.Unsigned(38, 2)
		if !ok {
			return nil, ErrShortPayload
		}
		if part == 0 {
			return decodeStaticReportA(p)
		}
		return decodeStaticReportB(p)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedType, wireType)
	}
}

func decodeCNB(p Payload, wireType int) (*PositionReport, error) {
	r := fieldReader{p: p}
	m := &PositionReport{
		Type:     wireType,
		Repeat:   r.uint(6, 2),
		UserID:   uint32(r.uint(8, 30)),
		Status:   r.uint(38, 4),
		Turn:     r.sscaled(42, 8, 3),
		Speed:    r.uscaled(50, 10, 1),
		Accuracy: r.boolean(60),
		LonMin:   r.sscaled(61, 28, 4),
		LatMin:   r.sscaled(89, 27, 4),
		CourseOG: r.uscaled(116, 12, 1),
		HeadingT: r.uint(128, 9),
		Timestmp: r.uint(137, 6),
		Maneuver: r.uint(143, 2),
		RAIM:     r.boolean(148),
		Radio:    r.uint(149, 19),
	}
	if r.failed {
		return nil, ErrShortPayload
	}
	return m, nil
}

func decodeStaticVoyage(p Payload) (*StaticVoyage, error) {
	r := fieldReader{p: p}
	m := &StaticVoyage{
		Repeat:      r.uint(6, 2),
		UserID:      uint32(r.uint(8, 30)),
		AISVersion:  r.uint(38, 2),
		IMO:         r.uint(40, 30),
		Callsign:    r.text(70, 42),
		Shipname:    r.text(112, 120),
		ShipType:    r.uint(232, 8),
		ToBow:       r.uint(240, 9),
		ToStern:     r.uint(249, 9),
		ToPort:      r.uint(258, 6),
		ToStarboard: r.uint(264, 6),
		EPFD:        r.uint(270, 4),
		Month:       r.uint(274, 4),
		Day:         r.uint(278, 5),
		Hour:        r.uint(283, 5),
		Minute:      r.uint(288, 6),
		Draught:     r.uscaled(294, 8, 1),
		Destination: r.text(302, 120),
		DTE:         r.boolean(422),
	}
	if r.failed {
		return nil, ErrShortPayload
	}
	return m, nil
}

func decodeClassB(p Payload) (*ClassBPosition, error) {
	r := fieldReader{p: p}
	m := &ClassBPosition{
		Repeat:   r.uint(6, 2),
		UserID:   uint32(r.uint(8, 30)),
		Speed:    r.uscaled(46, 10, 1),
		Accuracy: r.boolean(56),
		LonMin:   r.sscaled(57, 28, 4),
		LatMin:   r.sscaled(85, 27, 4),
		CourseOG: r.uscaled(112, 12, 1),
		HeadingT: r.uint(124, 9),
		Timestmp: r.uint(133, 6),
		Regional: r.uint(139, 2),
		CS:       r.boolean(141),
		Display:  r.boolean(142),
		DSC:      r.boolean(143),
		Band:     r.boolean(144),
		Msg22:    r.boolean(145),
		Assigned: r.boolean(146),
		RAIM:     r.boolean(147),
		Radio:    r.uint(148, 20),
	}
	if r.failed {
		return nil, ErrShortPayload
	}
	return m, nil
}

func decodeAidToNav(p Payload) (*AidToNavigation, error) {
	r := fieldReader{p: p}
	m := &AidToNavigation{
		Repeat:      r.uint(6, 2),
		UserID:      uint32(r.uint(8, 30)),
		AidType:     r.uint(38, 5),
		Name:        r.text(43, 120),
		Accuracy:    r.boolean(163),
		LonMin:      r.sscaled(164, 28, 4),
		LatMin:      r.sscaled(192, 27, 4),
		ToBow:       r.uint(219, 9),
		ToStern:     r.uint(228, 9),
		ToPort:      r.uint(237, 6),
		ToStarboard: r.uint(243, 6),
		EPFD:        r.uint(249, 4),
		Timestmp:    r.uint(253, 6),
		OffPosition: r.boolean(259),
		Regional:    r.uint(260, 8),
		RAIM:        r.boolean(268),
		VirtualAid:  r.boolean(269),
		Assigned:    r.boolean(270),
	}
	if r.failed {
		return nil, ErrShortPayload
	}
	// A full 20-character name continues in the extension block.
	if len(m.Name) == 20 {
		m.Name += p.Text(272, 88)
	}
	return m, nil
}

func decodeStaticReportA(p Payload) (*StaticReportA, error) {
	r := fieldReader{p: p}
	m := &StaticReportA{
		Repeat:   r.uint(6, 2),
		UserID:   uint32(r.uint(8, 30)),
		Shipname: r.text(40, 120),
	}
	if r.failed {
		return nil, ErrShortPayload
	}
	return m, nil
}

func decodeStaticReportB(p Payload) (*StaticReportB, error) {
	r := fieldReader{p: p}
	m := &StaticReportB{
		Repeat:   r.uint(6, 2),
		UserID:   uint32(r.uint(8, 30)),
		ShipType: r.uint(40, 8),
		VendorID: r.text(48, 18),
		Model:    r.uint(66, 4),
		Serial:   r.uint(70, 20),
		Callsign: r.text(90, 42),
		// Bits 132+ overlap: both readings are kept, Auxiliary picks.
		MothershipMMSI: uint32(r.uint(132, 30)),
		ToBow:          r.uint(132, 9),
		ToStern:        r.uint(141, 9),
		ToPort:         r.uint(150, 6),
		ToStarboard:    r.uint(156, 6),
	}
	if r.failed {
		return nil, ErrShortPayload
	}
	return m, nil
}
