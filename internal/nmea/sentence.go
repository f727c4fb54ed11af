package nmea

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentence is a checksum-verified NMEA 0183 sentence.
type Sentence struct {
	// Type is the sentence type without the talker prefix, e.g. "RMC".
	Type string
	// Fields is the comma-split body (excluding the leading '$'/'!'
	// and the checksum), so Fields[0] is the full talker+type word.
	Fields []string
	Raw    string
}

// Parse validates framing and checksum and splits the sentence.
func Parse(line string) (Sentence, error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return Sentence{}, fmt.Errorf("nmea: empty line")
	}
	if line[0] != '$' && line[0] != '!' {
		return Sentence{}, fmt.Errorf("nmea: missing '$' or '!'")
	}

	body, tail, found := strings.Cut(line[1:], "*")
	if !found {
		return Sentence{}, fmt.Errorf("nmea: missing checksum")
	}
	tail = strings.TrimSpace(tail)
	if len(tail) < 2 {
		return Sentence{}, fmt.Errorf("nmea: short checksum")
	}
	want, err := strconv.ParseUint(tail[:2], 16, 8)
	if err != nil {
		return Sentence{}, fmt.Errorf("nmea: bad checksum %q", tail[:2])
	}
	if sum := xorChecksum(body); sum != byte(want) {
		return Sentence{}, fmt.Errorf("nmea: checksum %02X, sentence says %02X", sum, byte(want))
	}

	parts := strings.Split(body, ",")
	word := parts[0]
	if len(word) < 3 {
		return Sentence{}, fmt.Errorf("nmea: short type %q", word)
	}
	// Talker prefixes vary (GP, GN, AI, ...); the last three letters
	// name the sentence.
	return Sentence{Type: strings.ToUpper(word[len(word)-3:]), Fields: parts, Raw: line}, nil
}

// xorChecksum is the NMEA checksum over everything between the start
// delimiter and the '*'.
func xorChecksum(body string) byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return sum
}

// RMC is the recommended minimum navigation record for our own vessel.
type RMC struct {
	LatDeg float64
	LonDeg float64
	// Track made good in degrees true; HasTrack is false when the
	// receiver left the field empty (common when stationary).
	TrackDeg float64
	HasTrack bool
	SOGKt    float64
}

// ParseRMC extracts an RMC record. ok is false for void fixes or
// unparseable positions.
func ParseRMC(s Sentence) (RMC, bool) {
	f := s.Fields
	if len(f) < 10 {
		return RMC{}, false
	}
	if strings.TrimSpace(f[2]) != "A" {
		return RMC{}, false
	}
	lat, latOK := latLonDegrees(f[3], f[4])
	lon, lonOK := latLonDegrees(f[5], f[6])
	if !latOK || !lonOK {
		return RMC{}, false
	}
	out := RMC{LatDeg: lat, LonDeg: lon}
	if sog, ok := parseFloat(f[7]); ok {
		out.SOGKt = sog
	}
	if trk, ok := parseFloat(f[8]); ok {
		out.TrackDeg = trk
		out.HasTrack = true
	}
	return out, true
}

// VTG is the track-and-speed record. Parsed for completeness; the
// watcher ignores it.
type VTG struct {
	TrackDeg float64
	SOGKt    float64
}

func ParseVTG(s Sentence) (VTG, bool) {
	f := s.Fields
	if len(f) < 6 {
		return VTG{}, false
	}
	trk, ok := parseFloat(f[1])
	if !ok {
		return VTG{}, false
	}
	out := VTG{TrackDeg: trk}
	if len(f) > 5 {
		if sog, ok := parseFloat(f[5]); ok {
			out.SOGKt = sog
		}
	}
	return out, true
}

// VDM is one AIS payload fragment.
type VDM struct {
	Payload   string
	Fragment  int // 1-based
	Fragments int
	// MsgID is the sequential message id tying a multi-fragment
	// chain together; empty for single-fragment messages.
	MsgID   string
	Channel string
	Pad     int
}

// ParseVDM extracts a VDM/VDO fragment.
func ParseVDM(s Sentence) (VDM, error) {
	f := s.Fields
	if len(f) < 7 {
		return VDM{}, fmt.Errorf("nmea: vdm needs 7 fields, got %d", len(f))
	}
	fragments, err := strconv.Atoi(strings.TrimSpace(f[1]))
	if err != nil || fragments < 1 {
		return VDM{}, fmt.Errorf("nmea: vdm fragment count %q", f[1])
	}
	fragment, err := strconv.Atoi(strings.TrimSpace(f[2]))
	if err != nil || fragment < 1 || fragment > fragments {
		return VDM{}, fmt.Errorf("nmea: vdm fragment number %q of %d", f[2], fragments)
	}
	if f[5] == "" {
		return VDM{}, fmt.Errorf("nmea: vdm payload is empty")
	}
	pad, err := strconv.Atoi(strings.TrimSpace(f[6]))
	if err != nil || pad < 0 || pad > 5 {
		return VDM{}, fmt.Errorf("nmea: vdm pad %q", f[6])
	}
	return VDM{
		Payload:   f[5],
		Fragment:  fragment,
		Fragments: fragments,
		MsgID:     strings.TrimSpace(f[3]),
		Channel:   strings.TrimSpace(f[4]),
		Pad:       pad,
	}, nil
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// latLonDegrees converts an NMEA ddmm.mmmm / dddmm.mmmm coordinate
// plus hemisphere into signed decimal degrees. The wire format packs
// whole degrees into the hundreds place, so the split is arithmetic:
// 4807.038 -> 48° + 7.038'.
func latLonDegrees(field, hemi string) (float64, bool) {
	raw, ok := parseFloat(field)
	if !ok || raw < 0 {
		return 0, false
	}
	deg := math.Floor(raw / 100)
	min := raw - deg*100
	if min >= 60 {
		return 0, false
	}

	dec := deg + min/60
	switch strings.TrimSpace(strings.ToUpper(hemi)) {
	case "N", "E":
		return dec, true
	case "S", "W":
		return -dec, true
	default:
		return 0, false
	}
}
