package ais

import "fmt"

// DMS formats a coordinate given in decimal minutes as degrees and
// decimal minutes, e.g. DMS(3459.6212, "N", "S", 5460, 1) -> "57°39.6N".
// na is the "not available" sentinel for the field; dp is the number of
// decimal places for the minutes.
func DMS(vMin float64, posSuffix, negSuffix string, na float64, dp int) string {
	if vMin == na {
		return "n/a"
	}
	suffix := posSuffix
	if vMin < 0 {
		suffix = negSuffix
		vMin = -vMin
	}
	deg := float64(int(vMin / 60))
	min := vMin - deg*60
	return fmt.Sprintf("%.0f°%.*f%s", deg, dp, min, suffix)
}

// LatDMS formats a latitude in minutes north.
func LatDMS(vMin float64) string {
	return DMS(vMin, "N", "S", latMinNotAvailable, 1)
}

// LonDMS formats a longitude in minutes east.
func LonDMS(vMin float64) string {
	return DMS(vMin, "E", "W", lonMinNotAvailable, 1)
}
