package ais

// Enumeration tables from the AIVDM reference. Out-of-range indices are
// treated as "not available" by Payload.Enum and the *Text accessors.

var NavigationStatuses = []string{
	"Under way using engine",
	"At anchor",
	"Not under command",
	"Restricted manoeuverability",
	"Constrained by her draught",
	"Moored",
	"Aground",
	"Engaged in fishing",
	"Under way sailing",
	"Reserved for future amendment (HSC)",
	"Reserved for future amendment (WIG)",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"AIS-SART is active",
	"Not defined",
}

var ManeuverIndicators = []string{
	"Not available",
	"No special maneuver",
	"Special maneuver",
}

// EPFDFixTypes is the position-fix device table. Type 5 and types 18/21
// reference the same enumeration.
var EPFDFixTypes = []string{
	"Undefined",
	"GPS",
	"GLONASS",
	"Combined GPS/GLONASS",
	"Loran-C",
	"Chayka",
	"Integrated navigation system",
	"Surveyed",
	"Galileo",
}

var ShipTypes = []string{
	"Not available",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Reserved for future use",
	"Wing in ground (WIG), all ships of this type",
	"Wing in ground (WIG), Hazardous category A",
	"Wing in ground (WIG), Hazardous category B",
	"Wing in ground (WIG), Hazardous category C",
	"Wing in ground (WIG), Hazardous category D",
	"Wing in ground (WIG), Reserved for future use",
	"Wing in ground (WIG), Reserved for future use",
	"Wing in ground (WIG), Reserved for future use",
	"Wing in ground (WIG), Reserved for future use",
	"Wing in ground (WIG), Reserved for future use",
	"Fishing",
	"Towing",
	"Towing: length exceeds 200m or breadth exceeds 25m",
	"Dredging or underwater ops",
	"Diving ops",
	"Military ops",
	"Sailing",
	"Pleasure craft",
	"Reserved",
	"Reserved",
	"High speed craft (HSC), all ships of this type",
	"High speed craft (HSC), Hazardous category A",
	"High speed craft (HSC), Hazardous category B",
	"High speed craft (HSC), Hazardous category C",
	"High speed craft (HSC), Hazardous category D",
	"High speed craft (HSC), Reserved for future use",
	"High speed craft (HSC), Reserved for future use",
	"High speed craft (HSC), Reserved for future use",
	"High speed craft (HSC), Reserved for future use",
	"High speed craft (HSC), No additional information",
	"Pilot vessel",
	"Search and rescue vessel",
	"Tug",
	"Port tender",
	"Anti-pollution equipment",
	"Law enforcement",
	"Spare - local vessel",
	"Spare - local vessel",
	"Medical transport",
	"Noncombatant ship according to RR Resolution No. 18",
	"Passenger, all ships of this type",
	"Passenger, Hazardous category A",
	"Passenger, Hazardous category B",
	"Passenger, Hazardous category C",
	"Passenger, Hazardous category D",
	"Passenger, Reserved for future use",
	"Passenger, Reserved for future use",
	"Passenger, Reserved for future use",
	"Passenger, Reserved for future use",
	"Passenger, No additional information",
	"Cargo, all ships of this type",
	"Cargo, Hazardous category A",
	"Cargo, Hazardous category B",
	"Cargo, Hazardous category C",
	"Cargo, Hazardous category D",
	"Cargo, Reserved for future use",
	"Cargo, Reserved for future use",
	"Cargo, Reserved for future use",
	"Cargo, Reserved for future use",
	"Cargo, No additional information",
	"Tanker, all ships of this type",
	"Tanker, Hazardous category A",
	"Tanker, Hazardous category B",
	"Tanker, Hazardous category C",
	"Tanker, Hazardous category D",
	"Tanker, Reserved for future use",
	"Tanker, Reserved for future use",
	"Tanker, Reserved for future use",
	"Tanker, Reserved for future use",
	"Tanker, No additional information",
	"Other type, all ships of this type",
	"Other type, Hazardous category A",
	"Other type, Hazardous category B",
	"Other type, Hazardous category C",
	"Other type, Hazardous category D",
	"Other type, Reserved for future use",
	"Other type, Reserved for future use",
	"Other type, Reserved for future use",
	"Other type, Reserved for future use",
	"Other type, No additional information",
}

var NavAidTypes = []string{
	"Default, type not specified",
	"Reference point",
	"RACON (radar transponder marking a navigation hazard)",
	"Fixed structure off shore",
	"Spare, reserved for future use",
	"Light, without sectors",
	"Light, with sectors",
	"Leading light front",
	"Leading light rear",
	"Beacon, cardinal N",
	"Beacon, cardinal E",
	"Beacon, cardinal S",
	"Beacon, cardinal W",
	"Beacon, port hand",
	"Beacon, starboard hand",
	"Beacon, preferred channel port hand",
	"Beacon, preferred channel starboard hand",
	"Beacon, isolated danger",
	"Beacon, safe water",
	"Beacon, special mark",
	"Cardinal mark N",
	"Cardinal mark E",
	"Cardinal mark S",
	"Cardinal mark W",
	"Port hand mark",
	"Starboard hand mark",
	"Preferred channel port hand",
	"Preferred channel starboard hand",
	"Isolated danger",
	"Safe water",
	"Special mark",
	"Light vessel / LANBY / rigs",
}

func lookup(table []string, i int) (string, bool) {
	if i < 0 || i >= len(table) {
		return "", false
	}
	return table[i], true
}
