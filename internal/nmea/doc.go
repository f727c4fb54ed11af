package nmea

// Package nmea frames and parses NMEA 0183 sentences from a marine
// feed and provides reconnecting TCP and serial line sources.
//
// Only the records shipwatch consumes are parsed into types:
//   - RMC: own-ship position, speed and track
//   - VTG: track and speed (accepted, unused downstream)
//   - VDM/VDO: armoured AIS payload fragments
