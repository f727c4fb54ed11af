package ais

// Package ais decodes AIVDM payloads (ITU-R M.1371) into typed messages.
//
// A payload arrives as six-bit armoured ASCII; fields are bit-packed with
// no byte alignment. Supported message types:
//   - 1/2/3: Class A position report (common navigation block)
//   - 5:     static and voyage related data
//   - 18:    Class B position report
//   - 21:    aid to navigation
//   - 24:    static data report, parts A and B
//
// Well-known "not available" wire values (course 360.0, speed 102.3,
// timestamp >= 60, heading 511, lat 91 deg, lon 181 deg) are stored as
// decoded and masked by the accessor methods.
