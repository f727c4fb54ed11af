// Package web serves shipwatch status and the vessel table as JSON,
// for dashboards and quick curl checks.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"shipwatch/internal/nmea"
	"shipwatch/internal/tracker"
)

type Server struct {
	api  *api
	http *http.Server
}

// api holds the narrow tracker surface the handlers need.
type api struct {
	watcher *tracker.Watcher
	// feed reports the upstream state; nil when running from the
	// simulator.
	feed func() nmea.ClientSnapshot

	start     time.Time
	linesSeen atomic.Uint64
}

func NewServer(listen string, w *tracker.Watcher, feed func() nmea.ClientSnapshot) *Server {
	a := &api{watcher: w, feed: feed, start: time.Now().UTC()}

	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	mux.HandleFunc("/vessels", a.handleVessels)

	return &Server{
		api: a,
		http: &http.Server{
			Addr:              listen,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// CountLine lets the feed wiring bump the line counter shown in /status.
func (s *Server) CountLine() {
	s.api.linesSeen.Add(1)
}

func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

type statusResponse struct {
	Service   string               `json:"service"`
	NowUTC    string               `json:"now_utc"`
	UptimeSec int64                `json:"uptime_sec"`
	Lines     uint64               `json:"lines"`
	Ownship   *ownshipView         `json:"ownship,omitempty"`
	Feed      *nmea.ClientSnapshot `json:"feed,omitempty"`
}

type ownshipView struct {
	LatDeg    float64 `json:"lat_deg"`
	LonDeg    float64 `json:"lon_deg"`
	CourseDeg float64 `json:"course_deg"`
	SOGKt     float64 `json:"sog_kt"`
}

func (a *api) handleStatus(rw http.ResponseWriter, _ *http.Request) {
	now := time.Now().UTC()
	resp := statusResponse{
		Service:   "shipwatch",
		NowUTC:    now.Format(time.RFC3339Nano),
		UptimeSec: int64(now.Sub(a.start).Seconds()),
		Lines:     a.linesSeen.Load(),
	}
	if us, ok := a.watcher.Ownship(); ok {
		resp.Ownship = &ownshipView{
			LatDeg:    us.LatDeg,
			LonDeg:    us.LonDeg,
			CourseDeg: us.CourseDeg,
			SOGKt:     us.SpeedKt,
		}
	}
	if a.feed != nil {
		snap := a.feed()
		resp.Feed = &snap
	}
	writeJSON(rw, resp)
}

func (a *api) handleVessels(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, a.watcher.Vessels(time.Now().UTC()))
}

func writeJSON(rw http.ResponseWriter, v any) {
	rw.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(rw)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
