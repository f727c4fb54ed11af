package tracker

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"shipwatch/internal/ais"
	"shipwatch/internal/geo"
	"shipwatch/internal/nmea"
)

// maxPayloadChars bounds the reassembly buffer; a chain growing past
// this is a corrupt feed, not a real message.
const maxPayloadChars = 8 * 1024

type Config struct {
	Store StoreConfig
	// NameTTL ages out the vessel-name index.
	NameTTL time.Duration
	Logger  *log.Logger
}

// Watcher consumes a demultiplexed stream of NMEA records, maintains
// the own-vessel PCS and the per-vessel message index, and reports
// navigation events through the We/They callbacks.
//
// All Handle* methods must be called from a single goroutine (the
// transport's read loop). The accessors are safe from any goroutine.
type Watcher struct {
	// We is called with our own position/course/speed on every RMC.
	We func(us geo.PCS)
	// They is called once per decoded position-bearing message, with
	// our PCS, the target's PCS and the target MMSI. Not called until
	// an RMC has established our own position, nor for a Class A/B
	// report whose position or course over ground is not available.
	They func(us, them geo.PCS, mmsi uint32)
	// NameHook runs before the name index is updated, for callers
	// that persist names elsewhere.
	NameHook func(mmsi uint32, shipname string)

	logger *log.Logger
	store  *Store
	names  *nameIndex

	mu    sync.RWMutex
	us    geo.PCS
	hasUs bool

	// VDM reassembly state, touched only on the event goroutine.
	payload   []byte
	lastMsgID string
	hasMsgID  bool
}

func New(cfg Config) *Watcher {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	ttl := cfg.NameTTL
	if ttl <= 0 {
		ttl = cfg.Store.TTL
	}
	return &Watcher{
		logger: logger,
		store:  NewStore(cfg.Store),
		names:  newNameIndex(ttl),
	}
}

// HandleLine parses one raw sentence and routes it. Malformed input is
// logged at debug level and dropped; nothing propagates to the caller.
func (w *Watcher) HandleLine(line []byte) {
	s, err := nmea.Parse(string(line))
	if err != nil {
		w.logger.Debug("bad sentence", "err", err)
		return
	}
	w.HandleSentence(s)
}

// HandleSentence routes a parsed sentence.
func (w *Watcher) HandleSentence(s nmea.Sentence) {
	switch s.Type {
	case "RMC":
		if rmc, ok := nmea.ParseRMC(s); ok {
			w.HandleRMC(rmc)
		}
	case "VDM", "VDO":
		vdm, err := nmea.ParseVDM(s)
		if err != nil {
			w.logger.Debug("bad vdm", "err", err)
			return
		}
		w.HandleVDM(vdm)
	case "VTG":
		// Accepted, unused. Reserved for receivers that never emit RMC.
	}
}

// HandleRMC replaces our own PCS and fires We.
func (w *Watcher) HandleRMC(r nmea.RMC) {
	track := 0.0
	if r.HasTrack {
		track = r.TrackDeg
	}
	us := geo.New(r.LatDeg, r.LonDeg, track, r.SOGKt)

	w.mu.Lock()
	w.us = us
	w.hasUs = true
	w.mu.Unlock()

	if w.We != nil {
		w.We(us)
	}
}

// HandleVDM accumulates fragments and dispatches completed payloads.
func (w *Watcher) HandleVDM(v nmea.VDM) {
	if v.Fragment < v.Fragments {
		if w.hasMsgID && w.lastMsgID != v.MsgID {
			// Fragment from another chain. Feeds interleave chains
			// when receivers share a channel; drop the stray and
			// keep accumulating rather than losing the buffer.
			w.logger.Debug("out-of-sequence fragment", "want", w.lastMsgID, "got", v.MsgID)
			return
		}
		if !w.hasMsgID {
			w.lastMsgID = v.MsgID
			w.hasMsgID = true
		}
		w.payload = append(w.payload, v.Payload...)
		if len(w.payload) > maxPayloadChars {
			w.logger.Warn("reassembly buffer overflow, resetting", "len", len(w.payload))
			w.resetReassembly()
		}
		return
	}

	w.payload = append(w.payload, v.Payload...)
	payload := string(w.payload)
	w.resetReassembly()

	m, err := ais.Decode(ais.NewPayload(payload, v.Pad))
	if err != nil {
		w.logger.Debug("undecodable payload", "err", err, "len", len(payload))
		return
	}
	w.dispatch(m)
}

func (w *Watcher) resetReassembly() {
	w.payload = w.payload[:0]
	w.lastMsgID = ""
	w.hasMsgID = false
}

func (w *Watcher) dispatch(m ais.Message) {
	now := time.Now().UTC()

	switch msg := m.(type) {
	case *ais.StaticVoyage:
		w.setName(msg.UserID, msg.Shipname)
		w.store.Put(now, msg)

	case *ais.StaticReportA:
		w.setName(msg.UserID, msg.Shipname)
		w.store.Put(now, msg)

	case *ais.StaticReportB:
		w.store.Put(now, msg)

	case *ais.PositionReport:
		w.store.Put(now, msg)
		if course, ok := msg.Course(); ok {
			if lat, latOK := msg.LatDeg(); latOK {
				if lon, lonOK := msg.LonDeg(); lonOK {
					sog, _ := msg.SOG()
					w.sighting(geo.New(lat, lon, course, sog), msg.UserID)
				}
			}
		}

	case *ais.ClassBPosition:
		w.store.Put(now, msg)
		if course, ok := msg.Course(); ok {
			if lat, latOK := msg.LatDeg(); latOK {
				if lon, lonOK := msg.LonDeg(); lonOK {
					sog, _ := msg.SOG()
					w.sighting(geo.New(lat, lon, course, sog), msg.UserID)
				}
			}
		}

	case *ais.AidToNavigation:
		w.setName(msg.UserID, msg.Name)
		w.store.Put(now, msg)
		if lat, latOK := msg.LatDeg(); latOK {
			if lon, lonOK := msg.LonDeg(); lonOK {
				// Aids to navigation don't move.
				w.sighting(geo.New(lat, lon, 0, 0), msg.UserID)
			}
		}
	}
}

func (w *Watcher) sighting(them geo.PCS, mmsi uint32) {
	w.mu.RLock()
	us := w.us
	hasUs := w.hasUs
	w.mu.RUnlock()

	if !hasUs || w.They == nil {
		return
	}
	w.They(us, them, mmsi)
}

func (w *Watcher) setName(mmsi uint32, shipname string) {
	if shipname == "" {
		return
	}
	if w.NameHook != nil {
		w.NameHook(mmsi, shipname)
	}
	w.names.Set(mmsi, shipname)
}

// Name returns the last shipname heard for an MMSI.
func (w *Watcher) Name(mmsi uint32) (string, bool) {
	return w.names.Get(mmsi)
}

// Latest returns the most recent message of one kind for an MMSI.
func (w *Watcher) Latest(mmsi uint32, key ais.Key) (ais.Message, bool) {
	return w.store.Latest(mmsi, key)
}

// LatestAll returns a copy of the latest message per kind for an MMSI.
func (w *Watcher) LatestAll(mmsi uint32) map[ais.Key]ais.Message {
	return w.store.LatestAll(mmsi)
}

// Ownship returns our own PCS; ok is false before the first RMC.
func (w *Watcher) Ownship() (geo.PCS, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.us, w.hasUs
}
