package nmea

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

type ClientConfig struct {
	Addr string

	// ReconnectDelay is the base backoff step; failed connects back
	// off linearly from it up to reconnectMax, and any received line
	// resets the ladder.
	ReconnectDelay time.Duration
	MaxLineBytes   int

	// DialTimeout bounds each TCP connect attempt, reconnects included.
	DialTimeout time.Duration
}

const reconnectMax = 30 * time.Second

// FeedState describes where the client is in its connect cycle.
type FeedState int32

const (
	FeedIdle FeedState = iota
	FeedConnecting
	FeedConnected
	FeedBackoff
)

func (s FeedState) String() string {
	switch s {
	case FeedConnecting:
		return "connecting"
	case FeedConnected:
		return "connected"
	case FeedBackoff:
		return "backoff"
	default:
		return "idle"
	}
}

// Client pulls newline-delimited NMEA sentences from a TCP feed. A
// session that joins mid-sentence resyncs on the next '$'/'!'
// delimiter; anything without a delimiter is counted and dropped.
type Client struct {
	cfg ClientConfig

	started atomic.Bool
	closed  atomic.Bool

	state    atomic.Int32
	lines    atomic.Uint64
	dropped  atomic.Uint64
	lastSeen atomic.Int64 // unix nanos, 0 = never
	lastErr  atomic.Value // string

	cancel context.CancelFunc
	done   chan struct{}
}

type ClientSnapshot struct {
	Addr        string `json:"addr"`
	State       string `json:"state"`
	LastError   string `json:"last_error,omitempty"`
	LastSeenUTC string `json:"last_seen_utc,omitempty"`
	Lines       uint64 `json:"lines"`
	Dropped     uint64 `json:"dropped"`
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("nmea client addr is required")
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 1 * time.Second
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = 1024
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 2 * time.Second
	}
	c := &Client{cfg: cfg, done: make(chan struct{})}
	c.lastErr.Store("")
	return c, nil
}

// Start begins reading in the background until ctx is cancelled or
// Close is called. onLine receives a copy of each framed sentence and
// should be fast; if it can block, it should offload work.
func (c *Client) Start(ctx context.Context, onLine func(line []byte)) error {
	if c == nil {
		return fmt.Errorf("nmea client is nil")
	}
	if c.closed.Load() {
		return fmt.Errorf("nmea client is closed")
	}
	if onLine == nil {
		return fmt.Errorf("nmea onLine is nil")
	}
	if c.started.Swap(true) {
		return fmt.Errorf("nmea client already started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	go func() {
		defer close(c.done)
		c.run(runCtx, onLine)
	}()
	return nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.closed.Swap(true) {
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	if c.started.Load() {
		<-c.done
	}
}

func (c *Client) Snapshot() ClientSnapshot {
	if c == nil {
		return ClientSnapshot{}
	}
	out := ClientSnapshot{
		Addr:    c.cfg.Addr,
		State:   FeedState(c.state.Load()).String(),
		Lines:   c.lines.Load(),
		Dropped: c.dropped.Load(),
	}
	if s, _ := c.lastErr.Load().(string); s != "" {
		out.LastError = s
	}
	if ns := c.lastSeen.Load(); ns != 0 {
		out.LastSeenUTC = time.Unix(0, ns).UTC().Format(time.RFC3339Nano)
	}
	return out
}

// run cycles connect → read → back off. The backoff ladder grows one
// ReconnectDelay step per consecutive dead session and is forgiven as
// soon as a session delivers data.
func (c *Client) run(ctx context.Context, onLine func(line []byte)) {
	defer c.state.Store(int32(FeedIdle))

	failures := 0
	for ctx.Err() == nil {
		c.state.Store(int32(FeedConnecting))
		delivered, err := c.session(ctx, onLine)
		if delivered > 0 {
			failures = 0
		} else {
			failures++
		}
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.lastErr.Store(err.Error())
		}

		c.state.Store(int32(FeedBackoff))
		wait := time.Duration(failures) * c.cfg.ReconnectDelay
		if wait < c.cfg.ReconnectDelay {
			wait = c.cfg.ReconnectDelay
		}
		if wait > reconnectMax {
			wait = reconnectMax
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

// session owns one TCP connection and reads it to exhaustion,
// reporting how many sentences it delivered.
func (c *Client) session(ctx context.Context, onLine func(line []byte)) (uint64, error) {
	dialer := net.Dialer{Timeout: c.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.cfg.Addr)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	// Unblock the read below when the context goes away.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	c.state.Store(int32(FeedConnected))
	c.lastErr.Store("")

	var delivered uint64
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 4096), c.cfg.MaxLineBytes)
	for sc.Scan() {
		sentence, ok := frameSentence(sc.Bytes())
		if !ok {
			c.dropped.Add(1)
			continue
		}
		onLine(sentence)
		delivered++
		c.lines.Add(1)
		c.lastSeen.Store(time.Now().UnixNano())
	}
	return delivered, sc.Err()
}

// frameSentence finds the sentence delimiter inside a raw line and
// returns a trimmed copy from there. Feeds joined mid-sentence emit a
// torn first line; resyncing on the delimiter salvages sentences that
// share a line with leading junk.
func frameSentence(raw []byte) ([]byte, bool) {
	start := bytes.IndexAny(raw, "$!")
	if start < 0 {
		return nil, false
	}
	sentence := bytes.TrimSpace(raw[start:])
	if len(sentence) == 0 {
		return nil, false
	}
	return append([]byte(nil), sentence...), true
}
