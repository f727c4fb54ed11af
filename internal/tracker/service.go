package tracker

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"shipwatch/internal/nmea"
)

// Service owns a TCP feed and drives a Watcher with it. The endpoint
// can be swapped at runtime; swapping disconnects and reconnects.
type Service struct {
	watcher *Watcher
	cfg     nmea.ClientConfig
	onLine  func(line []byte)

	mu     sync.Mutex
	ctx    context.Context
	client *nmea.Client
}

// NewService wires a watcher to a TCP source. onLine, when non-nil,
// observes every accepted line (e.g. for UDP re-broadcast) before the
// watcher consumes it.
func NewService(w *Watcher, cfg nmea.ClientConfig, onLine func(line []byte)) *Service {
	return &Service{watcher: w, cfg: cfg, onLine: onLine}
}

// Run starts consuming and blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	err := s.startLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	<-ctx.Done()

	s.mu.Lock()
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
	s.mu.Unlock()
	return ctx.Err()
}

// SetSource replaces the feed endpoint, disconnecting the old one.
func (s *Service) SetSource(host string, port int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	if s.ctx == nil {
		// Not running yet; Run will pick up the new address.
		return nil
	}
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
	return s.startLocked()
}

// Snapshot reports the feed state.
func (s *Service) Snapshot() nmea.ClientSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.Snapshot()
}

func (s *Service) startLocked() error {
	client, err := nmea.NewClient(s.cfg)
	if err != nil {
		return fmt.Errorf("nmea client: %w", err)
	}
	if err := client.Start(s.ctx, s.handleLine); err != nil {
		return fmt.Errorf("nmea start: %w", err)
	}
	s.client = client
	return nil
}

func (s *Service) handleLine(line []byte) {
	if s.onLine != nil {
		s.onLine(line)
	}
	s.watcher.HandleLine(line)
}
