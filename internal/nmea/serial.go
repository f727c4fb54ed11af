package nmea

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

type SerialConfig struct {
	Device       string
	Baud         int
	MaxLineBytes int
}

// SerialSource reads NMEA sentences from a serial port, the usual
// hookup for an onboard AIS receiver or multiplexer.
type SerialSource struct {
	cfg  SerialConfig
	port serial.Port
}

func OpenSerial(cfg SerialConfig) (*SerialSource, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("serial device is required")
	}
	if cfg.Baud <= 0 {
		cfg.Baud = 38400
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = 1024
	}
	port, err := serial.Open(cfg.Device, &serial.Mode{BaudRate: cfg.Baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	return &SerialSource{cfg: cfg, port: port}, nil
}

// Run reads lines until ctx is cancelled or the port fails. EOF is a
// lull, not an error; the reader waits for more bytes.
func (s *SerialSource) Run(ctx context.Context, onLine func(line []byte)) error {
	reader := bufio.NewReader(s.port)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			return fmt.Errorf("serial read: %w", err)
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 || len(line) > s.cfg.MaxLineBytes {
			continue
		}
		if line[0] != '$' && line[0] != '!' {
			continue
		}
		onLine(append([]byte(nil), line...))
	}
}

func (s *SerialSource) Close() error {
	return s.port.Close()
}
