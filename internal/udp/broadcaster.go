// Package udp re-broadcasts accepted NMEA sentences to a UDP listener,
// the usual way marine multiplexers hand a feed to chart plotters.
package udp

import (
	"fmt"
	"net"
)

type Forwarder struct {
	dest string
	conn *net.UDPConn
}

func NewForwarder(dest string) (*Forwarder, error) {
	addr, err := net.ResolveUDPAddr("udp", dest)
	if err != nil {
		return nil, fmt.Errorf("resolve dest: %w", err)
	}

	// DialUDP selects a suitable local address automatically.
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial udp: %w", err)
	}

	return &Forwarder{dest: dest, conn: conn}, nil
}

// Send transmits one NMEA line, terminating it with CRLF as receivers
// expect.
func (f *Forwarder) Send(line []byte) error {
	if len(line) == 0 {
		return nil
	}
	out := make([]byte, 0, len(line)+2)
	out = append(out, line...)
	if out[len(out)-1] != '\n' {
		out = append(out, '\r', '\n')
	}
	_, err := f.conn.Write(out)
	return err
}

func (f *Forwarder) Close() error {
	if f.conn == nil {
		return nil
	}
	return f.conn.Close()
}
