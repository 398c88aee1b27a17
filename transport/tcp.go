package transport

import (
	"net"
	"time"

	"github.com/indigo-web/request/config"
	"github.com/indigo-web/request/errors"
)

var _ Dialer = new(TCP)

// TCP dials plain TCP connections.
type TCP struct {
	dialer                    net.Dialer
	readTimeout, writeTimeout time.Duration
}

func NewTCP(cfg config.NET) *TCP {
	return &TCP{
		dialer:       net.Dialer{Timeout: cfg.DialTimeout},
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (t *TCP) Dial(_, addr string) (Stream, error) {
	conn, err := t.dial(addr)
	if err != nil {
		return nil, err
	}

	return newClient(conn, t.readTimeout, t.writeTimeout), nil
}

func (t *TCP) dial(addr string) (net.Conn, error) {
	conn, err := t.dialer.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConnection, err)
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		// the request is written all at once, so there's nothing to coalesce
		_ = tcpConn.SetNoDelay(true)
	}

	return conn, nil
}
