package transport

import (
	"io"
	"net"
	"time"
)

// Stream is a bidirectional byte stream. This is all the client needs from a connection,
// no matter whether it's a plain TCP one or a TLS session.
type Stream interface {
	io.ReadWriteCloser
}

// Dialer establishes connections. Implementations are expected to be safe for concurrent use.
type Dialer interface {
	// Dial connects to the address in the host:port form. The host is passed separately
	// as it may be required by the transport, e.g. for TLS server name indication.
	Dial(host, addr string) (Stream, error)
}

var _ Stream = new(client)

// client wraps a connection, applying deadlines to every operation.
type client struct {
	conn                      net.Conn
	readTimeout, writeTimeout time.Duration
	// readDeadline is set once on the first read, so the timeout covers the whole
	// response rather than every single read.
	readDeadline time.Time
}

func newClient(conn net.Conn, readTimeout, writeTimeout time.Duration) *client {
	return &client{
		conn:         conn,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Read reads data from the underlying connection.
func (c *client) Read(b []byte) (int, error) {
	if c.readDeadline.IsZero() && c.readTimeout > 0 {
		c.readDeadline = time.Now().Add(c.readTimeout)
		if err := c.conn.SetReadDeadline(c.readDeadline); err != nil {
			return 0, err
		}
	}

	return c.conn.Read(b)
}

// Write writes data into the underlying connection.
func (c *client) Write(b []byte) (int, error) {
	if c.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return 0, err
		}
	}

	return c.conn.Write(b)
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}
