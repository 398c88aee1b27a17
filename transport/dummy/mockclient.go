package dummy

import (
	"io"
	"sync"

	"github.com/indigo-web/request/transport"
)

var _ transport.Stream = new(Client)

// Client returns the data it was initialised with, piece by piece, and then io.EOF. A read
// into a buffer smaller than the current piece returns the rest on the next read. It also
// tracks all the written data, making it thereby a universal mock suitable for most of the tests.
type Client struct {
	closed     bool
	journaling bool
	readErr    error
	writeErr   error
	written    []byte
	data       [][]byte
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		journaling: true,
	}
}

// NewMockClientString does the same as NewMockClient, just with strings.
func NewMockClientString(data ...string) *Client {
	pieces := make([][]byte, len(data))
	for i, piece := range data {
		pieces[i] = []byte(piece)
	}

	return NewMockClient(pieces...)
}

func (c *Client) Read(b []byte) (n int, err error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}

	if len(c.data) == 0 {
		if c.readErr != nil {
			return 0, c.readErr
		}

		return 0, io.EOF
	}

	n = copy(b, c.data[0])
	if c.data[0] = c.data[0][n:]; len(c.data[0]) == 0 {
		c.data = c.data[1:]
	}

	return n, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.closed {
		return 0, io.ErrClosedPipe
	}

	if c.writeErr != nil {
		return 0, c.writeErr
	}

	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether the client was closed.
func (c *Client) Closed() bool {
	return c.closed
}

// ReadError makes the client fail with the error once the data is exhausted instead
// of returning io.EOF.
func (c *Client) ReadError(err error) *Client {
	c.readErr = err
	return c
}

// WriteError makes every write fail with the error.
func (c *Client) WriteError(err error) *Client {
	c.writeErr = err
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}

var _ transport.Dialer = new(Dialer)

// Dialer hands out mock clients registered per address, in the order they were added.
// Dialing an address with no clients left fails with the configured error.
type Dialer struct {
	mu      sync.Mutex
	clients map[string][]*Client
	dialed  []string
	hosts   []string
	err     error
}

func NewDialer() *Dialer {
	return &Dialer{
		clients: make(map[string][]*Client),
		err:     io.ErrUnexpectedEOF,
	}
}

// Add registers the client to be returned on a dial of the address.
func (d *Dialer) Add(addr string, client *Client) *Dialer {
	d.mu.Lock()
	d.clients[addr] = append(d.clients[addr], client)
	d.mu.Unlock()

	return d
}

// Respond registers a client replying with the raw response.
func (d *Dialer) Respond(addr, response string) *Client {
	client := NewMockClientString(response)
	d.Add(addr, client)

	return client
}

// Error sets the error returned when there's nothing to hand out.
func (d *Dialer) Error(err error) *Dialer {
	d.err = err
	return d
}

func (d *Dialer) Dial(host, addr string) (transport.Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dialed = append(d.dialed, addr)
	d.hosts = append(d.hosts, host)

	queue := d.clients[addr]
	if len(queue) == 0 {
		return nil, d.err
	}

	d.clients[addr] = queue[1:]

	return queue[0], nil
}

// Dialed returns every dialed address, in order.
func (d *Dialer) Dialed() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.dialed...)
}

// Hosts returns the host passed along with every dial, in order.
func (d *Dialer) Hosts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.hosts...)
}
