package client

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/indigo-web/request/config"
	"github.com/indigo-web/request/errors"
	"github.com/indigo-web/request/http"
	"github.com/indigo-web/request/http/headers"
	"github.com/indigo-web/request/http/method"
	"github.com/indigo-web/request/http/mime"
	"github.com/indigo-web/request/http/url"
	"github.com/indigo-web/request/internal/protocol/http1"
	"github.com/indigo-web/request/transport"
	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

type (
	Request  = http.Request
	Response = http.Response
)

// Client sends requests, following redirects. Every request is done over its own connection,
// which is closed as soon as the response is read. The Client holds no per-request state,
// so a single instance may be used from multiple goroutines once configured.
type Client struct {
	cfg     *config.Config
	dialers map[url.Scheme]transport.Dialer
	logger  zerolog.Logger
	metrics *Metrics
}

// New returns a client dialing plain TCP connections for http and TLS ones for https.
// Nil config is replaced by config.Default().
func New(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Client{
		cfg: cfg,
		dialers: map[url.Scheme]transport.Dialer{
			url.HTTP:  transport.NewTCP(cfg.NET),
			url.HTTPS: transport.NewTLS(cfg.NET, cfg.TLS),
		},
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger receiving debug events about every hop. No logging is done
// by default.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.logger = logger
	return c
}

// WithMetrics enables metrics collection.
func (c *Client) WithMetrics(m *Metrics) *Client {
	c.metrics = m
	return c
}

// WithDialer replaces the dialer used for the scheme.
func (c *Client) WithDialer(scheme url.Scheme, dialer transport.Dialer) *Client {
	c.dialers[scheme] = dialer
	return c
}

// Do sends the request and returns the final response. Redirects are followed with the
// same method, headers and body, until a non-3xx response arrives or config.Redirects.Max
// is exceeded.
func (c *Client) Do(req Request) (Response, error) {
	if len(req.Method.String()) == 0 {
		return Response{}, errors.ErrUnknownMethod
	}

	target := req.URL
	for hops := 0; ; hops++ {
		resp, err := c.send(req.Method, target, req.Headers, req.Body)
		if err != nil {
			return Response{}, err
		}

		if !resp.IsRedirect() {
			return resp, nil
		}

		if hops >= c.cfg.Redirects.Max {
			c.metrics.failure(StageRedirect)
			return Response{}, errors.ErrTooManyRedirects
		}

		next, err := redirect(target, resp)
		if err != nil {
			c.metrics.failure(StageRedirect)
			return Response{}, err
		}

		c.logger.Debug().
			Int("code", int(resp.Code)).
			Str("from", target.String()).
			Str("to", next.String()).
			Msg("following redirect")
		c.metrics.redirect()
		target = next
	}
}

// Request parses the method and the URL, and sends the request.
func (c *Client) Request(meth, rawURL string, hdrs headers.Headers, body []byte) (Response, error) {
	m := method.Parse(meth)
	if m == method.Unknown {
		return Response{}, errors.Wrap(errors.ErrUnknownMethod, errQuoted(meth))
	}

	return c.request(m, rawURL, hdrs, body)
}

func (c *Client) Get(rawURL string, hdrs headers.Headers) (Response, error) {
	return c.request(method.GET, rawURL, hdrs, nil)
}

func (c *Client) Post(rawURL string, hdrs headers.Headers, body []byte) (Response, error) {
	return c.request(method.POST, rawURL, hdrs, body)
}

func (c *Client) Put(rawURL string, hdrs headers.Headers, body []byte) (Response, error) {
	return c.request(method.PUT, rawURL, hdrs, body)
}

func (c *Client) Delete(rawURL string, hdrs headers.Headers) (Response, error) {
	return c.request(method.DELETE, rawURL, hdrs, nil)
}

func (c *Client) Options(rawURL string, hdrs headers.Headers) (Response, error) {
	return c.request(method.OPTIONS, rawURL, hdrs, nil)
}

func (c *Client) Head(rawURL string, hdrs headers.Headers) (Response, error) {
	return c.request(method.HEAD, rawURL, hdrs, nil)
}

// PostJSON marshals the model and sends it with the JSON content type.
func (c *Client) PostJSON(rawURL string, hdrs headers.Headers, model any) (Response, error) {
	return c.requestJSON(method.POST, rawURL, hdrs, model)
}

// PutJSON marshals the model and sends it with the JSON content type.
func (c *Client) PutJSON(rawURL string, hdrs headers.Headers, model any) (Response, error) {
	return c.requestJSON(method.PUT, rawURL, hdrs, model)
}

func (c *Client) requestJSON(m method.Method, rawURL string, hdrs headers.Headers, model any) (Response, error) {
	body, err := json.ConfigDefault.Marshal(model)
	if err != nil {
		return Response{}, err
	}

	hdrs = hdrs.Clone().
		Delete(headers.ContentType).
		Set(headers.ContentType, mime.JSON)

	return c.request(m, rawURL, hdrs, body)
}

func (c *Client) request(m method.Method, rawURL string, hdrs headers.Headers, body []byte) (Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Response{}, err
	}

	return c.Do(Request{
		Method:  m,
		URL:     u,
		Headers: hdrs,
		Body:    body,
	})
}

// send does a single hop: connects, writes the request and reads the response.
func (c *Client) send(m method.Method, u url.URL, hdrs headers.Headers, body []byte) (Response, error) {
	dialer, found := c.dialers[u.Scheme]
	if !found {
		return Response{}, errors.Wrap(errors.ErrUnsupportedScheme, errQuoted(u.Scheme.String()))
	}

	start := time.Now()

	stream, err := dialer.Dial(u.Host, u.Addr())
	if err != nil {
		c.metrics.failure(StageConnect)
		if !errors.Is(err, errors.ErrConnection) && !errors.Is(err, errors.ErrTLS) {
			err = errors.Wrap(errors.ErrConnection, err)
		}

		return Response{}, err
	}

	defer func() {
		_ = stream.Close()
	}()

	request := http1.Serialize(m, u, c.prepare(hdrs, body), body)
	if _, err = stream.Write(request); err != nil {
		c.metrics.failure(StageSend)
		return Response{}, errors.Wrap(errors.ErrIO, err)
	}

	raw, err := http1.ReadAll(stream, c.cfg.NET.ReadBufferSize, c.cfg.NET.MaxResponseSize)
	if err != nil {
		c.metrics.failure(StageReceive)
		return Response{}, errors.Wrap(errors.ErrProtocol, err)
	}

	resp, err := http1.Parse(raw)
	if err != nil {
		c.metrics.failure(StageReceive)
		return Response{}, errors.Wrap(errors.ErrProtocol, err)
	}

	c.metrics.response(m, resp.Code, time.Since(start))
	c.logger.Debug().
		Str("method", m.String()).
		Str("url", u.String()).
		Int("code", int(resp.Code)).
		Int("size", len(raw)).
		Msg("request done")

	return resp, nil
}

// prepare builds the headers actually sent. The caller's map is never modified.
func (c *Client) prepare(hdrs headers.Headers, body []byte) headers.Headers {
	prepared := headers.FromMap(c.cfg.Headers.Default)
	for key, value := range hdrs.Iter() {
		prepared.Delete(key).Set(key, value)
	}

	prepared.
		Delete(headers.ContentLength).
		Set(headers.ContentLength, strconv.Itoa(len(body)))

	// the response is read until the server closes the connection, so it must know to do so
	if _, found := prepared.Lookup(headers.Connection); !found {
		prepared.Set(headers.Connection, "close")
	}

	if c.cfg.Headers.RequestID {
		if _, found := prepared.Lookup(c.cfg.Headers.RequestIDKey); !found {
			prepared.Set(c.cfg.Headers.RequestIDKey, uuid.NewString())
		}
	}

	return prepared
}

type errQuoted string

func (e errQuoted) Error() string {
	return strconv.Quote(string(e))
}
