package http

import (
	"github.com/indigo-web/request/http/headers"
	"github.com/indigo-web/request/http/method"
	"github.com/indigo-web/request/http/url"
)

// Request is a single request to be sent. It is constructed per call and never shared
// among them.
type Request struct {
	Method  method.Method
	URL     url.URL
	Headers headers.Headers
	Body    []byte
}

// NewRequest returns a request with empty headers and no body.
func NewRequest(m method.Method, u url.URL) *Request {
	return &Request{
		Method:  m,
		URL:     u,
		Headers: headers.New(),
	}
}

// Header sets a header, overriding the previous value, if any.
func (r *Request) Header(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = headers.New()
	}

	r.Headers.Set(key, value)
	return r
}

// WithBody sets the body. The slice isn't copied.
func (r *Request) WithBody(body []byte) *Request {
	r.Body = body
	return r
}

// String sets the body as a string.
func (r *Request) String(body string) *Request {
	return r.WithBody([]byte(body))
}
