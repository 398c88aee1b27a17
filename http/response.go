package http

import (
	"github.com/indigo-web/request/errors"
	"github.com/indigo-web/request/http/headers"
	"github.com/indigo-web/request/http/mime"
	"github.com/indigo-web/request/http/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Response is a parsed server reply. It's built once out of the raw bytes and must be
// treated as read-only afterward.
type Response struct {
	// Protocol is the version token as it appeared in the status line, e.g. "HTTP/1.1".
	Protocol string
	// Code is 0 if the status line couldn't be parsed. This is never a real status
	// code and must be treated as unknown.
	Code status.Code
	// Status is the reason phrase. It's taken from the status line when presented,
	// otherwise it's the canonical one for the Code.
	Status  status.Status
	Headers headers.Headers
	Body    string
}

// IsRedirect reports whether the response is a 3xx one.
func (r Response) IsRedirect() bool {
	return r.Code.IsRedirect()
}

// Location returns the redirect target. Header names match case-insensitively,
// as servers sometimes send it lowercased.
func (r Response) Location() (string, bool) {
	return r.Headers.Lookup(headers.Location)
}

// ContentType returns the Content-Type header value, if any.
func (r Response) ContentType() string {
	value, _ := r.Headers.Lookup(headers.ContentType)
	return value
}

// JSON unmarshalls the body into the model. It fails with errors.ErrUnsupportedMediaType
// if the response explicitly declares a Content-Type other than JSON.
func (r Response) JSON(model any) error {
	if !mime.Complies(mime.JSON, r.ContentType()) {
		return errors.ErrUnsupportedMediaType
	}

	iterator := json.ConfigDefault.BorrowIterator(uf.S2B(r.Body))
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
