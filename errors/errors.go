package errors

import (
	"errors"
)

// URL stage.
var (
	ErrUnsupportedScheme = errors.New("scheme is not supported")
	ErrInvalidHost       = errors.New("URL has no host")
	ErrMalformedURL      = errors.New("malformed URL")
)

// Transport stage.
var (
	ErrConnection = errors.New("cannot connect")
	ErrTLS        = errors.New("TLS handshake failed")
)

// Reading stage.
var (
	ErrEncoding         = errors.New("response is not valid UTF-8")
	ErrIO               = errors.New("I/O failure")
	ErrResponseTooLarge = errors.New("response is too large")
)

// Parsing and redirect stage.
var (
	ErrProtocol         = errors.New("protocol error")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrInvalidRedirect  = errors.New("redirect without Location")
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrUnknownMethod    = errors.New("request method is not supported")
)

// Body decoding stage.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// Wrap attaches the cause to the sentinel, so that errors.Is matches both of them.
func Wrap(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}

	return &wrapped{sentinel: sentinel, cause: cause}
}

type wrapped struct {
	sentinel, cause error
}

func (w *wrapped) Error() string {
	return w.sentinel.Error() + ": " + w.cause.Error()
}

func (w *wrapped) Unwrap() []error {
	return []error{w.sentinel, w.cause}
}

// Is reports whether any error in err's tree matches target. It's here so that
// callers don't have to import both this package and the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is the same as the standard errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
