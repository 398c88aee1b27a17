package config

import (
	"time"
)

type (
	NET struct {
		// ReadBufferSize is the size of a single read from the connection. The whole
		// response is accumulated, so this value affects only the number of syscalls.
		ReadBufferSize int
		// MaxResponseSize limits the total number of bytes read per response. Responses
		// exceeding it are rejected with errors.ErrResponseTooLarge.
		MaxResponseSize int
		// DialTimeout limits the time spent on establishing the connection, including
		// the TLS handshake.
		DialTimeout time.Duration
		// ReadTimeout is a deadline for the whole response to be received.
		ReadTimeout time.Duration
		// WriteTimeout is a deadline for the whole request to be transmitted.
		WriteTimeout time.Duration
	}

	Redirects struct {
		// Max is the maximal number of redirects followed in a row. Exceeding it
		// results in errors.ErrTooManyRedirects.
		Max int
	}

	Headers struct {
		// Default headers are included into every request implicitly, unless
		// explicitly overridden.
		Default map[string]string `test:"nullable"`
		// RequestID enables a unique identifier being attached to every request.
		RequestID bool `test:"nullable"`
		// RequestIDKey is the header carrying the identifier.
		RequestIDKey string
	}

	TLS struct {
		// InsecureSkipVerify disables server certificate verification. Use it for
		// testing purposes only.
		InsecureSkipVerify bool `test:"nullable"`
	}
)

// Config holds settings used across the client, mainly limits and timeouts.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET       NET
	Redirects Redirects
	Headers   Headers
	TLS       TLS
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:  1024,
			MaxResponseSize: 64 * 1024 * 1024, // 64 megabytes
			DialTimeout:     30 * time.Second,
			ReadTimeout:     90 * time.Second,
			WriteTimeout:    30 * time.Second,
		},
		Redirects: Redirects{
			Max: 10,
		},
		Headers: Headers{
			Default:      make(map[string]string),
			RequestIDKey: "X-Request-Id",
		},
	}
}
