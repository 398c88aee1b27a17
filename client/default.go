package client

import (
	"github.com/indigo-web/request/http/headers"
)

var std = New(nil)

// Default returns the client used by the package-level functions.
func Default() *Client {
	return std
}

func Get(rawURL string, hdrs headers.Headers) (Response, error) {
	return std.Get(rawURL, hdrs)
}

func Post(rawURL string, hdrs headers.Headers, body []byte) (Response, error) {
	return std.Post(rawURL, hdrs, body)
}

func Put(rawURL string, hdrs headers.Headers, body []byte) (Response, error) {
	return std.Put(rawURL, hdrs, body)
}

func Delete(rawURL string, hdrs headers.Headers) (Response, error) {
	return std.Delete(rawURL, hdrs)
}

func Options(rawURL string, hdrs headers.Headers) (Response, error) {
	return std.Options(rawURL, hdrs)
}

func Head(rawURL string, hdrs headers.Headers) (Response, error) {
	return std.Head(rawURL, hdrs)
}
