package http1

import (
	"io"
	"strings"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/request/http/headers"
)

// decodeBody picks the way the body must be interpreted:
//   - Transfer-Encoding: chunked bodies are decoded by their length-prefixed framing.
//     Should the framing be broken, the heuristic is used instead;
//   - bodies with a Content-Length are taken verbatim;
//   - everything else goes through the heuristic.
func decodeBody(hdrs headers.Headers, body string) string {
	if te, found := hdrs.Lookup(headers.TransferEncoding); found && isChunked(te) {
		_, trailer := hdrs.Lookup("Trailer")
		if decoded, err := dechunkFramed(body, trailer); err == nil {
			return decoded
		}

		return dechunkHeuristic(body)
	}

	if _, found := hdrs.Lookup(headers.ContentLength); found {
		return body
	}

	return dechunkHeuristic(body)
}

// dechunkHeuristic approximates the chunked transfer encoding without looking at
// chunk lengths at all: the body is split by CRLF, odd pieces are considered length
// lines (or the terminator) and dropped, even ones are the data and kept. A body
// without any CRLF is returned as is.
//
// This is how bodies of unknown framing were always treated, so the behaviour is
// kept for compatibility. Note that it mangles any plain body which contains CRLF.
func dechunkHeuristic(body string) string {
	pieces := strings.Split(body, crlf)
	if len(pieces) == 1 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	for i := 1; i < len(pieces); i += 2 {
		b.WriteString(pieces[i])
	}

	return b.String()
}

// dechunkFramed decodes the body precisely, following chunk lengths, extensions and
// trailers. The body must be complete, including the terminating zero-length chunk.
func dechunkFramed(body string, trailer bool) (string, error) {
	var (
		parser  = chunkedbody.NewParser(chunkedbody.DefaultSettings())
		data    = []byte(body)
		decoded []byte
	)

	for len(data) > 0 {
		chunk, extra, err := parser.Parse(data, trailer)
		decoded = append(decoded, chunk...)

		switch err {
		case nil:
		case io.EOF:
			return string(decoded), nil
		default:
			return "", err
		}

		data = extra
	}

	return "", io.ErrUnexpectedEOF
}

func isChunked(te string) bool {
	for _, token := range strings.Split(te, ",") {
		if strings.EqualFold(strings.TrimSpace(token), "chunked") {
			return true
		}
	}

	return false
}
