package http1

import (
	"strconv"
	"strings"

	"github.com/indigo-web/request/errors"
	"github.com/indigo-web/request/http"
	"github.com/indigo-web/request/http/headers"
	"github.com/indigo-web/request/http/status"
)

const headersTerminator = "\r\n\r\n"

// Parse parses the whole raw response. The grammar is best-effort on header lines and
// strict on the framing: a response lacking the blank line after the header section
// is rejected with errors.ErrInvalidResponse, whereas malformed header lines are
// silently skipped.
//
// Parse doesn't retain nor modify any state, so the same input always results in the
// same output.
func Parse(raw string) (http.Response, error) {
	head, body, found := strings.Cut(raw, headersTerminator)
	if !found {
		return http.Response{}, errors.ErrInvalidResponse
	}

	statusLine, fields, _ := strings.Cut(head, crlf)
	resp := http.Response{Headers: headers.New()}
	parseStatusLine(&resp, statusLine)
	parseHeaders(resp.Headers, fields)
	resp.Body = decodeBody(resp.Headers, body)

	return resp, nil
}

// parseStatusLine splits the line by single spaces. Lines with less than 2 tokens are
// ignored altogether, leaving the response with zero values.
func parseStatusLine(resp *http.Response, line string) {
	tokens := strings.Split(line, " ")
	if len(tokens) < 2 {
		return
	}

	resp.Protocol = tokens[0]
	if code, err := strconv.ParseUint(tokens[1], 10, 16); err == nil {
		resp.Code = status.Code(code)
	}

	if len(tokens) == 2 {
		resp.Status = status.Text(resp.Code)
	} else {
		resp.Status = status.Status(strings.Join(tokens[2:], " "))
	}
}

// parseHeaders fills the headers with lines in the "key: value" form. Lines which
// don't split into exactly 2 parts are skipped. Later duplicates override earlier ones.
func parseHeaders(hdrs headers.Headers, fields string) {
	for len(fields) > 0 {
		var line string
		line, fields, _ = strings.Cut(fields, crlf)

		key, value, found := strings.Cut(line, colonsp)
		if !found || strings.Contains(value, colonsp) {
			continue
		}

		hdrs.Set(key, value)
	}
}
