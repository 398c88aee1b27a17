package http1

import (
	"github.com/indigo-web/request/http/headers"
	"github.com/indigo-web/request/http/method"
	"github.com/indigo-web/request/http/url"
	"github.com/indigo-web/utils/strcomp"
)

const (
	crlf    = "\r\n"
	colonsp = ": "
	proto   = "HTTP/1.1"
)

// Serialize renders the request exactly as it must be transmitted. The Host header is
// always computed out of the URL, so the one from hdrs (if any) is ignored. Other headers
// follow in key order. The body is appended as is: neither Content-Length nor any
// other framing is added here.
func Serialize(m method.Method, u url.URL, hdrs headers.Headers, body []byte) []byte {
	s := serializer{buff: make([]byte, 0, estimate(m, u, hdrs, body))}

	s.appendRequestLine(m, u.Path)
	s.appendHeader(headers.Host, u.HostHeader())

	for key, value := range hdrs.Iter() {
		if strcomp.EqualFold(key, headers.Host) {
			continue
		}

		s.appendHeader(key, value)
	}

	s.crlf()
	s.crlf()
	s.buff = append(s.buff, body...)

	return s.buff
}

type serializer struct {
	buff []byte
}

func (s *serializer) appendRequestLine(m method.Method, path string) {
	s.buff = append(s.buff, m.String()...)
	s.sp()
	s.buff = append(s.buff, path...)
	s.sp()
	s.buff = append(s.buff, proto...)
}

// appendHeader prepends the CRLF instead of appending it, so the last header line must be
// followed by an explicit blank line.
func (s *serializer) appendHeader(key, value string) {
	s.crlf()
	s.buff = appendSanitized(s.buff, key)
	s.colonsp()
	s.buff = appendSanitized(s.buff, value)
}

func (s *serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *serializer) colonsp() {
	s.buff = append(s.buff, colonsp...)
}

func (s *serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

// appendSanitized drops CR and LF, otherwise a value could inject extra header lines
// or even terminate the header section prematurely.
func appendSanitized(buff []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		if str[i] == '\r' || str[i] == '\n' {
			continue
		}

		buff = append(buff, str[i])
	}

	return buff
}

func estimate(m method.Method, u url.URL, hdrs headers.Headers, body []byte) int {
	n := len(m.String()) + len(u.Path) + len(proto) + len("\r\nHost: ") + len(u.HostHeader()) + 6
	for key, value := range hdrs {
		n += len(key) + len(value) + 4
	}

	return n + len(body)
}
