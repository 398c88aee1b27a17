package url

import (
	"net"
	stdurl "net/url"
	"strconv"
	"strings"

	"github.com/indigo-web/request/errors"
)

type Scheme uint8

const (
	HTTP Scheme = iota + 1
	HTTPS
)

func (s Scheme) String() string {
	switch s {
	case HTTP:
		return "http"
	case HTTPS:
		return "https"
	default:
		return ""
	}
}

// DefaultPort returns a port implied by the scheme when none is specified explicitly.
func (s Scheme) DefaultPort() uint16 {
	switch s {
	case HTTP:
		return 80
	case HTTPS:
		return 443
	default:
		return 0
	}
}

// URL holds everything required to reach the resource: where to connect and what to
// put into the request line.
type URL struct {
	Scheme Scheme
	Host   string
	Port   uint16
	// Path is the request target, i.e. the path with the query, if any. It's
	// never empty.
	Path string
	// Segments are the decoded path segments. Nil if the URL has no path.
	Segments []string
}

// Parse parses the raw URL. Only absolute http and https URLs with a host are accepted.
func Parse(raw string) (URL, error) {
	u, err := stdurl.Parse(raw)
	if err != nil {
		return URL{}, errors.Wrap(errors.ErrMalformedURL, unwrapURLError(err))
	}

	return fromStd(raw, u)
}

// Resolve resolves the reference against the base. The reference may be either an
// absolute URL or a relative one, e.g. "/login" or "../index.html".
func Resolve(base URL, ref string) (URL, error) {
	r, err := stdurl.Parse(ref)
	if err != nil {
		return URL{}, errors.Wrap(errors.ErrMalformedURL, unwrapURLError(err))
	}

	if r.IsAbs() {
		return fromStd(ref, r)
	}

	b, err := stdurl.Parse(base.String())
	if err != nil {
		return URL{}, errors.Wrap(errors.ErrMalformedURL, unwrapURLError(err))
	}

	resolved := b.ResolveReference(r)

	return fromStd(resolved.String(), resolved)
}

func fromStd(raw string, u *stdurl.URL) (URL, error) {
	var scheme Scheme

	// net/url lowercases the scheme, however we compare it against the raw one, as
	// the match must be case-sensitive.
	rawScheme, _, _ := strings.Cut(raw, ":")
	switch rawScheme {
	case "http":
		scheme = HTTP
	case "https":
		scheme = HTTPS
	default:
		return URL{}, errors.Wrap(errors.ErrUnsupportedScheme, errQuoted(rawScheme))
	}

	host := u.Hostname()
	if len(host) == 0 {
		return URL{}, errors.ErrInvalidHost
	}

	port := scheme.DefaultPort()
	if p := u.Port(); len(p) > 0 {
		parsed, err := strconv.ParseUint(p, 10, 16)
		if err != nil || parsed == 0 {
			return URL{}, errors.Wrap(errors.ErrMalformedURL, errInvalidPort(p))
		}

		port = uint16(parsed)
	}

	segments := splitSegments(u.Path)

	return URL{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     requestTarget(segments, u.RawQuery),
		Segments: segments,
	}, nil
}

// Addr returns the address to dial, in the host:port form.
func (u URL) Addr() string {
	return net.JoinHostPort(u.Host, strconv.Itoa(int(u.Port)))
}

// HostHeader returns the value of the Host header. The port is omitted when it's the
// default one for the scheme.
func (u URL) HostHeader() string {
	if u.Port == u.Scheme.DefaultPort() {
		return u.hostname()
	}

	return u.Addr()
}

// String returns the URL in its absolute form.
func (u URL) String() string {
	return u.Scheme.String() + "://" + u.HostHeader() + u.Path
}

func (u URL) hostname() string {
	if strings.IndexByte(u.Host, ':') != -1 {
		// IPv6 literal
		return "[" + u.Host + "]"
	}

	return u.Host
}

func splitSegments(path string) []string {
	if len(path) == 0 {
		return nil
	}

	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

func requestTarget(segments []string, query string) string {
	var b strings.Builder

	if len(segments) == 0 {
		b.WriteByte('/')
	}

	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(stdurl.PathEscape(segment))
	}

	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query)
	}

	return b.String()
}

func unwrapURLError(err error) error {
	if uerr, ok := err.(*stdurl.Error); ok {
		return uerr.Err
	}

	return err
}

type errQuoted string

func (e errQuoted) Error() string {
	return strconv.Quote(string(e))
}

type errInvalidPort string

func (e errInvalidPort) Error() string {
	return "invalid port " + strconv.Quote(string(e))
}
