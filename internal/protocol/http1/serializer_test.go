package http1

import (
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/request/http/headers"
	"github.com/indigo-web/request/http/method"
	"github.com/indigo-web/request/http/url"
	"github.com/stretchr/testify/require"
)

func mustParseURL(t *testing.T, raw string) url.URL {
	u, err := url.Parse(raw)
	require.NoError(t, err)

	return u
}

func TestSerialize(t *testing.T) {
	t.Run("no headers no body", func(t *testing.T) {
		u := mustParseURL(t, "http://example.com/a?b=c")
		data := Serialize(method.GET, u, headers.New(), nil)
		require.Equal(t, "GET /a?b=c HTTP/1.1\r\nHost: example.com\r\n\r\n", string(data))
	})

	t.Run("nil headers", func(t *testing.T) {
		u := mustParseURL(t, "https://example.com")
		data := Serialize(method.HEAD, u, nil, nil)
		require.Equal(t, "HEAD / HTTP/1.1\r\nHost: example.com\r\n\r\n", string(data))
	})

	t.Run("non-default port", func(t *testing.T) {
		u := mustParseURL(t, "http://example.com:8080/")
		data := Serialize(method.OPTIONS, u, nil, nil)
		require.Equal(t, "OPTIONS / HTTP/1.1\r\nHost: example.com:8080\r\n\r\n", string(data))

		u = mustParseURL(t, "https://example.com:80/")
		data = Serialize(method.OPTIONS, u, nil, nil)
		require.Equal(t, "OPTIONS / HTTP/1.1\r\nHost: example.com:80\r\n\r\n", string(data))
	})

	t.Run("headers and body", func(t *testing.T) {
		u := mustParseURL(t, "http://example.com/submit")
		hdrs := headers.New().
			Set("Content-Type", "text/plain").
			Set("Content-Length", "5").
			Set("Accept", "*/*")
		data := Serialize(method.POST, u, hdrs, []byte("hello"))
		want := "POST /submit HTTP/1.1\r\n" +
			"Host: example.com\r\n" +
			"Accept: */*\r\n" +
			"Content-Length: 5\r\n" +
			"Content-Type: text/plain\r\n" +
			"\r\n" +
			"hello"
		require.Equal(t, want, string(data))
	})

	t.Run("caller host is ignored", func(t *testing.T) {
		u := mustParseURL(t, "http://example.com/")
		hdrs := headers.New().Set("host", "evil.com").Set("Host", "evil.com")
		data := Serialize(method.GET, u, hdrs, nil)
		require.Equal(t, "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n", string(data))
	})

	t.Run("line injection", func(t *testing.T) {
		u := mustParseURL(t, "http://example.com/")
		hdrs := headers.New().Set("X-Evil", "a\r\nInjected: yes")
		data := Serialize(method.GET, u, hdrs, nil)
		require.Equal(t, "GET / HTTP/1.1\r\nHost: example.com\r\nX-Evil: aInjected: yes\r\n\r\n", string(data))
	})

	t.Run("many headers", func(t *testing.T) {
		u := mustParseURL(t, "http://example.com/")
		hdrs := headers.New()
		for i := 0; i < 50; i++ {
			hdrs.Set("X-"+uniuri.NewLen(10), uniuri.New())
		}

		data := string(Serialize(method.PUT, u, hdrs, []byte("body")))
		head, body, found := strings.Cut(data, "\r\n\r\n")
		require.True(t, found)
		require.Equal(t, "body", body)
		lines := strings.Split(head, "\r\n")
		require.Len(t, lines, 2+hdrs.Len())
		for key, value := range hdrs {
			require.Contains(t, lines, key+": "+value)
		}
	})
}

func BenchmarkSerialize(b *testing.B) {
	u, err := url.Parse("http://example.com/hello/world?a=b")
	if err != nil {
		b.Fatal(err)
	}

	hdrs := headers.New().Set("Accept", "*/*").Set("User-Agent", "bench")
	body := []byte(strings.Repeat("a", 1024))
	b.SetBytes(int64(len(Serialize(method.POST, u, hdrs, body))))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Serialize(method.POST, u, hdrs, body)
	}
}
