package http1

import (
	"testing"

	"github.com/indigo-web/request/http/headers"
	"github.com/stretchr/testify/require"
)

func TestDechunkHeuristic(t *testing.T) {
	for body, want := range map[string]string{
		"":                               "",
		"plain body":                     "plain body",
		"5\r\nhello\r\n0\r\n":            "hello",
		"5\r\nhello\r\n6\r\n world\r\n0": "hello world",
		"\r\n":                           "",
		"a\r\nb\r\nc":                    "b",
	} {
		require.Equal(t, want, dechunkHeuristic(body), "%q", body)
	}
}

func TestDechunkFramed(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		body, err := dechunkFramed("5\r\nhello\r\n6\r\n world\r\n0\r\n\r\n", false)
		require.NoError(t, err)
		require.Equal(t, "hello world", body)
	})

	t.Run("chunk with CRLF inside", func(t *testing.T) {
		body, err := dechunkFramed("4\r\na\r\nb\r\n0\r\n\r\n", false)
		require.NoError(t, err)
		require.Equal(t, "a\r\nb", body)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := dechunkFramed("5\r\nhel", false)
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := dechunkFramed("", false)
		require.Error(t, err)
	})
}

func TestDecodeBody(t *testing.T) {
	t.Run("chunked", func(t *testing.T) {
		hdrs := headers.New().Set("transfer-encoding", "gzip, Chunked")
		require.Equal(t, "a\r\nb", decodeBody(hdrs, "4\r\na\r\nb\r\n0\r\n\r\n"))
	})

	t.Run("broken chunked falls back", func(t *testing.T) {
		hdrs := headers.New().Set("Transfer-Encoding", "chunked")
		require.Equal(t, "hello", decodeBody(hdrs, "zz\r\nhello\r\n"))
	})

	t.Run("content length", func(t *testing.T) {
		hdrs := headers.New().Set("Content-Length", "12")
		require.Equal(t, "5\r\nhello\r\n0", decodeBody(hdrs, "5\r\nhello\r\n0"))
	})

	t.Run("unknown framing", func(t *testing.T) {
		require.Equal(t, "hello", decodeBody(headers.New(), "5\r\nhello\r\n0\r\n"))
	})
}
