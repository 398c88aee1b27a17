package http

import (
	"testing"

	"github.com/indigo-web/request/http/headers"
	"github.com/indigo-web/request/http/method"
	"github.com/indigo-web/request/http/url"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	u, err := url.Parse("http://example.com/")
	require.NoError(t, err)

	req := NewRequest(method.POST, u).
		Header("Hello", "world").
		Header("Hello", "nether").
		String("body")

	require.Equal(t, method.POST, req.Method)
	require.Equal(t, headers.Headers{"Hello": "nether"}, req.Headers)
	require.Equal(t, "body", string(req.Body))

	t.Run("zero value", func(t *testing.T) {
		var req Request
		req.Header("a", "b")
		require.Equal(t, "b", req.Headers.Value("a"))
	})
}
