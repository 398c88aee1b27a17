package headers

import (
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		h := New().Set("Hello", "world").Set("Hello", "nether")
		require.Equal(t, 1, h.Len())
		require.Equal(t, "nether", h.Value("Hello"))
	})

	t.Run("case sensitive storage", func(t *testing.T) {
		h := New().Set("Hello", "world").Set("hello", "nether")
		require.Equal(t, 2, h.Len())
		require.Equal(t, "world", h.Value("Hello"))
		require.Equal(t, "nether", h.Value("hello"))
		require.False(t, h.Has("HELLO"))
	})

	t.Run("lookup", func(t *testing.T) {
		h := New().Set("location", "http://example.com/")

		value, found := h.Lookup("Location")
		require.True(t, found)
		require.Equal(t, "http://example.com/", value)

		_, found = h.Get("Location")
		require.False(t, found)

		_, found = h.Lookup("Content-Length")
		require.False(t, found)
	})

	t.Run("lookup prefers exact match", func(t *testing.T) {
		h := New().Set("LOCATION", "a").Set("Location", "b")
		value, found := h.Lookup("Location")
		require.True(t, found)
		require.Equal(t, "b", value)
	})

	t.Run("delete folds case", func(t *testing.T) {
		h := New().Set("Content-Length", "1").Set("content-length", "2").Set("Other", "3")
		h.Delete("CONTENT-LENGTH")
		require.Equal(t, []string{"Other"}, h.Keys())
	})

	t.Run("iter is sorted", func(t *testing.T) {
		h := New()
		for i := 0; i < 20; i++ {
			h.Set(uniuri.NewLen(12), uniuri.New())
		}

		var prev string
		for key, value := range h.Iter() {
			require.Less(t, prev, key)
			require.Equal(t, h[key], value)
			prev = key
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		h := New().Set("Hello", "world")
		clone := h.Clone().Set("Hello", "nether")
		require.Equal(t, "world", h.Value("Hello"))
		require.Equal(t, "nether", clone.Value("Hello"))
	})

	t.Run("from nil map", func(t *testing.T) {
		require.Equal(t, 0, FromMap(nil).Len())
	})
}
