package httpcache

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(true)

	etag := c.Set("key", []byte(`{"a":1}`), time.Minute)

	data, gotETag, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(data))
	assert.Equal(t, etag, gotETag)
	assert.True(t, strings.HasPrefix(etag, `W/"`))
}

func TestExpiredEntryIsMiss(t *testing.T) {
	c := New(true)

	c.Set("key", []byte("data"), -time.Second)

	_, _, ok := c.Get("key")
	assert.False(t, ok)
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(false)

	etag := c.Set("key", []byte("data"), time.Minute)
	assert.NotEmpty(t, etag, "still computes an ETag for the response")

	_, _, ok := c.Get("key")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	c := New(true)
	c.Set("live", []byte("a"), time.Minute)
	c.Set("dead", []byte("b"), -time.Second)

	stats := c.Stats()

	assert.Equal(t, true, stats["enabled"])
	assert.Equal(t, 2, stats["total_keys"])
	assert.Equal(t, 1, stats["active_keys"])
	assert.Equal(t, 1, stats["expired_keys"])
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("data"))

	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"other"`, etag))
}

func TestETagIsStableForSameData(t *testing.T) {
	assert.Equal(t, ComputeETag([]byte("data")), ComputeETag([]byte("data")))
	assert.NotEqual(t, ComputeETag([]byte("data")), ComputeETag([]byte("other")))
}
