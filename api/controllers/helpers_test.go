package controllers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"Chirp/api/feed"
)

func urlQueryEscape(s string) string {
	return url.QueryEscape(s)
}

func TestParseHelpers(t *testing.T) {
	id, ok := parseID("12")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)
	for _, bad := range []string{"", "0", "-1", "x", "1.5"} {
		_, ok := parseID(bad)
		assert.False(t, ok, bad)
	}

	assert.Equal(t, feed.DefaultPageSize, parseLimit(""))
	assert.Equal(t, feed.DefaultPageSize, parseLimit("lots"))
	assert.Equal(t, 1, parseLimit("0"))
	assert.Equal(t, 50, parseLimit("99"))
	assert.Equal(t, 7, parseLimit("7"))

	assert.Equal(t, 0, parseOffset(""))
	assert.Equal(t, 0, parseOffset("-3"))
	assert.Equal(t, 30, parseOffset("30"))
}
