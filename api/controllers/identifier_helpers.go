package controllers

import (
	"strconv"
	"strings"

	"Chirp/api/feed"
)

// parseID reads a positive decimal id.
func parseID(value string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseLimit falls back to the default page size when absent or not a
// number; out-of-range numbers are clamped, never rejected.
func parseLimit(value string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return feed.DefaultPageSize
	}
	return feed.ClampLimit(limit)
}

func parseOffset(value string) int {
	offset, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
