package feed

import (
	"strconv"
	"strings"
	"time"
)

const cursorSeparator = "|"

// Cursor is the composite sort key (created_at, id) of the last row a page
// returned. On the wire it is "<RFC3339 timestamp>|<decimal id>".
type Cursor struct {
	CreatedAt time.Time
	ID        uint
}

// String encodes the cursor. Sub-second digits are kept so the key matches
// the stored row exactly.
func (c Cursor) String() string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + strconv.FormatUint(uint64(c.ID), 10)
}

// Less reports whether c sorts strictly before other in ascending
// (created_at, id) order, i.e. whether c comes after other in a timeline.
func (c Cursor) Less(other Cursor) bool {
	if !c.CreatedAt.Equal(other.CreatedAt) {
		return c.CreatedAt.Before(other.CreatedAt)
	}
	return c.ID < other.ID
}

// EncodeCursor returns nil for a nil cursor so it serializes as JSON null.
func EncodeCursor(c *Cursor) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

// ParseCursor never fails: anything it cannot read is treated as no cursor,
// which sends the caller back to the first page. Both "Z" and numeric
// offsets are accepted.
func ParseCursor(value string) *Cursor {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	ts, rawID, ok := strings.Cut(value, cursorSeparator)
	if !ok {
		return nil
	}
	createdAt, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil
	}
	id, err := strconv.ParseUint(rawID, 10, strconv.IntSize)
	if err != nil {
		return nil
	}
	return &Cursor{CreatedAt: createdAt.UTC(), ID: uint(id)}
}
