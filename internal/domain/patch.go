package domain

import (
	"strings"
	"time"
)

// TimestampLayout renders timestamps in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formats t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NullablePatch is a partial update of a nullable text column.
// Set=false leaves the stored value alone; Set with a nil Value clears it.
type NullablePatch struct {
	Set   bool
	Value *string
}

// Apply returns the value the column should hold after the patch.
func (p NullablePatch) Apply(current *string) *string {
	if !p.Set {
		return current
	}
	return p.Value
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
