package shared

import (
	"strconv"
	"strings"

	"tide/shared/failure"
)

// BuildCacheKey joins key parts with ":" into a single cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// ParseID parses a numeric entity id from a URL parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid id parameter") //nolint:wrapcheck
	}

	return id, nil
}
