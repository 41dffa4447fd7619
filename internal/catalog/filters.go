package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDList parses a comma-separated id list as it appears in query
// parameters ("1,2,3"). The first token that is not a positive integer fails
// the whole parse; malformed filters are a client error, never silently
// dropped.
func ParseIDList(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)

		if err != nil {
			return nil, fmt.Errorf("invalid id %q", strings.TrimSpace(part))
		}

		ids = append(ids, uint(id))
	}

	return ids, nil
}
