package shared

import (
	"eyeslot/shared/dto"
	"strings"
)

const cacheKeySeparator = ":"

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts with ':'; parts are lower-cased so
// e-mail keyed entries hit regardless of input casing.
func BuildCacheKey(prefix string, parts ...string) string {
	key := prefix

	for _, part := range parts {
		key += cacheKeySeparator + strings.ToLower(strings.TrimSpace(part))
	}

	return key
}
