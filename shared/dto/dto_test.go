package dto_test

import (
	"eyeslot/shared/constant"
	"eyeslot/shared/dto"
	"eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(updatedAt, constant.DateFormat), metadata.UpdatedAt)
}

func TestQueryParams_OrderClause(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		table    string
		expected string
	}{
		{
			name:     "no sort",
			params:   dto.QueryParams{},
			expected: "",
		},
		{
			name:     "multiple columns ascending",
			params:   dto.SortedBy(dto.SortDirAsc, "visit_date", "visit_time"),
			table:    "bookings",
			expected: "ORDER BY bookings.visit_date ASC, bookings.visit_time ASC",
		},
		{
			name:     "lower case direction normalised",
			params:   dto.QueryParams{SortBy: "created_at", SortDir: "desc"},
			expected: "ORDER BY created_at DESC",
		},
		{
			name:     "unknown direction falls back to ascending",
			params:   dto.QueryParams{SortBy: "created_at", SortDir: "sideways"},
			expected: "ORDER BY created_at ASC",
		},
		{
			name:     "blank columns skipped and qualified columns kept",
			params:   dto.QueryParams{SortBy: " , reviews.created_at ,", SortDir: dto.SortDirDesc},
			table:    "reviews",
			expected: "ORDER BY reviews.created_at DESC",
		},
		{
			name:     "only blank columns renders nothing",
			params:   dto.QueryParams{SortBy: " , ", SortDir: dto.SortDirAsc},
			table:    "bookings",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.OrderClause(tt.table))
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		group        dto.FilterGroup
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name:         "empty group",
			group:        dto.FilterGroup{},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
		{
			name:         "single equality",
			group:        dto.Where(dto.Eq("reviews", "booking_id", "b-1")),
			expectedSQL:  "(reviews.booking_id = :booking_id)",
			expectedArgs: map[string]any{"booking_id": "b-1"},
		},
		{
			name: "in with slice and null check",
			group: dto.Where(
				dto.Filter{Field: "store_id", Operator: dto.FilterOperatorIn, Value: []string{"oror", "lacitpo"}},
				dto.Filter{Field: "review_text", Operator: dto.FilterIsNotNull},
			),
			expectedSQL:  "(store_id IN (:store_id_0, :store_id_1) AND review_text IS NOT NULL)",
			expectedArgs: map[string]any{"store_id_0": "oror", "store_id_1": "lacitpo"},
		},
		{
			name: "nested or group",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Eq("", "email", "a@b.co"),
					dto.Filter{Field: "visit_date", ArgName: "from", Operator: dto.FilterOperatorGreaterEq, Value: "2025-01-01"},
				},
			},
			expectedSQL:  "(email = :email OR visit_date >= :from)",
			expectedArgs: map[string]any{"email": "a@b.co", "from": "2025-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
