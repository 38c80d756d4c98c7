package repository_test

import (
	"errors"
	"eyeslot/infras/otel/mocks"
	"eyeslot/shared/model"
	"eyeslot/shared/repository"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Skipped string `db:"-"`
	Plain   string
	model.Metadata
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo := repository.NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "name", "created_at", "updated_at"}, repo.InsertColumns)
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, expected: true},
		{name: "wrapped unique violation", err: fmt.Errorf("failed to insert data (review): %w", &pq.Error{Code: "23505"}), expected: true},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repository.IsUniqueViolation(tt.err))
		})
	}
}
