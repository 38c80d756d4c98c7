package model

import "time"

type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewMetadata stamps both timestamps with the same instant.
func NewMetadata(now time.Time) Metadata {
	return Metadata{
		CreatedAt: now,
		UpdatedAt: now,
	}
}
