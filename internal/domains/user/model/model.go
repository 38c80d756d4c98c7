package model

import "eyeslot/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID    = "id"
	FieldEmail = "email"
	FieldName  = "name"
)

// User is keyed by email; ID is the identity provider subject of the first sign-in.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	model.Metadata
}
