package dto

import (
	"eyeslot/internal/domains/user/model"
	gDto "eyeslot/shared/dto"
	gModel "eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type SaveUserRequest struct {
	ID    string `json:"id"    validate:"omitempty,max=255"`
	Email string `json:"email" validate:"required,mailbox,max=255"`
	Name  string `json:"name"  validate:"omitempty,max=255"`
}

// ToModel normalises the email so the upsert key matches regardless of casing.
func (r *SaveUserRequest) ToModel() model.User {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = uuid.NewString()
	}

	return model.User{
		ID:       id,
		Email:    NormalizeEmail(r.Email),
		Name:     strings.TrimSpace(r.Name),
		Metadata: gModel.NewMetadata(timezone.Now()),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.Name = user.Name
	r.Metadata.FromModel(user.Metadata)
}

// LookupResponse distinguishes a new customer (Found=false) from a returning one.
type LookupResponse struct {
	Found bool          `json:"found"`
	User  *UserResponse `json:"user"`
}
