package dto

import (
	"eyeslot/infras/jwt"
	"eyeslot/infras/oauth"
	userDto "eyeslot/internal/domains/user/model/dto"
	"time"
)

// SignInStart carries the anti-forgery state and the consent page it is bound to.
type SignInStart struct {
	State string
	URL   string
}

type CallbackRequest struct {
	Code          string `validate:"required"`
	State         string `validate:"required"`
	ExpectedState string `validate:"required"`
}

// ToUserRequest keeps Google's subject as the user id for first-time sign-ins.
func ToUserRequest(identity oauth.Identity) userDto.SaveUserRequest {
	return userDto.SaveUserRequest{
		ID:    identity.Subject,
		Email: identity.Email,
		Name:  identity.Name,
	}
}

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *SessionUser) FromClaims(claims *jwt.Claims) {
	u.ID = claims.UserID
	u.Email = claims.Email
	u.Name = claims.Name
}

type SessionResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresAt time.Time   `json:"expires_at"`
	ExpiresIn int64       `json:"expires_in"`
	User      SessionUser `json:"user"`
}

func (r *SessionResponse) FromSession(session *jwt.Session, user SessionUser) {
	r.Token = session.Token
	r.TokenType = session.TokenType
	r.ExpiresAt = session.ExpiresAt
	r.ExpiresIn = session.ExpiresIn
	r.User = user
}
