package service_test

import (
	"context"
	"errors"
	"eyeslot/config"
	"eyeslot/infras/jwt"
	jwtMocks "eyeslot/infras/jwt/mocks"
	"eyeslot/infras/oauth"
	oauthMocks "eyeslot/infras/oauth/mocks"
	otelMocks "eyeslot/infras/otel/mocks"
	"eyeslot/internal/domains/auth/model/dto"
	"eyeslot/internal/domains/auth/service"
	userMocks "eyeslot/internal/domains/user/mocks"
	userDto "eyeslot/internal/domains/user/model/dto"
	"eyeslot/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	provider *oauthMocks.MockProvider
	users    *userMocks.MockUserService
	jwt      *jwtMocks.MockJWT
}

func newService(t *testing.T) (service.Auth, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		provider: oauthMocks.NewMockProvider(ctrl),
		users:    userMocks.NewMockUserService(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}

	return service.New(d.provider, d.users, d.jwt, &config.Config{}, otelMocks.NewOtel()), d
}

func TestAuthService_BeginSignIn(t *testing.T) {
	svc, d := newService(t)

	var seen string

	d.provider.EXPECT().
		AuthCodeURL(gomock.Any()).
		DoAndReturn(func(state string) string {
			seen = state

			return "https://accounts.example.com/auth?state=" + state
		})

	res, err := svc.BeginSignIn(context.Background())

	require.NoError(t, err)
	assert.Len(t, res.State, 43)
	assert.Equal(t, seen, res.State)
	assert.Contains(t, res.URL, res.State)
}

func TestAuthService_CompleteSignIn(t *testing.T) {
	identity := oauth.Identity{Subject: "google-sub-1", Email: "jane@x.com", Name: "Jane"}
	session := &jwt.Session{Token: "signed", TokenType: "Bearer", ExpiresIn: 3600}

	valid := dto.CallbackRequest{Code: "code-1", State: "state-1", ExpectedState: "state-1"}

	tests := []struct {
		name      string
		req       dto.CallbackRequest
		setupMock func(d deps)
		wantUser  string
		wantCode  int
	}{
		{
			name: "synced user id is used for the session",
			req:  valid,
			setupMock: func(d deps) {
				d.provider.EXPECT().Exchange(gomock.Any(), "code-1").Return(identity, nil)
				d.users.EXPECT().
					Sync(gomock.Any(), userDto.SaveUserRequest{ID: "google-sub-1", Email: "jane@x.com", Name: "Jane"}).
					Return(userDto.UserResponse{ID: "existing-id", Email: "jane@x.com", Name: "Jane"}, nil)
				d.jwt.EXPECT().GenerateSession("existing-id", "jane@x.com", "Jane").Return(session, nil)
			},
			wantUser: "existing-id",
		},
		{
			name: "sync failure falls back to the subject",
			req:  valid,
			setupMock: func(d deps) {
				d.provider.EXPECT().Exchange(gomock.Any(), "code-1").Return(identity, nil)
				d.users.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(userDto.UserResponse{}, errors.New("db down"))
				d.jwt.EXPECT().GenerateSession("google-sub-1", "jane@x.com", "Jane").Return(session, nil)
			},
			wantUser: "google-sub-1",
		},
		{
			name:      "state mismatch",
			req:       dto.CallbackRequest{Code: "code-1", State: "forged", ExpectedState: "state-1"},
			setupMock: func(deps) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "missing state cookie",
			req:       dto.CallbackRequest{Code: "code-1", State: "state-1"},
			setupMock: func(deps) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "missing code",
			req:       dto.CallbackRequest{State: "state-1", ExpectedState: "state-1"},
			setupMock: func(deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "identity provider rejects the code",
			req:  valid,
			setupMock: func(d deps) {
				d.provider.EXPECT().Exchange(gomock.Any(), "code-1").
					Return(oauth.Identity{}, failure.Unauthorized("sign-in was rejected by the identity provider"))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "session signing fails",
			req:  valid,
			setupMock: func(d deps) {
				d.provider.EXPECT().Exchange(gomock.Any(), gomock.Any()).Return(identity, nil)
				d.users.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(userDto.UserResponse{ID: "u-1"}, nil)
				d.jwt.EXPECT().GenerateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, jwt.ErrMissingSecret)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.CompleteSignIn(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed", res.Token)
			assert.Equal(t, tt.wantUser, res.User.ID)
			assert.Equal(t, "jane@x.com", res.User.Email)
		})
	}
}
