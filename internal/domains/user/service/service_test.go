package service_test

import (
	"context"
	"errors"
	"eyeslot/config"
	"eyeslot/infras/otel/mocks"
	userMocks "eyeslot/internal/domains/user/mocks"
	"eyeslot/internal/domains/user/model"
	"eyeslot/internal/domains/user/model/dto"
	"eyeslot/internal/domains/user/service"
	cacheMocks "eyeslot/shared/cache/mocks"
	"eyeslot/shared/failure"
	gModel "eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache, *config.Config) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache, cfg
}

func storedUser() model.User {
	return model.User{
		ID:       "google-sub-1",
		Email:    "jane@x.com",
		Name:     "Jane",
		Metadata: gModel.NewMetadata(timezone.Now()),
	}
}

func TestUserService_Save(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SaveUserRequest
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "normalises and upserts",
			req:  dto.SaveUserRequest{ID: "google-sub-1", Email: "  Jane@X.com ", Name: " Jane "},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Cond(func(x any) bool {
						u, ok := x.(model.User)

						return ok && u.ID == "google-sub-1" && u.Email == "jane@x.com" && u.Name == "Jane"
					})).
					Return(storedUser(), nil)

				cache.EXPECT().Delete(gomock.Any(), "user:get:jane@x.com").Return(nil)
			},
		},
		{
			name: "generates an id when absent",
			req:  dto.SaveUserRequest{Email: "jane@x.com"},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Cond(func(x any) bool {
						u, ok := x.(model.User)

						return ok && u.ID != ""
					})).
					Return(storedUser(), nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "repository error",
			req:  dto.SaveUserRequest{Email: "jane@x.com"},
			setupMock: func(repo *userMocks.MockUser, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Save(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "google-sub-1", res.ID)
			assert.Equal(t, "jane@x.com", res.Email)
		})
	}
}

func TestUserService_SyncRetriesOnce(t *testing.T) {
	svc, repo, cache, _ := newService(t)

	retried := make(chan struct{})

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("connection reset")),
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
				defer close(retried)

				return u, nil
			}),
	)

	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := svc.Sync(context.Background(), dto.SaveUserRequest{ID: "sub", Email: "jane@x.com", Name: "Jane"})
	assert.Error(t, err)

	select {
	case <-retried:
	case <-time.After(2 * time.Second):
		t.Fatal("user sync was not retried")
	}
}

func TestUserService_SyncDoesNotRetryAfterSuccess(t *testing.T) {
	svc, repo, cache, _ := newService(t)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(storedUser(), nil).Times(1)
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Sync(context.Background(), dto.SaveUserRequest{ID: "google-sub-1", Email: "jane@x.com", Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", res.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestUserService_Lookup(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantFound bool
		wantCode  int
	}{
		{
			name:      "missing email",
			email:     "   ",
			setupMock: func(*userMocks.MockUser, *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "cache hit",
			email: "Jane@x.com",
			setupMock: func(_ *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "user:get:jane@x.com", gomock.Any()).Return(nil)
			},
			wantFound: true,
		},
		{
			name:  "found in database",
			email: "jane@x.com",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(), nil)
				cache.EXPECT().Save(gomock.Any(), "user:get:jane@x.com", gomock.Any(), 3600).Return(nil)
			},
			wantFound: true,
		},
		{
			name:  "not found",
			email: "new@x.com",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantFound: false,
		},
		{
			name:  "repository error",
			email: "jane@x.com",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Lookup(context.Background(), tt.email)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, res.Found)
			assert.Equal(t, tt.wantFound, res.User != nil)
		})
	}
}
