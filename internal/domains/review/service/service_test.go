package service_test

import (
	"context"
	"errors"
	"eyeslot/config"
	otelMocks "eyeslot/infras/otel/mocks"
	reviewMocks "eyeslot/internal/domains/review/mocks"
	"eyeslot/internal/domains/review/model"
	"eyeslot/internal/domains/review/model/dto"
	"eyeslot/internal/domains/review/service"
	cacheMocks "eyeslot/shared/cache/mocks"
	gDto "eyeslot/shared/dto"
	"eyeslot/shared/failure"
	gModel "eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Review, *reviewMocks.MockReview, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func storedReview() model.Review {
	return model.Review{
		ID:         "r-1",
		BookingID:  "b-1",
		Rating:     4,
		ReviewText: "Friendly staff",
		StoreID:    "viewraum",
		Metadata:   gModel.NewMetadata(timezone.Now()),
	}
}

func TestReviewService_Create(t *testing.T) {
	duplicate := fmt.Errorf("failed to insert data (review): %w", &pq.Error{Code: "23505"})

	tests := []struct {
		name      string
		req       dto.SaveReviewRequest
		setupMock func(repo *reviewMocks.MockReview, cache *cacheMocks.MockRedisCache)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "created",
			req:  dto.SaveReviewRequest{BookingID: "b-1", Rating: 5, ReviewText: "Great", StoreID: "Viewraum"},
			setupMock: func(repo *reviewMocks.MockReview, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Cond(func(x any) bool {
						r, ok := x.(model.Review)

						return ok && r.BookingID == "b-1" && r.StoreID == "viewraum" && r.Rating == 5
					})).
					Return(nil)
				cache.EXPECT().Delete(gomock.Any(), "review:gets:viewraum").Return(nil)
			},
		},
		{
			name:      "rating above five",
			req:       dto.SaveReviewRequest{BookingID: "b-1", Rating: 6},
			setupMock: func(*reviewMocks.MockReview, *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "rating below one",
			req:       dto.SaveReviewRequest{BookingID: "b-1", Rating: 0},
			setupMock: func(*reviewMocks.MockReview, *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing booking",
			req:       dto.SaveReviewRequest{Rating: 3},
			setupMock: func(*reviewMocks.MockReview, *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "second review for the booking",
			req:  dto.SaveReviewRequest{BookingID: "b-1", Rating: 3},
			setupMock: func(repo *reviewMocks.MockReview, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(duplicate)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Review already exists for this booking",
		},
		{
			name: "database failure",
			req:  dto.SaveReviewRequest{BookingID: "b-1", Rating: 3},
			setupMock: func(repo *reviewMocks.MockReview, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.req.Rating, res.Rating)
		})
	}
}

func TestReviewService_Update(t *testing.T) {
	filter := gDto.Where(gDto.Eq(model.TableName, model.FieldBookingID, "b-1"))

	tests := []struct {
		name      string
		req       dto.SaveReviewRequest
		setupMock func(repo *reviewMocks.MockReview, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "overwrites rating and text",
			req:  dto.SaveReviewRequest{BookingID: "b-1", Rating: 2, ReviewText: "Long wait", StoreID: "viewraum"},
			setupMock: func(repo *reviewMocks.MockReview, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), filter).Return(storedReview(), nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Cond(func(x any) bool {
						fields, ok := x.(map[string]any)

						return ok && fields[model.FieldRating] == 2 && fields[model.FieldReviewText] == "Long wait"
					}), filter).
					Return(nil)
				cache.EXPECT().Delete(gomock.Any(), "review:gets:viewraum").Return(nil)
			},
		},
		{
			name: "moving store clears both store lists",
			req:  dto.SaveReviewRequest{BookingID: "b-1", Rating: 2, ReviewText: "Long wait", StoreID: "lacitpo"},
			setupMock: func(repo *reviewMocks.MockReview, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), filter).Return(storedReview(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), filter).Return(nil)
				cache.EXPECT().Delete(gomock.Any(), "review:gets:viewraum").Return(nil)
				cache.EXPECT().Delete(gomock.Any(), "review:gets:lacitpo").Return(errors.New("redis down"))
			},
		},
		{
			name: "no review yet",
			req:  dto.SaveReviewRequest{BookingID: "b-1", Rating: 2},
			setupMock: func(repo *reviewMocks.MockReview, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), filter).Return(model.Review{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invalid rating",
			req:       dto.SaveReviewRequest{BookingID: "b-1", Rating: 9},
			setupMock: func(*reviewMocks.MockReview, *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Update(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "r-1", res.ID)
			assert.Equal(t, 2, res.Rating)
			assert.Equal(t, "Long wait", res.ReviewText)
		})
	}
}

func TestReviewService_GetByBooking(t *testing.T) {
	t.Run("not reviewed yet returns nil", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{}, nil)

		res, err := svc.GetByBooking(context.Background(), "b-2")

		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("reviewed", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().
			Get(gomock.Any(), gDto.Where(gDto.Eq(model.TableName, model.FieldBookingID, "b-1"))).
			Return(storedReview(), nil)

		res, err := svc.GetByBooking(context.Background(), "b-1")

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 4, res.Rating)
	})

	t.Run("blank booking id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.GetByBooking(context.Background(), " ")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReviewService_ListByStore(t *testing.T) {
	t.Run("newest first from the repository", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), "review:gets:viewraum", gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().
			GetAll(gomock.Any(),
				gDto.SortedBy(gDto.SortDirDesc, "created_at"),
				gDto.Where(gDto.Eq(model.TableName, model.FieldStoreID, "viewraum"))).
			Return([]model.Review{storedReview()}, nil)
		cache.EXPECT().Save(gomock.Any(), "review:gets:viewraum", gomock.Any(), 3600).Return(nil)

		res, err := svc.ListByStore(context.Background(), "ViewRaum")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "b-1", res[0].BookingID)
	})

	t.Run("blank store id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.ListByStore(context.Background(), "")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
