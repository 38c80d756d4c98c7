package service_test

import (
	"context"
	"errors"
	"eyeslot/config"
	"eyeslot/infras/otel/mocks"
	prescriptionMocks "eyeslot/internal/domains/prescription/mocks"
	"eyeslot/internal/domains/prescription/model"
	"eyeslot/internal/domains/prescription/model/dto"
	"eyeslot/internal/domains/prescription/service"
	cacheMocks "eyeslot/shared/cache/mocks"
	gDto "eyeslot/shared/dto"
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

var sampleData = model.Data{
	RightEye: model.Eye{Spherical: "-1.25", Cylindrical: "-0.50", Axis: "180"},
	LeftEye:  model.Eye{Spherical: "-1.00", Cylindrical: "-0.25", Axis: "170"},
}

func newService(t *testing.T) (service.Prescription, *prescriptionMocks.MockPrescription, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := prescriptionMocks.NewMockPrescription(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func storedPrescription() model.Prescription {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, timezone.GetLocation())

	return model.Prescription{
		ID:               "p-1",
		UserEmail:        "jane@x.com",
		Name:             "Reading glasses",
		PowerType:        "myopia",
		PrescriptionData: sampleData,
		Metadata:         gModel.NewMetadata(createdAt),
	}
}

func TestPrescriptionService_List(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(repo *prescriptionMocks.MockPrescription, cache *cacheMocks.MockRedisCache)
		want      []dto.PrescriptionResponse
		wantCode  int
	}{
		{
			name:      "missing email",
			email:     "",
			setupMock: func(*prescriptionMocks.MockPrescription, *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "newest first in client shape",
			email: "Jane@X.com",
			setupMock: func(repo *prescriptionMocks.MockPrescription, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "prescription:gets:jane@x.com", gomock.Any()).Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gDto.SortedBy(gDto.SortDirDesc, "created_at"), gDto.Where(gDto.Eq(model.TableName, model.FieldUserEmail, "jane@x.com"))).
					Return([]model.Prescription{storedPrescription()}, nil)

				cache.EXPECT().Save(gomock.Any(), "prescription:gets:jane@x.com", gomock.Any(), 3600).Return(nil)
			},
			want: []dto.PrescriptionResponse{{
				ID:           "p-1",
				Name:         "Reading glasses",
				PowerType:    "myopia",
				Prescription: sampleData,
				SavedDate:    "2025-03-14",
			}},
		},
		{
			name:  "repository error",
			email: "jane@x.com",
			setupMock: func(repo *prescriptionMocks.MockPrescription, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.List(context.Background(), tt.email)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestPrescriptionService_Create(t *testing.T) {
	svc, repo, cache := newService(t)

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Cond(func(x any) bool {
			p, ok := x.(model.Prescription)

			return ok && p.ID != "" && p.UserEmail == "jane@x.com" && p.PrescriptionData == sampleData
		})).
		Return(nil)

	cache.EXPECT().Delete(gomock.Any(), "prescription:gets:jane@x.com").Return(nil)

	res, err := svc.Create(context.Background(), dto.CreatePrescriptionRequest{
		UserEmail:        " JANE@x.com",
		Name:             "Daily",
		PowerType:        "myopia",
		PrescriptionData: sampleData,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "myopia", res.PowerType)
	assert.Equal(t, sampleData, res.Prescription)
	assert.Equal(t, timezone.Now().UTC().Format("2006-01-02"), res.SavedDate)
}

func TestPrescriptionService_Update(t *testing.T) {
	req := dto.UpdatePrescriptionRequest{
		ID:               "p-1",
		Name:             "Driving",
		PowerType:        "astigmatism",
		PrescriptionData: model.Data{RightEye: model.Eye{Spherical: "-2.00"}},
	}

	tests := []struct {
		name      string
		req       dto.UpdatePrescriptionRequest
		setupMock func(repo *prescriptionMocks.MockPrescription, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "updates existing",
			req:  req,
			setupMock: func(repo *prescriptionMocks.MockPrescription, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPrescription(), nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Cond(func(x any) bool {
						fields, ok := x.(map[string]any)

						return ok && fields["name"] == "Driving" && fields["power_type"] == "astigmatism"
					}), gomock.Any()).
					Return(nil)
				cache.EXPECT().Delete(gomock.Any(), "prescription:gets:jane@x.com").Return(nil)
			},
		},
		{
			name: "missing id",
			req:  dto.UpdatePrescriptionRequest{},
			setupMock: func(*prescriptionMocks.MockPrescription, *cacheMocks.MockRedisCache) {
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  req,
			setupMock: func(repo *prescriptionMocks.MockPrescription, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Prescription{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			req:  req,
			setupMock: func(repo *prescriptionMocks.MockPrescription, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPrescription(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
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
			assert.Equal(t, "Driving", res.Name)
			assert.Equal(t, "astigmatism", res.PowerType)
			assert.Equal(t, tt.req.PrescriptionData, res.Prescription)
			assert.Equal(t, "2025-03-14", res.SavedDate)
		})
	}
}

func TestPrescriptionService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *prescriptionMocks.MockPrescription, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "deletes existing",
			id:   "p-1",
			setupMock: func(repo *prescriptionMocks.MockPrescription, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedPrescription(), nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Delete(gomock.Any(), "prescription:gets:jane@x.com").Return(nil)
			},
		},
		{
			name:      "missing id",
			id:        " ",
			setupMock: func(*prescriptionMocks.MockPrescription, *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   "p-404",
			setupMock: func(repo *prescriptionMocks.MockPrescription, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Prescription{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
