package prescription_test

import (
	otelMocks "eyeslot/infras/otel/mocks"
	prescriptionMocks "eyeslot/internal/domains/prescription/mocks"
	"eyeslot/internal/domains/prescription/model/dto"
	"eyeslot/internal/handlers/prescription"
	"eyeslot/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *prescriptionMocks.MockPrescriptionService) {
	t.Helper()

	mockService := prescriptionMocks.NewMockPrescriptionService(gomock.NewController(t))
	handler := prescription.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, mockService
}

const createBody = `{
	"user_email": "jane@x.com",
	"name": "Reading glasses",
	"power_type": "myopia",
	"prescription_data": {
		"rightEye": {"spherical": "-1.25", "cylindrical": "-0.50", "axis": "180"},
		"leftEye": {"spherical": "-1.00", "cylindrical": "-0.25", "axis": "170"}
	}
}`

func TestHandler(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(svc *prescriptionMocks.MockPrescriptionService)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "list in client shape",
			method: http.MethodGet,
			target: "/v1/prescriptions/?user_email=jane@x.com",
			setupMock: func(svc *prescriptionMocks.MockPrescriptionService) {
				svc.EXPECT().List(gomock.Any(), "jane@x.com").
					Return([]dto.PrescriptionResponse{{ID: "p-1", PowerType: "myopia", SavedDate: "2025-03-14"}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"savedDate":"2025-03-14"`,
		},
		{
			name:   "create reads the storage shape",
			method: http.MethodPost,
			target: "/v1/prescriptions/",
			body:   createBody,
			setupMock: func(svc *prescriptionMocks.MockPrescriptionService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Cond(func(x any) bool {
						req, ok := x.(dto.CreatePrescriptionRequest)

						return ok && req.PowerType == "myopia" && req.PrescriptionData.RightEye.Axis == "180"
					})).
					Return(dto.PrescriptionResponse{ID: "p-1"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "create without name",
			method:    http.MethodPost,
			target:    "/v1/prescriptions/",
			body:      `{"user_email":"jane@x.com","power_type":"myopia","prescription_data":{}}`,
			setupMock: func(*prescriptionMocks.MockPrescriptionService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "update unknown id",
			method: http.MethodPut,
			target: "/v1/prescriptions/",
			body:   strings.Replace(createBody, `"user_email": "jane@x.com"`, `"id": "p-404"`, 1),
			setupMock: func(svc *prescriptionMocks.MockPrescriptionService) {
				svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(dto.PrescriptionResponse{}, failure.NotFound("prescription not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/v1/prescriptions/",
			body:   `{"id":"p-1"}`,
			setupMock: func(svc *prescriptionMocks.MockPrescriptionService) {
				svc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: "Prescription deleted successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
