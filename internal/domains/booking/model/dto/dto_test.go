package dto_test

import (
	"eyeslot/internal/domains/booking/model"
	"eyeslot/internal/domains/booking/model/dto"
	prescriptionModel "eyeslot/internal/domains/prescription/model"
	gModel "eyeslot/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	data := &prescriptionModel.Data{RightEye: prescriptionModel.Eye{Spherical: "-1.00"}}

	tests := []struct {
		name             string
		req              dto.CreateBookingRequest
		wantPrescription *prescriptionModel.Data
		wantLensType     string
		wantErr          bool
	}{
		{
			name: "normalises contact fields",
			req: dto.CreateBookingRequest{
				UserName: " Jane ", Email: " Jane@X.com ", Phone: "+82-10-1111-2222 ",
				StoreID: "Viewraum", VisitDate: "2099-01-01", VisitTime: "14:00",
			},
		},
		{
			name: "keeps a filled prescription and the selected power type",
			req: dto.CreateBookingRequest{
				UserName: "Jane", Email: "jane@x.com", Phone: "1", StoreID: "viewraum",
				VisitDate: "2099-01-01", VisitTime: "14:00",
				Prescription:         data,
				SelectedPrescription: &dto.SelectedPrescription{PowerType: "myopia"},
			},
			wantPrescription: data,
			wantLensType:     "myopia",
		},
		{
			name: "drops an empty prescription, explicit lens type wins",
			req: dto.CreateBookingRequest{
				UserName: "Jane", Email: "jane@x.com", Phone: "1", StoreID: "viewraum",
				VisitDate: "2099-01-01", VisitTime: "14:00",
				Prescription:         &prescriptionModel.Data{},
				SelectedPrescription: &dto.SelectedPrescription{PowerType: "myopia"},
				LensType:             "progressive",
			},
			wantLensType: "progressive",
		},
		{
			name:    "invalid date",
			req:     dto.CreateBookingRequest{VisitDate: "01/01/2099"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, booking.ID)
			assert.Equal(t, "Jane", booking.UserName)
			assert.Equal(t, "jane@x.com", booking.Email)
			assert.Equal(t, "viewraum", booking.StoreID)
			assert.Equal(t, gModel.NewDate(2099, 1, 1), booking.VisitDate)
			assert.Equal(t, model.StatusBooked, booking.Status)
			assert.Equal(t, tt.wantPrescription, booking.Prescription)
			assert.Equal(t, tt.wantLensType, booking.LensType)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	res := dto.BookingResponse{}
	res.FromModel(model.Booking{ID: "b-1", VisitDate: gModel.NewDate(2099, 1, 1), VisitTime: "09:30", Status: model.StatusBooked})

	assert.Equal(t, "2099-01-01", res.VisitDate)
	assert.Equal(t, "09:30", res.VisitTime)
	assert.Nil(t, res.Prescription)
}
