package dto

import (
	"eyeslot/internal/domains/booking/model"
	prescriptionModel "eyeslot/internal/domains/prescription/model"
	gDto "eyeslot/shared/dto"
	gModel "eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

// SelectedPrescription is the saved prescription the customer picked on the booking form.
type SelectedPrescription struct {
	PowerType string `json:"powerType" validate:"max=50"`
}

type CreateBookingRequest struct {
	UserName             string                  `json:"user_name"            validate:"required,max=100"`
	Email                string                  `json:"email"                validate:"required,mailbox,max=255"`
	Phone                string                  `json:"phone"                validate:"required,max=30"`
	StoreID              string                  `json:"store_id"             validate:"required,max=50"`
	VisitDate            string                  `json:"visit_date"           validate:"required,calendar"`
	VisitTime            string                  `json:"visit_time"           validate:"required,clock"`
	RequestNote          string                  `json:"request_note"         validate:"max=1000"`
	Prescription         *prescriptionModel.Data `json:"prescription"`
	SelectedPrescription *SelectedPrescription   `json:"selectedPrescription"`
	LensType             string                  `json:"lens_type"            validate:"max=50"`
}

func (r *CreateBookingRequest) ToModel() (model.Booking, error) {
	visitDate, err := gModel.ParseDate(r.VisitDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	var prescription *prescriptionModel.Data
	if r.Prescription != nil && !r.Prescription.IsZero() {
		prescription = r.Prescription
	}

	return model.Booking{
		ID:           uuid.NewString(),
		UserName:     strings.TrimSpace(r.UserName),
		Email:        NormalizeEmail(r.Email),
		Phone:        strings.TrimSpace(r.Phone),
		StoreID:      strings.ToLower(strings.TrimSpace(r.StoreID)),
		VisitDate:    visitDate,
		VisitTime:    r.VisitTime,
		RequestNote:  r.RequestNote,
		Prescription: prescription,
		LensType:     r.lensType(),
		Status:       model.StatusBooked,
		Metadata:     gModel.NewMetadata(timezone.Now()),
	}, nil
}

// lensType prefers the explicit field and falls back to the selected prescription's power type.
func (r *CreateBookingRequest) lensType() string {
	if r.LensType != "" {
		return r.LensType
	}

	if r.SelectedPrescription != nil {
		return r.SelectedPrescription.PowerType
	}

	return ""
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type CancelBookingRequest struct {
	ID string `json:"id" validate:"required"`
}

type BookingResponse struct {
	ID           string                  `json:"id"`
	UserName     string                  `json:"user_name"`
	Email        string                  `json:"email"`
	Phone        string                  `json:"phone"`
	StoreID      string                  `json:"store_id"`
	VisitDate    string                  `json:"visit_date"`
	VisitTime    string                  `json:"visit_time"`
	RequestNote  string                  `json:"request_note"`
	Prescription *prescriptionModel.Data `json:"prescription"`
	LensType     string                  `json:"lens_type"`
	Status       string                  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.UserName = booking.UserName
	r.Email = booking.Email
	r.Phone = booking.Phone
	r.StoreID = booking.StoreID
	r.VisitDate = booking.VisitDate.String()
	r.VisitTime = booking.VisitTime
	r.RequestNote = booking.RequestNote
	r.Prescription = booking.Prescription
	r.LensType = booking.LensType
	r.Status = booking.Status
	r.Metadata.FromModel(booking.Metadata)
}

func FromModels(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res
}
