package dto

import (
	"eyeslot/internal/domains/prescription/model"
	"eyeslot/shared/constant"
	gModel "eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

// Requests use the snake_case storage names; responses use the camelCase names of the web client.

type CreatePrescriptionRequest struct {
	UserEmail        string     `json:"user_email"        validate:"required,mailbox,max=255"`
	Name             string     `json:"name"              validate:"required,max=100"`
	PowerType        string     `json:"power_type"        validate:"required,max=50"`
	PrescriptionData model.Data `json:"prescription_data" validate:"required"`
}

func (r *CreatePrescriptionRequest) ToModel() model.Prescription {
	return model.Prescription{
		ID:               uuid.NewString(),
		UserEmail:        strings.ToLower(strings.TrimSpace(r.UserEmail)),
		Name:             strings.TrimSpace(r.Name),
		PowerType:        r.PowerType,
		PrescriptionData: r.PrescriptionData,
		Metadata:         gModel.NewMetadata(timezone.Now()),
	}
}

type UpdatePrescriptionRequest struct {
	ID               string     `json:"id"                validate:"required"`
	Name             string     `json:"name"              validate:"required,max=100"`
	PowerType        string     `json:"power_type"        validate:"required,max=50"`
	PrescriptionData model.Data `json:"prescription_data" validate:"required"`
}

// Fields returns the columns an update overwrites.
func (r *UpdatePrescriptionRequest) Fields() map[string]any {
	return map[string]any{
		model.FieldName:             strings.TrimSpace(r.Name),
		model.FieldPowerType:        r.PowerType,
		model.FieldPrescriptionData: r.PrescriptionData,
		constant.FieldUpdatedAt:     timezone.Now(),
	}
}

func (r *UpdatePrescriptionRequest) Apply(prescription model.Prescription) model.Prescription {
	prescription.Name = strings.TrimSpace(r.Name)
	prescription.PowerType = r.PowerType
	prescription.PrescriptionData = r.PrescriptionData

	return prescription
}

type DeletePrescriptionRequest struct {
	ID string `json:"id" validate:"required"`
}

type PrescriptionResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	PowerType    string     `json:"powerType"`
	Prescription model.Data `json:"prescription"`
	SavedDate    string     `json:"savedDate"`
}

func (r *PrescriptionResponse) FromModel(prescription model.Prescription) {
	r.ID = prescription.ID
	r.Name = prescription.Name
	r.PowerType = prescription.PowerType
	r.Prescription = prescription.PrescriptionData
	// savedDate is the UTC calendar day of created_at.
	r.SavedDate = prescription.CreatedAt.UTC().Format(constant.CalendarLayout)
}

func FromModels(prescriptions []model.Prescription) []PrescriptionResponse {
	res := make([]PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		res[i].FromModel(prescription)
	}

	return res
}
