package model

import (
	prescriptionModel "eyeslot/internal/domains/prescription/model"
	"eyeslot/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldStoreID   = "store_id"
	FieldVisitDate = "visit_date"
	FieldVisitTime = "visit_time"
	FieldStatus    = "status"
)

// Rows are always BOOKED; a cancellation deletes the row and CANCELLED only reaches the store notification.
const (
	StatusBooked    = "BOOKED"
	StatusCancelled = "CANCELLED"
)

type Booking struct {
	ID           string                  `db:"id"`
	UserName     string                  `db:"user_name"`
	Email        string                  `db:"email"`
	Phone        string                  `db:"phone"`
	StoreID      string                  `db:"store_id"`
	VisitDate    model.Date              `db:"visit_date"`
	VisitTime    string                  `db:"visit_time"`
	RequestNote  string                  `db:"request_note"`
	Prescription *prescriptionModel.Data `db:"prescription"`
	LensType     string                  `db:"lens_type"`
	Status       string                  `db:"status"`
	model.Metadata
}
