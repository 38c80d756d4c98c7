package model

import "eyeslot/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldRating     = "rating"
	FieldReviewText = "review_text"
	FieldStoreID    = "store_id"

	MinRating = 1
	MaxRating = 5
)

// Review is unique per booking; the reviews table enforces it with a unique index.
type Review struct {
	ID         string `db:"id"`
	BookingID  string `db:"booking_id"`
	Rating     int    `db:"rating"`
	ReviewText string `db:"review_text"`
	StoreID    string `db:"store_id"`
	model.Metadata
}
