package dto

import (
	"eyeslot/internal/domains/review/model"
	"eyeslot/shared/constant"
	gDto "eyeslot/shared/dto"
	gModel "eyeslot/shared/model"
	"eyeslot/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type SaveReviewRequest struct {
	BookingID  string `json:"booking_id"  validate:"required"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text" validate:"max=2000"`
	StoreID    string `json:"store_id"    validate:"max=50"`
}

func (r *SaveReviewRequest) ToModel() model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		BookingID:  strings.TrimSpace(r.BookingID),
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		StoreID:    strings.ToLower(strings.TrimSpace(r.StoreID)),
		Metadata:   gModel.NewMetadata(timezone.Now()),
	}
}

// Fields returns the columns an update overwrites.
func (r *SaveReviewRequest) Fields() map[string]any {
	return map[string]any{
		model.FieldRating:       r.Rating,
		model.FieldReviewText:   r.ReviewText,
		model.FieldStoreID:      strings.ToLower(strings.TrimSpace(r.StoreID)),
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

func (r *SaveReviewRequest) Apply(review model.Review) model.Review {
	review.Rating = r.Rating
	review.ReviewText = r.ReviewText
	review.StoreID = strings.ToLower(strings.TrimSpace(r.StoreID))
	review.UpdatedAt = timezone.Now()

	return review
}

// Valid reports whether the rating is on the one to five star scale.
func (r *SaveReviewRequest) Valid() bool {
	return strings.TrimSpace(r.BookingID) != constant.Empty &&
		r.Rating >= model.MinRating && r.Rating <= model.MaxRating
}

type ReviewResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	StoreID    string `json:"store_id"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(review model.Review) {
	r.ID = review.ID
	r.BookingID = review.BookingID
	r.Rating = review.Rating
	r.ReviewText = review.ReviewText
	r.StoreID = review.StoreID
	r.Metadata.FromModel(review.Metadata)
}

func FromModels(reviews []model.Review) []ReviewResponse {
	res := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		res[i].FromModel(review)
	}

	return res
}
