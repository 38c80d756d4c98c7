package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"context"
	"errors"
	"eyeslot/config"
	"eyeslot/infras/kafka"
	"eyeslot/infras/otel"
	"eyeslot/infras/webhook"
	"eyeslot/internal/domains/booking/model"
	prescriptionModel "eyeslot/internal/domains/prescription/model"
	"eyeslot/shared/constant"
	"eyeslot/stores"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Payload is the flattened row appended to a store's reservation spreadsheet.
type Payload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	VisitDate   string `json:"visit_date"`
	VisitTime   string `json:"visit_time"`
	RequestNote string `json:"request_note"`
	StoreID     string `json:"store_id"`
	Status      string `json:"status"`
	LensType    string `json:"lens_type"`
	RightEye    string `json:"right_eye"`
	LeftEye     string `json:"left_eye"`
}

func NewPayload(booking model.Booking, status string) Payload {
	payload := Payload{
		Name:        booking.UserName,
		Email:       booking.Email,
		Phone:       booking.Phone,
		VisitDate:   booking.VisitDate.String(),
		VisitTime:   booking.VisitTime,
		RequestNote: booking.RequestNote,
		StoreID:     booking.StoreID,
		Status:      status,
		LensType:    booking.LensType,
	}

	if booking.Prescription != nil {
		payload.RightEye = formatEye(booking.Prescription.RightEye)
		payload.LeftEye = formatEye(booking.Prescription.LeftEye)
	}

	return payload
}

// formatEye renders "spherical,cylindrical,axis"; blank values keep their slot.
func formatEye(eye prescriptionModel.Eye) string {
	return fmt.Sprintf("%s,%s,%s", eye.Spherical, eye.Cylindrical, eye.Axis)
}

// Notifier forwards booking lifecycle events to the store's spreadsheet webhook
// and, when configured, the booking event topic. Delivery is best effort: callers
// log the returned error and never fail the booking because of it.
type Notifier interface {
	Send(ctx context.Context, booking model.Booking, status string) error
}

type notifierImpl struct {
	catalog *stores.Catalog
	webhook webhook.Client
	kafka   kafka.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(catalog *stores.Catalog, webhook webhook.Client, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &notifierImpl{
		catalog: catalog,
		webhook: webhook,
		kafka:   kafka,
		cfg:     cfg,
		otel:    otel,
	}
}

func (n *notifierImpl) Send(ctx context.Context, booking model.Booking, status string) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	payload := NewPayload(booking, status)

	scope.SetAttributes(map[string]any{
		"booking.id":     booking.ID,
		"booking.store":  booking.StoreID,
		"booking.status": status,
	})

	var errs []error

	if url := n.catalog.WebhookURL(booking.StoreID); url != "" {
		if err := n.webhook.Post(ctx, url, payload); err != nil {
			errs = append(errs, fmt.Errorf("failed to notify store webhook: %w", err))
		}
	} else {
		log.Warn().Str("store_id", booking.StoreID).Msg("store has no webhook, skipping spreadsheet notification")
	}

	if n.kafka.Enabled() {
		message := kafka.Message{Key: booking.ID, Value: payload}

		if err := n.kafka.SendMessages(ctx, n.cfg.Kafka.BookingTopic, message); err != nil {
			errs = append(errs, fmt.Errorf("failed to publish booking event: %w", err))
		}
	}

	return errors.Join(errs...)
}
