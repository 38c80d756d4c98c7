package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"eyeslot/config"
	"eyeslot/infras/kafka"
	kafkaMocks "eyeslot/infras/kafka/mocks"
	otelMocks "eyeslot/infras/otel/mocks"
	webhookMocks "eyeslot/infras/webhook/mocks"
	"eyeslot/internal/domains/booking/model"
	"eyeslot/internal/domains/booking/notifier"
	prescriptionModel "eyeslot/internal/domains/prescription/model"
	gModel "eyeslot/shared/model"
	"eyeslot/stores"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const catalogYAML = `
stores:
  - id: viewraum
    name: Viewraum
    webhook_url: https://hooks.example.com/viewraum
  - id: oror
    name: Oror
`

func sampleBooking(withPrescription bool) model.Booking {
	booking := model.Booking{
		ID:          "b-1",
		UserName:    "Jane Doe",
		Email:       "jane@x.com",
		Phone:       "010-1234-5678",
		StoreID:     "viewraum",
		VisitDate:   gModel.NewDate(2025, 6, 10),
		VisitTime:   "14:30",
		RequestNote: "Anti-glare coating please",
		Status:      model.StatusBooked,
	}

	if withPrescription {
		booking.LensType = "myopia"
		booking.Prescription = &prescriptionModel.Data{
			RightEye: prescriptionModel.Eye{Spherical: "-1.25", Cylindrical: "-0.50", Axis: "180"},
			LeftEye:  prescriptionModel.Eye{Spherical: "-1.00", Cylindrical: "", Axis: "170"},
		}
	}

	return booking
}

func TestNewPayload(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	tests := []struct {
		name    string
		booking model.Booking
		status  string
	}{
		{name: "booked_with_prescription", booking: sampleBooking(true), status: model.StatusBooked},
		{name: "cancelled_without_prescription", booking: sampleBooking(false), status: model.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.MarshalIndent(notifier.NewPayload(tt.booking, tt.status), "", "  ")
			require.NoError(t, err)

			g.Assert(t, tt.name, append(data, '\n'))
		})
	}
}

func newNotifier(t *testing.T, brokers []string) (notifier.Notifier, *webhookMocks.MockClient, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	catalog, err := stores.Parse([]byte(catalogYAML))
	require.NoError(t, err)

	mockWebhook := webhookMocks.NewMockClient(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Brokers = brokers
	cfg.Kafka.BookingTopic = "booking-events"

	return notifier.New(catalog, mockWebhook, mockKafka, cfg, otelMocks.NewOtel()), mockWebhook, mockKafka
}

func TestNotifier_Send(t *testing.T) {
	tests := []struct {
		name      string
		storeID   string
		setupMock func(hook *webhookMocks.MockClient, queue *kafkaMocks.MockClient)
		wantErr   string
	}{
		{
			name:    "store webhook receives payload",
			storeID: "viewraum",
			setupMock: func(hook *webhookMocks.MockClient, queue *kafkaMocks.MockClient) {
				hook.EXPECT().
					Post(gomock.Any(), "https://hooks.example.com/viewraum", gomock.Cond(func(x any) bool {
						p, ok := x.(notifier.Payload)

						return ok && p.Status == model.StatusBooked && p.RightEye == "-1.25,-0.50,180"
					})).
					Return(nil)
				queue.EXPECT().Enabled().Return(false)
			},
		},
		{
			name:    "store without webhook is skipped",
			storeID: "oror",
			setupMock: func(_ *webhookMocks.MockClient, queue *kafkaMocks.MockClient) {
				queue.EXPECT().Enabled().Return(false)
			},
		},
		{
			name:    "event published when kafka is enabled",
			storeID: "oror",
			setupMock: func(_ *webhookMocks.MockClient, queue *kafkaMocks.MockClient) {
				queue.EXPECT().Enabled().Return(true)
				queue.EXPECT().
					SendMessages(gomock.Any(), "booking-events", gomock.Cond(func(x any) bool {
						m, ok := x.(kafka.Message)

						return ok && m.Key == "b-1"
					})).
					Return(nil)
			},
		},
		{
			name:    "webhook and kafka failures are joined",
			storeID: "viewraum",
			setupMock: func(hook *webhookMocks.MockClient, queue *kafkaMocks.MockClient) {
				hook.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("status 500"))
				queue.EXPECT().Enabled().Return(true)
				queue.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: "failed to notify store webhook: status 500\nfailed to publish booking event: broker down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, hook, queue := newNotifier(t, []string{"localhost:9092"})
			tt.setupMock(hook, queue)

			booking := sampleBooking(true)
			booking.StoreID = tt.storeID

			err := n.Send(context.Background(), booking, model.StatusBooked)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
