package webhook

//go:generate go run go.uber.org/mock/mockgen -source=./webhook.go -destination=./mocks/webhook_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"eyeslot/config"
	"eyeslot/infras/otel"
	"eyeslot/shared/constant"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// maxErrorBody bounds how much of a failing response is copied into the error.
const maxErrorBody = 512

// Client posts JSON documents to spreadsheet automation endpoints.
type Client interface {
	Post(ctx context.Context, url string, payload any) error
}

type clientImpl struct {
	http *http.Client
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return NewWithHTTPClient(&http.Client{
		Timeout: time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second,
	}, otel)
}

func NewWithHTTPClient(httpClient *http.Client, otel otel.Otel) Client {
	return &clientImpl{
		http: httpClient,
		otel: otel,
	}
}

func (c *clientImpl) Post(ctx context.Context, url string, payload any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".webhook.Post")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute("http.status_code", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return fmt.Errorf("webhook responded with status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	log.Debug().Int("status", resp.StatusCode).Msg("webhook delivered")

	return nil
}
