package mocks

import (
	"context"
	"eyeslot/infras/otel"
)

type otelImpl struct {
}

// NewScope implements otel.Otel without starting a span.
func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// NewOtel returns a tracer that records nothing, for use in unit tests.
func NewOtel() otel.Otel {
	return &otelImpl{}
}
