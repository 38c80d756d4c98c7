package mocks

import "eyeslot/infras/otel"

// scopeImpl discards everything it is given.
type scopeImpl struct{}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) AddEventWithAttributes(_ string, _ map[string]any) {}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}

func (s *scopeImpl) TraceError(_ error) {}

func (s *scopeImpl) TraceIfError(_ error) {}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
