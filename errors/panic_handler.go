package errors

import (
	"context"
)

// PanicHandler is the interface used to create custom panic errors.
type PanicHandler interface {
	MakePanicError(ctx context.Context, value interface{}) *QueryError
}

// DefaultPanicHandler is the default PanicHandler.
type DefaultPanicHandler struct{}

// MakePanicError creates a new QueryError from a panic that occurred during analysis.
func (h *DefaultPanicHandler) MakePanicError(ctx context.Context, value interface{}) *QueryError {
	return Errorf("panic occurred: %v", value).WithRule(RuleInternal)
}
