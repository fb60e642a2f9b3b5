package types

import (
	"context"
	"fmt"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID     ContextKey = "ctx_request_id"
	CtxTenantID      ContextKey = "ctx_tenant_id"
	CtxDBTransaction ContextKey = "ctx_db_transaction"

	// DefaultTenantID is the tenant used when none is resolved, e.g. in tests
	DefaultTenantID int64 = 1

	HeaderRequestID = "X-Request-ID"
	HeaderTenantID  = "X-Tenant-ID"
)

// GetTenantID returns the tenant scoping the current request, or 0 when the
// context carries none.
func GetTenantID(ctx context.Context) int64 {
	if tenantID, ok := ctx.Value(CtxTenantID).(int64); ok {
		return tenantID
	}
	return 0
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetTenantID sets the tenant ID in the context
func SetTenantID(ctx context.Context, tenantID int64) context.Context {
	return context.WithValue(ctx, CtxTenantID, tenantID)
}

// ValidateTenantContext validates that the required tenant context is present
func ValidateTenantContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context is nil")
	}

	if GetTenantID(ctx) == 0 {
		return fmt.Errorf("no tenant context found in context")
	}

	return nil
}
