package testutil

import (
	"context"

	"github.com/leaseflow/leaseflow/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxTenantID, types.DefaultTenantID)
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}

// SetupContextForTenant returns a request context scoped to the given tenant.
func SetupContextForTenant(tenantID int64) context.Context {
	return types.SetTenantID(SetupContext(), tenantID)
}
