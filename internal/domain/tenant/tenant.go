// Package tenant transporta el tenant activo de la petición a través del
// context.Context. Reemplaza el patrón ThreadLocal: el valor vive y muere
// con el contexto de cada petición, nunca en una variable global.
package tenant

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

type ctxKey struct{}

// WithTenant devuelve un contexto hijo con el tenant activo.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

// FromContext devuelve el tenant activo. Si no hay tenant en el contexto es
// un error de programación: falla rápido con ErrTenantMissing en lugar de
// consultar todos los tenants en silencio.
func FromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", domain.ErrTenantMissing
	}
	return id, nil
}
