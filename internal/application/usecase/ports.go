package usecase

import "context"

// MenuCache es el contrato mínimo de caché para la carta compuesta.
// Lo implementa infrastructure/cache (Redis o no-op); la interfaz evita que
// la capa de aplicación dependa del cliente concreto.
type MenuCache interface {
	// Get devuelve el payload cacheado del tenant o (nil, nil) si no hay entrada.
	Get(ctx context.Context, tenantID string) ([]byte, error)
	Set(ctx context.Context, tenantID string, payload []byte) error
	Invalidate(ctx context.Context, tenantID string) error
	// InvalidateAll borra la carta de todos los tenants (post-reload del loader).
	InvalidateAll(ctx context.Context) error
}
