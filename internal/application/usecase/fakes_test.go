package usecase_test

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/tenant"
)

// Fakes en memoria para los tests de casos de uso. Corren en una sola
// goroutine, no necesitan sincronización.

func tenantCtx(tenantID string) context.Context {
	return tenant.WithTenant(context.Background(), tenantID)
}

type memComponentRepo struct {
	items map[string]*entity.Component
}

func newMemComponentRepo() *memComponentRepo {
	return &memComponentRepo{items: make(map[string]*entity.Component)}
}

func (r *memComponentRepo) ListByTenant(tenantID string) ([]*entity.Component, error) {
	var out []*entity.Component
	for _, c := range r.items {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memComponentRepo) GetByIDAndTenant(id, tenantID string) (*entity.Component, error) {
	c, ok := r.items[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}

func (r *memComponentRepo) ExistsByNameAndTenant(name, tenantID string) (bool, error) {
	for _, c := range r.items {
		if c.TenantID == tenantID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memComponentRepo) Save(c *entity.Component) error {
	r.items[c.ID] = c
	return nil
}

func (r *memComponentRepo) SaveAll(cs []*entity.Component) error {
	for _, c := range cs {
		r.items[c.ID] = c
	}
	return nil
}

func (r *memComponentRepo) Delete(id, tenantID string) error {
	delete(r.items, id)
	return nil
}

func (r *memComponentRepo) DeleteAll() error {
	r.items = make(map[string]*entity.Component)
	return nil
}

func (r *memComponentRepo) DeleteAllByTenant(tenantID string) error {
	for id, c := range r.items {
		if c.TenantID == tenantID {
			delete(r.items, id)
		}
	}
	return nil
}

type memCategoryRepo struct {
	items map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{items: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) ListByTenant(tenantID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.items {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) GetByIDAndTenant(id, tenantID string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}

func (r *memCategoryRepo) ExistsByNameAndTenant(name, tenantID string) (bool, error) {
	for _, c := range r.items {
		if c.TenantID == tenantID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCategoryRepo) Save(c *entity.Category) error {
	r.items[c.ID] = c
	return nil
}

func (r *memCategoryRepo) SaveAll(cs []*entity.Category) error {
	for _, c := range cs {
		r.items[c.ID] = c
	}
	return nil
}

func (r *memCategoryRepo) Delete(id, tenantID string) error {
	delete(r.items, id)
	return nil
}

func (r *memCategoryRepo) DeleteAll() error {
	r.items = make(map[string]*entity.Category)
	return nil
}

func (r *memCategoryRepo) DeleteAllByTenant(tenantID string) error {
	for id, c := range r.items {
		if c.TenantID == tenantID {
			delete(r.items, id)
		}
	}
	return nil
}

type memItemRepo struct {
	items      map[string]*entity.CategoryItem
	components map[string][]string
	comps      *memComponentRepo
}

func newMemItemRepo(comps *memComponentRepo) *memItemRepo {
	return &memItemRepo{
		items:      make(map[string]*entity.CategoryItem),
		components: make(map[string][]string),
		comps:      comps,
	}
}

func (r *memItemRepo) ListByTenant(tenantID string) ([]*entity.CategoryItem, error) {
	var out []*entity.CategoryItem
	for _, it := range r.items {
		if it.TenantID == tenantID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItemRepo) ListByCategoryAndTenant(categoryID, tenantID string) ([]*entity.CategoryItem, error) {
	var out []*entity.CategoryItem
	for _, it := range r.items {
		if it.TenantID == tenantID && it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItemRepo) GetByIDAndTenant(id, tenantID string) (*entity.CategoryItem, error) {
	it, ok := r.items[id]
	if !ok || it.TenantID != tenantID {
		return nil, nil
	}
	return it, nil
}

func (r *memItemRepo) ExistsByNameAndTenant(name, tenantID string) (bool, error) {
	for _, it := range r.items {
		if it.TenantID == tenantID && it.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memItemRepo) ExistsBySKUAndTenant(sku, tenantID string) (bool, error) {
	for _, it := range r.items {
		if it.TenantID == tenantID && it.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (r *memItemRepo) Save(it *entity.CategoryItem) error {
	r.items[it.ID] = it
	return nil
}

func (r *memItemRepo) SaveAll(its []*entity.CategoryItem) error {
	for _, it := range its {
		r.items[it.ID] = it
	}
	return nil
}

func (r *memItemRepo) ReplaceComponents(itemID string, componentIDs []string) error {
	r.components[itemID] = componentIDs
	return nil
}

func (r *memItemRepo) ListComponents(itemID string) ([]*entity.Component, error) {
	var out []*entity.Component
	for _, id := range r.components[itemID] {
		if c, ok := r.comps.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memItemRepo) Delete(id, tenantID string) error {
	delete(r.items, id)
	delete(r.components, id)
	return nil
}

func (r *memItemRepo) DeleteAll() error {
	r.items = make(map[string]*entity.CategoryItem)
	r.components = make(map[string][]string)
	return nil
}

func (r *memItemRepo) DeleteAllByTenant(tenantID string) error {
	for id, it := range r.items {
		if it.TenantID == tenantID {
			delete(r.items, id)
			delete(r.components, id)
		}
	}
	return nil
}

type memCustomizationRepo struct {
	items      map[string]*entity.CategoryItemCustomization
	components map[string][]string
	comps      *memComponentRepo
}

func newMemCustomizationRepo(comps *memComponentRepo) *memCustomizationRepo {
	return &memCustomizationRepo{
		items:      make(map[string]*entity.CategoryItemCustomization),
		components: make(map[string][]string),
		comps:      comps,
	}
}

func (r *memCustomizationRepo) ListByTenant(tenantID string) ([]*entity.CategoryItemCustomization, error) {
	var out []*entity.CategoryItemCustomization
	for _, c := range r.items {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCustomizationRepo) ListByItemAndTenant(itemID, tenantID string) ([]*entity.CategoryItemCustomization, error) {
	var out []*entity.CategoryItemCustomization
	for _, c := range r.items {
		if c.TenantID == tenantID && c.CategoryItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCustomizationRepo) GetByIDAndTenant(id, tenantID string) (*entity.CategoryItemCustomization, error) {
	c, ok := r.items[id]
	if !ok || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}

func (r *memCustomizationRepo) Save(c *entity.CategoryItemCustomization) error {
	r.items[c.ID] = c
	return nil
}

func (r *memCustomizationRepo) SaveAll(cs []*entity.CategoryItemCustomization) error {
	for _, c := range cs {
		r.items[c.ID] = c
	}
	return nil
}

func (r *memCustomizationRepo) ReplaceComponents(customizationID string, componentIDs []string) error {
	r.components[customizationID] = componentIDs
	return nil
}

func (r *memCustomizationRepo) ListComponents(customizationID string) ([]*entity.Component, error) {
	var out []*entity.Component
	for _, id := range r.components[customizationID] {
		if c, ok := r.comps.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCustomizationRepo) Delete(id, tenantID string) error {
	delete(r.items, id)
	delete(r.components, id)
	return nil
}

func (r *memCustomizationRepo) DeleteAll() error {
	r.items = make(map[string]*entity.CategoryItemCustomization)
	r.components = make(map[string][]string)
	return nil
}

func (r *memCustomizationRepo) DeleteAllByTenant(tenantID string) error {
	for id, c := range r.items {
		if c.TenantID == tenantID {
			delete(r.items, id)
			delete(r.components, id)
		}
	}
	return nil
}

// memCache registra las invalidaciones y permite precargar entradas.
type memCache struct {
	entries        map[string][]byte
	invalidated    []string
	invalidatedAll int
	getErr, setErr error
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, tenantID string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[tenantID], nil
}

func (c *memCache) Set(ctx context.Context, tenantID string, payload []byte) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[tenantID] = payload
	return nil
}

func (c *memCache) Invalidate(ctx context.Context, tenantID string) error {
	delete(c.entries, tenantID)
	c.invalidated = append(c.invalidated, tenantID)
	return nil
}

func (c *memCache) InvalidateAll(ctx context.Context) error {
	c.entries = make(map[string][]byte)
	c.invalidatedAll++
	return nil
}
