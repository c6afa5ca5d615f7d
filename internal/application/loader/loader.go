// Package loader reconstruye el grafo completo del catálogo a partir del
// documento fuente plano. Las referencias entre registros son por nombre
// dentro del tenant de cada registro; el loader las resuelve a identidades
// en orden topológico fijo: components → categories → items →
// customizations. Registros malformados o con referencias rotas se
// descartan con warning y NUNCA abortan la corrida (política best-effort
// del sistema original).
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// key es la clave compuesta tenant+nombre de los lookups en memoria.
// Tipo explícito en lugar de concatenar strings: un nombre con ":" no
// puede colisionar con otro tenant.
type key struct {
	tenantID string
	name     string
}

// Result cuenta lo cargado y lo descartado por corrida. El loader no decide
// si un conteo bajo es un fallo operativo: eso es del caller.
type Result struct {
	Components     int
	Categories     int
	Items          int
	Customizations int
	Skipped        int
}

// TxRunner abre la transacción dentro de la que corren las fases de carga
// (lo implementa postgres.TxRunner).
type TxRunner interface {
	RunCatalogue(ctx context.Context, fn func(
		compRepo repository.ComponentRepository,
		catRepo repository.CategoryRepository,
		itemRepo repository.CategoryItemRepository,
		custRepo repository.CustomizationRepository,
	) error) error
}

// Invalidator borra las cartas cacheadas después de un reload.
type Invalidator interface {
	InvalidateAll(ctx context.Context) error
}

// Loader carga el catálogo completo. No está diseñado para invocaciones
// concurrentes: dos corridas simultáneas compiten en la fase de reset y el
// caller debe serializarlas (una operación administrativa a la vez).
type Loader struct {
	tx       TxRunner
	compRepo repository.ComponentRepository
	catRepo  repository.CategoryRepository
	itemRepo repository.CategoryItemRepository
	custRepo repository.CustomizationRepository
	cache    Invalidator
	log      *logger.Logger
}

// New construye el loader. Los repos recibidos van atados al pool y solo se
// usan en la fase de reset (best-effort, fuera de transacción); las fases
// de carga corren sobre repos atados a la tx que abre el TxRunner.
func New(
	tx TxRunner,
	compRepo repository.ComponentRepository,
	catRepo repository.CategoryRepository,
	itemRepo repository.CategoryItemRepository,
	custRepo repository.CustomizationRepository,
	cache Invalidator,
	log *logger.Logger,
) *Loader {
	return &Loader{tx: tx, compRepo: compRepo, catRepo: catRepo, itemRepo: itemRepo, custRepo: custRepo, cache: cache, log: log}
}

// LoadFile lee el documento fuente desde disco y lo carga. No poder leer o
// parsear el documento es fatal (no hay nada que cargar); a partir de ahí
// aplica la política por registro de Load.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer documento fuente: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsear documento fuente: %w", err)
	}
	return l.Load(ctx, doc)
}

// Load vacía el catálogo y lo reconstruye desde el documento. El reset es
// best-effort por tabla; las cuatro fases de carga corren dentro de UNA
// transacción, y la fase N termina su bulk save (con identidades asignadas)
// antes de que la fase N+1 resuelva referencias. Un fallo de persistencia
// de una fase completa revierte la carga y es fatal.
func (l *Loader) Load(ctx context.Context, doc *Document) (*Result, error) {
	l.reset()

	res := &Result{}
	err := l.tx.RunCatalogue(ctx, func(
		compRepo repository.ComponentRepository,
		catRepo repository.CategoryRepository,
		itemRepo repository.CategoryItemRepository,
		custRepo repository.CustomizationRepository,
	) error {
		compMap, err := l.loadComponents(doc.Components, compRepo, res)
		if err != nil {
			return err
		}
		catMap, err := l.loadCategories(doc.Categories, catRepo, res)
		if err != nil {
			return err
		}
		itemMap, err := l.loadItems(doc.CategoryItems, catMap, compMap, itemRepo, res)
		if err != nil {
			return err
		}
		return l.loadCustomizations(doc.CategoryItemCustomizations, itemMap, compMap, custRepo, res)
	})
	if err != nil {
		return nil, err
	}

	if err := l.cache.InvalidateAll(ctx); err != nil {
		l.log.Warn().Err(err).Msg("invalidación de caché de menú tras reload falló")
	}

	l.log.Info().
		Int("components", res.Components).
		Int("categories", res.Categories).
		Int("items", res.Items).
		Int("customizations", res.Customizations).
		Int("skipped", res.Skipped).
		Msg("catálogo cargado")
	return res, nil
}

// reset borra el catálogo en orden inverso de dependencias:
// customizations → items → categories → components. Cada paso es
// independiente: un fallo se registra y no impide limpiar el resto.
func (l *Loader) reset() {
	l.log.Info().Msg("limpiando catálogo existente")
	if err := l.custRepo.DeleteAll(); err != nil {
		l.log.Warn().Err(err).Msg("error limpiando customizations")
	}
	if err := l.itemRepo.DeleteAll(); err != nil {
		l.log.Warn().Err(err).Msg("error limpiando items")
	}
	if err := l.catRepo.DeleteAll(); err != nil {
		l.log.Warn().Err(err).Msg("error limpiando categorías")
	}
	if err := l.compRepo.DeleteAll(); err != nil {
		l.log.Warn().Err(err).Msg("error limpiando componentes")
	}
}

func (l *Loader) loadComponents(raw []json.RawMessage, repo repository.ComponentRepository, res *Result) (map[key]*entity.Component, error) {
	lookup := make(map[key]*entity.Component)
	valid := make([]*entity.Component, 0, len(raw))
	now := time.Now()
	for _, rawRec := range raw {
		var rec componentRecord
		if err := json.Unmarshal(rawRec, &rec); err != nil {
			l.skip("componente", "", err, res)
			continue
		}
		if err := rec.validate(); err != nil {
			l.skip("componente", rec.Name, err, res)
			continue
		}
		k := key{rec.TenantID, rec.Name}
		if _, dup := lookup[k]; dup {
			l.skip("componente", rec.Name, fmt.Errorf("duplicado en el documento para tenant %s", rec.TenantID), res)
			continue
		}
		c := &entity.Component{
			ID:           uuid.New().String(),
			TenantID:     rec.TenantID,
			Name:         rec.Name,
			Description:  rec.Description,
			Cost:         *rec.Cost,
			IsAllergenic: rec.IsAllergenic,
			AllergenInfo: rec.AllergenInfo,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		valid = append(valid, c)
		lookup[k] = c
	}
	if err := repo.SaveAll(valid); err != nil {
		return nil, fmt.Errorf("persistir componentes: %w", err)
	}
	res.Components = len(valid)
	return lookup, nil
}

func (l *Loader) loadCategories(raw []json.RawMessage, repo repository.CategoryRepository, res *Result) (map[key]*entity.Category, error) {
	lookup := make(map[key]*entity.Category)
	valid := make([]*entity.Category, 0, len(raw))
	now := time.Now()
	for _, rawRec := range raw {
		var rec categoryRecord
		if err := json.Unmarshal(rawRec, &rec); err != nil {
			l.skip("categoría", "", err, res)
			continue
		}
		if err := rec.validate(); err != nil {
			l.skip("categoría", rec.Name, err, res)
			continue
		}
		k := key{rec.TenantID, rec.Name}
		if _, dup := lookup[k]; dup {
			l.skip("categoría", rec.Name, fmt.Errorf("duplicada en el documento para tenant %s", rec.TenantID), res)
			continue
		}
		c := &entity.Category{
			ID:           uuid.New().String(),
			TenantID:     rec.TenantID,
			Name:         rec.Name,
			Description:  rec.Description,
			DisplayOrder: rec.DisplayOrder,
			Active:       rec.Active == nil || *rec.Active,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		valid = append(valid, c)
		lookup[k] = c
	}
	if err := repo.SaveAll(valid); err != nil {
		return nil, fmt.Errorf("persistir categorías: %w", err)
	}
	res.Categories = len(valid)
	return lookup, nil
}

func (l *Loader) loadItems(
	raw []json.RawMessage,
	catMap map[key]*entity.Category,
	compMap map[key]*entity.Component,
	repo repository.CategoryItemRepository,
	res *Result,
) (map[key]*entity.CategoryItem, error) {
	// Primera pasada: construir y persistir los items cuya categoría
	// resuelve. Un item con categoría desconocida se descarta completo.
	parsed := make([]categoryItemRecord, 0, len(raw))
	for _, rawRec := range raw {
		var rec categoryItemRecord
		if err := json.Unmarshal(rawRec, &rec); err != nil {
			l.skip("item", "", err, res)
			continue
		}
		if err := rec.validate(); err != nil {
			l.skip("item", rec.Name, err, res)
			continue
		}
		parsed = append(parsed, rec)
	}

	lookup := make(map[key]*entity.CategoryItem)
	valid := make([]*entity.CategoryItem, 0, len(parsed))
	now := time.Now()
	for _, rec := range parsed {
		category, ok := catMap[key{rec.TenantID, rec.CategoryName}]
		if !ok {
			l.skip("item", rec.Name, fmt.Errorf("categoría %q no encontrada para tenant %s", rec.CategoryName, rec.TenantID), res)
			continue
		}
		k := key{rec.TenantID, rec.Name}
		if _, dup := lookup[k]; dup {
			l.skip("item", rec.Name, fmt.Errorf("duplicado en el documento para tenant %s", rec.TenantID), res)
			continue
		}
		it := &entity.CategoryItem{
			ID:           uuid.New().String(),
			TenantID:     rec.TenantID,
			CategoryID:   category.ID,
			Name:         rec.Name,
			Description:  rec.Description,
			BasePrice:    *rec.BasePrice,
			ImageURL:     rec.ImageURL,
			SKU:          rec.SKU,
			DisplayOrder: rec.DisplayOrder,
			Active:       rec.Active == nil || *rec.Active,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		valid = append(valid, it)
		lookup[k] = it
	}
	if err := repo.SaveAll(valid); err != nil {
		return nil, fmt.Errorf("persistir items: %w", err)
	}
	res.Items = len(valid)

	// Segunda pasada: resolver los ingredientes declarados por nombre.
	// Un nombre que no resuelve descarta SOLO esa asociación; el item queda.
	for _, rec := range parsed {
		item, ok := lookup[key{rec.TenantID, rec.Name}]
		if !ok {
			continue // descartado en la primera pasada
		}
		ids := l.resolveComponentNames(rec.TenantID, item.Name, rec.Components, compMap)
		if len(ids) == 0 {
			continue
		}
		if err := repo.ReplaceComponents(item.ID, ids); err != nil {
			return nil, fmt.Errorf("asociar componentes del item %s: %w", item.Name, err)
		}
	}
	return lookup, nil
}

func (l *Loader) loadCustomizations(
	raw []json.RawMessage,
	itemMap map[key]*entity.CategoryItem,
	compMap map[key]*entity.Component,
	repo repository.CustomizationRepository,
	res *Result,
) error {
	type pending struct {
		rec    customizationRecord
		entity *entity.CategoryItemCustomization
	}
	var valid []pending
	now := time.Now()
	for _, rawRec := range raw {
		var rec customizationRecord
		if err := json.Unmarshal(rawRec, &rec); err != nil {
			l.skip("customization", "", err, res)
			continue
		}
		if err := rec.validate(); err != nil {
			l.skip("customization", rec.Name, err, res)
			continue
		}
		item, ok := itemMap[key{rec.TenantID, rec.CategoryItemName}]
		if !ok {
			l.skip("customization", rec.Name, fmt.Errorf("item %q no encontrado para tenant %s", rec.CategoryItemName, rec.TenantID), res)
			continue
		}
		c := &entity.CategoryItemCustomization{
			ID:              uuid.New().String(),
			TenantID:        rec.TenantID,
			CategoryItemID:  item.ID,
			Name:            rec.Name,
			PriceAdjustment: *rec.PriceAdjustment,
			Active:          rec.Active == nil || *rec.Active,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		valid = append(valid, pending{rec: rec, entity: c})
	}

	entities := make([]*entity.CategoryItemCustomization, 0, len(valid))
	for _, p := range valid {
		entities = append(entities, p.entity)
	}
	if err := repo.SaveAll(entities); err != nil {
		return fmt.Errorf("persistir customizations: %w", err)
	}
	res.Customizations = len(valid)

	for _, p := range valid {
		ids := l.resolveComponentNames(p.rec.TenantID, p.entity.Name, p.rec.Components, compMap)
		if len(ids) == 0 {
			continue
		}
		if err := repo.ReplaceComponents(p.entity.ID, ids); err != nil {
			return fmt.Errorf("asociar componentes de la customization %s: %w", p.entity.Name, err)
		}
	}
	return nil
}

// resolveComponentNames traduce nombres de componentes a ids dentro del
// tenant del registro dueño. Los nombres que no resuelven se descartan
// individualmente con warning.
func (l *Loader) resolveComponentNames(tenantID, owner string, names []string, compMap map[key]*entity.Component) []string {
	var ids []string
	for _, name := range names {
		c, ok := compMap[key{tenantID, name}]
		if !ok {
			l.log.Warn().
				Str("tenant_id", tenantID).
				Str("owner", owner).
				Str("component", name).
				Msg("componente no encontrado, asociación descartada")
			continue
		}
		ids = append(ids, c.ID)
	}
	return ids
}

func (l *Loader) skip(kind, name string, err error, res *Result) {
	res.Skipped++
	l.log.Warn().
		Str("kind", kind).
		Str("name", name).
		Err(err).
		Msg("registro descartado")
}
