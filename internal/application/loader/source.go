package loader

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Document es el documento fuente del catálogo completo. Cada sección es
// una lista de registros crudos: se decodifican uno a uno para que un
// registro malformado (campo faltante, precio no numérico) se descarte
// solo, sin tumbar la sección entera.
type Document struct {
	Components                 []json.RawMessage `json:"components"`
	Categories                 []json.RawMessage `json:"categories"`
	CategoryItems              []json.RawMessage `json:"categoryItems"`
	CategoryItemCustomizations []json.RawMessage `json:"categoryItemCustomizations"`
}

// ParseDocument decodifica el documento fuente. Un fallo aquí es fatal:
// sin estructura de secciones no hay nada que cargar.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// componentRecord registro fuente de un componente. Las referencias cruzadas
// de todo el documento son por nombre dentro del tenant del registro.
type componentRecord struct {
	TenantID     string           `json:"tenantId"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Cost         *decimal.Decimal `json:"cost"`
	IsAllergenic bool             `json:"isAllergenic"`
	AllergenInfo string           `json:"allergenInfo"`
}

func (r componentRecord) validate() error {
	switch {
	case r.TenantID == "":
		return errors.New("tenantId es requerido")
	case r.Name == "":
		return errors.New("name es requerido")
	case r.Cost == nil:
		return errors.New("cost es requerido")
	}
	return nil
}

type categoryRecord struct {
	TenantID     string `json:"tenantId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	Active       *bool  `json:"active"`
}

func (r categoryRecord) validate() error {
	switch {
	case r.TenantID == "":
		return errors.New("tenantId es requerido")
	case r.Name == "":
		return errors.New("name es requerido")
	case r.DisplayOrder < 0:
		return errors.New("displayOrder debe ser no negativo")
	}
	return nil
}

type categoryItemRecord struct {
	TenantID     string           `json:"tenantId"`
	CategoryName string           `json:"categoryName"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	BasePrice    *decimal.Decimal `json:"basePrice"`
	ImageURL     string           `json:"imageUrl"`
	SKU          string           `json:"sku"`
	DisplayOrder int              `json:"displayOrder"`
	Active       *bool            `json:"active"`
	Components   []string         `json:"components"` // nombres, scoped al tenant del registro
}

func (r categoryItemRecord) validate() error {
	switch {
	case r.TenantID == "":
		return errors.New("tenantId es requerido")
	case r.Name == "":
		return errors.New("name es requerido")
	case r.CategoryName == "":
		return errors.New("categoryName es requerido")
	case r.SKU == "":
		return errors.New("sku es requerido")
	case r.BasePrice == nil:
		return errors.New("basePrice es requerido")
	case r.BasePrice.IsNegative():
		return errors.New("basePrice debe ser no negativo")
	}
	return nil
}

type customizationRecord struct {
	TenantID         string           `json:"tenantId"`
	CategoryItemName string           `json:"categoryItemName"`
	Name             string           `json:"name"`
	PriceAdjustment  *decimal.Decimal `json:"priceAdjustment"`
	Active           *bool            `json:"active"`
	Components       []string         `json:"components"`
}

func (r customizationRecord) validate() error {
	switch {
	case r.TenantID == "":
		return errors.New("tenantId es requerido")
	case r.Name == "":
		return errors.New("name es requerido")
	case r.CategoryItemName == "":
		return errors.New("categoryItemName es requerido")
	case r.PriceAdjustment == nil:
		return errors.New("priceAdjustment es requerido")
	}
	return nil
}
