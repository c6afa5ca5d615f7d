package dto

import "github.com/shopspring/decimal"

// MenuResponse es la carta compuesta de un tenant: categorías activas en
// orden de presentación, cada una con sus items activos.
type MenuResponse struct {
	TenantID   string         `json:"tenantId"`
	Categories []MenuCategory `json:"categories"`
}

// MenuCategory una sección de la carta.
type MenuCategory struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"displayOrder"`
	Items        []MenuItem `json:"items"`
}

// MenuItem un plato de la carta con sus ingredientes y variantes.
type MenuItem struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	BasePrice      decimal.Decimal     `json:"basePrice"`
	ImageURL       string              `json:"imageUrl"`
	Components     []ComponentSummary  `json:"components,omitempty"`
	Customizations []MenuCustomization `json:"customizations,omitempty"`
}

// MenuCustomization una variante ofrecida sobre un plato.
type MenuCustomization struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment"`
}

// LoadReport resumen de una corrida del loader para la superficie admin.
type LoadReport struct {
	Components     int `json:"components"`
	Categories     int `json:"categories"`
	Items          int `json:"items"`
	Customizations int `json:"customizations"`
	Skipped        int `json:"skipped"`
}
