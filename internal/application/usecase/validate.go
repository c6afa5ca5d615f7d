package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Reglas compartidas de validación. Cada validador acumula TODAS las
// violaciones y devuelve un único *domain.ValidationError, nunca solo la
// primera.

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

func validateCategoryRequest(in dto.CategoryRequest) error {
	var violations []string
	if in.Name == "" {
		violations = append(violations, "name es requerido")
	} else if len(in.Name) > maxNameLen {
		violations = append(violations, "name no puede exceder 100 caracteres")
	}
	if len(in.Description) > maxDescriptionLen {
		violations = append(violations, "description no puede exceder 500 caracteres")
	}
	if in.DisplayOrder < 0 {
		violations = append(violations, "displayOrder debe ser no negativo")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations)
	}
	return nil
}

func validateComponentRequest(in dto.ComponentRequest) error {
	var violations []string
	if in.Name == "" {
		violations = append(violations, "name es requerido")
	} else if len(in.Name) > maxNameLen {
		violations = append(violations, "name no puede exceder 100 caracteres")
	}
	if len(in.Description) > maxDescriptionLen {
		violations = append(violations, "description no puede exceder 500 caracteres")
	}
	if in.Cost.IsNegative() {
		violations = append(violations, "cost debe ser no negativo")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations)
	}
	return nil
}

func validateCategoryItemRequest(in dto.CategoryItemRequest) error {
	var violations []string
	if in.CategoryID == "" {
		violations = append(violations, "categoryId es requerido")
	}
	if in.Name == "" {
		violations = append(violations, "name es requerido")
	} else if len(in.Name) > maxNameLen {
		violations = append(violations, "name no puede exceder 100 caracteres")
	}
	if len(in.Description) > maxDescriptionLen {
		violations = append(violations, "description no puede exceder 500 caracteres")
	}
	if in.BasePrice.IsNegative() {
		violations = append(violations, "basePrice debe ser no negativo")
	}
	if in.SKU == "" {
		violations = append(violations, "sku es requerido")
	}
	if in.DisplayOrder < 0 {
		violations = append(violations, "displayOrder debe ser no negativo")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations)
	}
	return nil
}

func validateCustomizationRequest(in dto.CustomizationRequest) error {
	var violations []string
	if in.CategoryItemID == "" {
		violations = append(violations, "categoryItemId es requerido")
	}
	if in.Name == "" {
		violations = append(violations, "name es requerido")
	} else if len(in.Name) > maxNameLen {
		violations = append(violations, "name no puede exceder 100 caracteres")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations)
	}
	return nil
}
