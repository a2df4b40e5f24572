package quote

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is one orderable service item supplied by the item-management
// subsystem. Immutable for the duration of a calculation.
type CatalogItem struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// Catalog is the set of items available for suggestion.
type Catalog []CatalogItem
