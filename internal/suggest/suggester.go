// Package suggest turns fired condition rules into concrete catalog line-item
// suggestions with quantity, priority, and confidence.
package suggest

import (
	"math"
	"strings"

	"github.com/mbeaudry/quotient/internal/domain/quote"
	"github.com/mbeaudry/quotient/internal/rules"
)

// Items matches each firing's keywords against the catalog in evaluation
// order. A trigger with no matching catalog item is skipped silently; that is
// a data-quality condition for the validator, never an error here.
func Items(a *quote.Assessment, catalog quote.Catalog, firings []rules.Firing) []quote.SuggestedLineItem {
	if a == nil || len(catalog) == 0 {
		return nil
	}

	quantity := areaQuantity(a)
	confidence := measurementConfidence(a)

	items := make([]quote.SuggestedLineItem, 0, len(firings))
	for _, firing := range firings {
		if len(firing.Rule.Keywords) == 0 {
			continue
		}

		item, found := matchCatalog(catalog, firing.Rule.Keywords)
		if !found {
			continue
		}

		priority := quote.PriorityMedium
		if firing.Rule.Severe {
			priority = quote.PriorityHigh
		}

		items = append(items, quote.SuggestedLineItem{
			Item:           item,
			Quantity:       quantity,
			Reason:         firing.Rule.Rationale,
			Priority:       priority,
			Confidence:     confidence,
			FromAssessment: true,
		})
	}

	return items
}

// matchCatalog returns the first item whose name contains any of the keywords,
// checking keywords in declaration order so the match is deterministic.
func matchCatalog(catalog quote.Catalog, keywords []string) (quote.CatalogItem, bool) {
	for _, keyword := range keywords {
		needle := strings.ToLower(keyword)
		for _, item := range catalog {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				return item, true
			}
		}
	}
	return quote.CatalogItem{}, false
}

// areaQuantity applies the area heuristic: one unit per 1000 sq ft, rounded
// up, never below one. An assessment without any area figure suggests a
// single unit rather than inflating the quote from the default baseline.
func areaQuantity(a *quote.Assessment) int {
	area, source := a.Area(0)
	if source == quote.AreaDefaulted || area <= 0 {
		return 1
	}

	quantity := int(math.Ceil(area / 1000))
	if quantity < 1 {
		return 1
	}
	return quantity
}

func measurementConfidence(a *quote.Assessment) quote.Confidence {
	_, source := a.Area(0)
	switch source {
	case quote.AreaMeasured:
		if a.MeasurementVerified {
			return quote.ConfidenceHigh
		}
		return quote.ConfidenceMedium
	case quote.AreaEstimated:
		return quote.ConfidenceMedium
	default:
		return quote.ConfidenceLow
	}
}
