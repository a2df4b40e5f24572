package quote

import "github.com/shopspring/decimal"

// Priority ranks how urgently a suggested item should be included in the quote.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Confidence is a qualitative trust level derived from data completeness and
// measurement quality.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// SuggestedLineItem is a catalog item proposed for inclusion in a quote.
type SuggestedLineItem struct {
	Item           CatalogItem `json:"item"`
	Quantity       int         `json:"quantity"`
	Reason         string      `json:"reason"`
	Priority       Priority    `json:"priority"`
	Confidence     Confidence  `json:"confidence"`
	FromAssessment bool        `json:"from_assessment"`
}

// Cost returns the extended cost of the suggestion (unit cost x quantity).
func (s SuggestedLineItem) Cost() decimal.Decimal {
	return s.Item.UnitCost.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
