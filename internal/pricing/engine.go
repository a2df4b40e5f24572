// Package pricing is the public entry point of the engine: it assembles the
// fired condition rules, suggested line items, labor estimate, and composed
// multiplier into one validated, explainable PricingResult.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mbeaudry/quotient/internal/cache"
	"github.com/mbeaudry/quotient/internal/compose"
	"github.com/mbeaudry/quotient/internal/config"
	"github.com/mbeaudry/quotient/internal/domain/quote"
	"github.com/mbeaudry/quotient/internal/labor"
	"github.com/mbeaudry/quotient/internal/logger"
	"github.com/mbeaudry/quotient/internal/rules"
	"github.com/mbeaudry/quotient/internal/suggest"
	quotienterrors "github.com/mbeaudry/quotient/pkg/errors"
)

// Engine orchestrates one pricing calculation. It is stateless apart from the
// injected result cache and safe for concurrent use.
type Engine struct {
	tunables  config.Tunables
	estimator *labor.Estimator
	cache     cache.Cache
	log       *logger.Logger
}

// NewEngine builds an Engine. The cache may be nil when the optimized path is
// never used; the logger may be nil to disable logging.
func NewEngine(tunables config.Tunables, resultCache cache.Cache, log *logger.Logger) *Engine {
	return &Engine{
		tunables:  tunables,
		estimator: labor.NewEstimator(tunables),
		cache:     resultCache,
		log:       log.WithComponent("pricing"),
	}
}

// Calculate runs the full computation. It always recomputes every sub-result;
// no cache is consulted and no section is skipped.
func (e *Engine) Calculate(a *quote.Assessment, catalog quote.Catalog, basePrice decimal.Decimal) (*quote.PricingResult, error) {
	return e.CalculateOptimized(a, catalog, basePrice, Options{})
}

// CalculateOptimized runs the computation with the supplied reduced-work
// options. With UseCache set it consults and populates the injected cache;
// it has no other externally visible effects.
func (e *Engine) CalculateOptimized(a *quote.Assessment, catalog quote.Catalog, basePrice decimal.Decimal, opts Options) (*quote.PricingResult, error) {
	if a == nil {
		return nil, quotienterrors.NewCalculationError("orchestrator", errors.New("assessment is nil"))
	}
	if catalog == nil {
		return nil, quotienterrors.NewCalculationError("orchestrator", errors.New("catalog is nil"))
	}

	key := ""
	if opts.UseCache && e.cache != nil {
		fp, err := fingerprint(a, catalog, basePrice, opts)
		if err != nil {
			// A fingerprint failure only disables memoization.
			e.log.Error(err, "fingerprint failed; computing without cache")
		} else {
			key = fp
			if cached, ok := e.cache.Get(key); ok {
				e.log.WithFields(map[string]any{"fingerprint": key}).Debug("pricing served from cache")
				return cached, nil
			}
		}
	}

	result := e.compute(a, catalog, basePrice, opts)

	if key != "" {
		e.cache.Put(key, result)
	}

	e.log.WithFields(map[string]any{
		"total_multiplier": result.TotalMultiplier,
		"final_price":      result.FinalPrice.String(),
		"suggested_items":  len(result.SuggestedItems),
		"triggers":         len(result.Triggers),
		"full_calculation": opts.FullCalculation(),
	}).Debug("pricing calculated")

	return result, nil
}

func (e *Engine) compute(a *quote.Assessment, catalog quote.Catalog, basePrice decimal.Decimal, opts Options) *quote.PricingResult {
	firings := rules.Evaluate(a)
	composition := compose.Compose(basePrice, rules.Factors(firings))
	items := suggest.Items(a, catalog, firings)
	hours := e.estimator.Estimate(a)

	result := &quote.PricingResult{
		BasePrice:         basePrice,
		TotalMultiplier:   composition.TotalMultiplier,
		Adjustments:       composition.Factors,
		SuggestedItems:    items,
		CategorySubtotals: composition.Subtotals,
		TotalLaborHours:   hours,
		Triggers:          rules.Names(firings),
		FlaggedFactors:    composition.Flagged,
		Confidence:        scoreConfidence(a, e.tunables),
	}

	if !opts.SkipLaborBreakdown {
		result.Labor = laborSection(hours, e.tunables.HourlyLaborRate)
	}
	if !opts.SkipMaterialCalculation {
		result.Materials = categorySection(composition, quote.CategoryMaterial)
	}
	if !opts.SkipEquipmentCalculation {
		result.Equipment = categorySection(composition, quote.CategoryAccess)
	}

	adjusted := basePrice.Mul(decimal.NewFromFloat(composition.TotalMultiplier))
	result.FinalPrice = adjusted.Add(result.SuggestedItemsCost()).Round(2)

	return result
}

// CacheStats exposes the injected cache's traffic counters when the cache
// implementation tracks them.
func (e *Engine) CacheStats() (cache.Stats, bool) {
	type statser interface{ Stats() cache.Stats }
	if s, ok := e.cache.(statser); ok {
		return s.Stats(), true
	}
	return cache.Stats{}, false
}
