package main

import (
	"os"

	"github.com/shopspring/decimal"

	"github.com/mbeaudry/quotient/internal/cache"
	"github.com/mbeaudry/quotient/internal/config"
	"github.com/mbeaudry/quotient/internal/domain/quote"
	"github.com/mbeaudry/quotient/internal/logger"
	"github.com/mbeaudry/quotient/internal/pricing"
)

// appContext bundles the parsed inputs and the engine wired for one command
// invocation.
type appContext struct {
	tunables   config.Tunables
	assessment *quote.Assessment
	catalog    quote.Catalog
	basePrice  decimal.Decimal
	engine     *pricing.Engine
	log        *logger.Logger
}

func newAppContext(root *rootFlags, inputs inputFlags) (*appContext, error) {
	if err := validateInputFlags(inputs); err != nil {
		return nil, err
	}

	tunables, err := config.ParseTunables(root.tunablesPath)
	if err != nil {
		return nil, err
	}

	assessment, err := config.ParseAssessment(inputs.AssessmentPath)
	if err != nil {
		return nil, err
	}

	catalog, err := config.ParseCatalog(inputs.CatalogPath)
	if err != nil {
		return nil, err
	}

	level := "info"
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: os.Stderr})
	if err != nil {
		return nil, err
	}

	return &appContext{
		tunables:   tunables,
		assessment: assessment,
		catalog:    catalog,
		basePrice:  decimal.NewFromFloat(inputs.BasePrice),
		engine:     pricing.NewEngine(tunables, cache.NewMemory(tunables.CacheCapacity), log),
		log:        log,
	}, nil
}
