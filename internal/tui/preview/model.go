// Package preview implements the interactive pricing preview: a terminal
// surface that re-runs the optimized calculation as the operator toggles
// skip flags or nudges the base price, exercising the result cache the same
// way repeated quote previews do.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mbeaudry/quotient/internal/config"
	"github.com/mbeaudry/quotient/internal/domain/quote"
	"github.com/mbeaudry/quotient/internal/pricing"
	"github.com/mbeaudry/quotient/internal/validation"
)

// basePriceStep is how much +/- moves the base price per keypress.
var basePriceStep = decimal.NewFromInt(50)

type keyMap struct {
	ToggleLabor     key.Binding
	ToggleMaterials key.Binding
	ToggleEquipment key.Binding
	RaisePrice      key.Binding
	LowerPrice      key.Binding
	Recompute       key.Binding
	Quit            key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleLabor, k.ToggleMaterials, k.ToggleEquipment, k.RaisePrice, k.LowerPrice, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleLabor, k.ToggleMaterials, k.ToggleEquipment},
		{k.RaisePrice, k.LowerPrice, k.Recompute, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleLabor:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle labor")),
		ToggleMaterials: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle materials")),
		ToggleEquipment: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "toggle equipment")),
		RaisePrice:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "raise base price")),
		LowerPrice:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "lower base price")),
		Recompute:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recompute")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the bubbletea model for the pricing preview.
type Model struct {
	engine     *pricing.Engine
	tunables   config.Tunables
	assessment *quote.Assessment
	catalog    quote.Catalog

	basePrice decimal.Decimal
	opts      pricing.Options

	result    *quote.PricingResult
	report    *quote.ValidationReport
	err       error
	fromCache bool

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// NewModel builds the preview around an engine and its fixed inputs.
func NewModel(engine *pricing.Engine, tunables config.Tunables, assessment *quote.Assessment, catalog quote.Catalog, basePrice decimal.Decimal) Model {
	m := Model{
		engine:     engine,
		tunables:   tunables,
		assessment: assessment,
		catalog:    catalog,
		basePrice:  basePrice,
		opts:       pricing.Options{UseCache: true},
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Calculations finish well under the frame
// budget, so they run inline instead of as commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleLabor):
			m.opts.SkipLaborBreakdown = !m.opts.SkipLaborBreakdown
		case key.Matches(msg, m.keys.ToggleMaterials):
			m.opts.SkipMaterialCalculation = !m.opts.SkipMaterialCalculation
		case key.Matches(msg, m.keys.ToggleEquipment):
			m.opts.SkipEquipmentCalculation = !m.opts.SkipEquipmentCalculation
		case key.Matches(msg, m.keys.RaisePrice):
			m.basePrice = m.basePrice.Add(basePriceStep)
		case key.Matches(msg, m.keys.LowerPrice):
			next := m.basePrice.Sub(basePriceStep)
			if next.IsNegative() {
				next = decimal.Zero
			}
			m.basePrice = next
		case key.Matches(msg, m.keys.Recompute):
			// Fall through to recompute below.
		default:
			return m, nil
		}
		m.recompute()
		return m, nil
	}

	return m, nil
}

func (m *Model) recompute() {
	before, _ := m.engine.CacheStats()
	result, err := m.engine.CalculateOptimized(m.assessment, m.catalog, m.basePrice, m.opts)
	after, _ := m.engine.CacheStats()

	m.err = err
	m.fromCache = after.Hits > before.Hits
	if err != nil {
		return
	}

	m.result = result
	m.report = validation.ValidateResult(result, m.tunables)
}

// Result exposes the latest calculation for the caller that ran the preview.
func (m Model) Result() *quote.PricingResult {
	return m.result
}
