package pricing

// Options controls the reduced-work calculation path used by interactive
// previews. Skipped sections are omitted entirely (Computed=false), never
// zero-filled, so callers can tell "absent" from "computed as zero".
type Options struct {
	UseCache                 bool
	SkipEquipmentCalculation bool
	SkipMaterialCalculation  bool
	SkipLaborBreakdown       bool
}

// FullCalculation reports whether no section is skipped.
func (o Options) FullCalculation() bool {
	return !o.SkipEquipmentCalculation && !o.SkipMaterialCalculation && !o.SkipLaborBreakdown
}
