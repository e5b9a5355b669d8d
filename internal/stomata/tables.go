package stomata

// Species describes one leaf type in the stomatal density table.
type Species struct {
	// Name is the leaf-type key accepted by Estimate.
	Name string `json:"name"   yaml:"name"`

	// Density is the number of stomata per cm² of leaf surface.
	Density float64 `json:"density" yaml:"density"`

	// Correction multiplies both the stoma count and the absorbed CO2 after
	// the base calculation. It is 1 for every species whose measured stoma
	// count reflects its real gas-exchange capacity.
	Correction float64 `json:"correction" yaml:"correction"`
}

// Unit is a labelled conversion factor.
type Unit struct {
	Label  string  `json:"label"  yaml:"label"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// speciesTable lists every supported leaf type in display order.
//
//nolint:gochecknoglobals // Read-only lookup table built at process start.
var speciesTable = []Species{
	{Name: "단풍잎", Density: 72111.6, Correction: 1},
	{Name: "테이블야자", Density: 23041.5, Correction: 1},
	{Name: "깻잎", Density: 29387.2, Correction: 1},
	{Name: "고무나무", Density: 42760.7, Correction: 1},
	{Name: "몬스테라", Density: 12694.6, Correction: 1},
	// Stucky's cylindrical leaves undercount stomata in flat-area sampling.
	{Name: "스투키", Density: 8675.1, Correction: 4},
}

// areaUnitTable holds divisors relative to cm².
//
//nolint:gochecknoglobals // Read-only lookup table built at process start.
var areaUnitTable = []Unit{
	{Label: AreaUnitCM2, Factor: 1},
	{Label: AreaUnitMM2, Factor: 0.01},
	{Label: AreaUnitM2, Factor: 10000},
}

// co2UnitTable holds multipliers relative to µg.
//
//nolint:gochecknoglobals // Read-only lookup table built at process start.
var co2UnitTable = []Unit{
	{Label: CO2UnitMicrogram, Factor: 1},
	{Label: CO2UnitMilligram, Factor: 1e-3},
	{Label: CO2UnitGram, Factor: 1e-6},
	{Label: CO2UnitKilogram, Factor: 1e-9},
}

//nolint:gochecknoglobals // Indexes over the read-only tables above.
var (
	speciesIndex  = indexSpecies(speciesTable)
	areaUnitIndex = indexUnits(areaUnitTable)
	co2UnitIndex  = indexUnits(co2UnitTable)
)

func indexSpecies(table []Species) map[string]Species {
	idx := make(map[string]Species, len(table))
	for _, s := range table {
		idx[s.Name] = s
	}
	return idx
}

func indexUnits(table []Unit) map[string]float64 {
	idx := make(map[string]float64, len(table))
	for _, u := range table {
		idx[u.Label] = u.Factor
	}
	return idx
}

// AllSpecies returns the leaf types in display order.
// The returned slice is a copy; mutating it does not affect the table.
func AllSpecies() []Species {
	out := make([]Species, len(speciesTable))
	copy(out, speciesTable)
	return out
}

// SpeciesNames returns the leaf-type names in display order.
func SpeciesNames() []string {
	names := make([]string, len(speciesTable))
	for i, s := range speciesTable {
		names[i] = s.Name
	}
	return names
}

// LookupSpecies returns the species registered under name.
func LookupSpecies(name string) (Species, bool) {
	s, ok := speciesIndex[name]
	return s, ok
}

// AreaUnits returns the supported area units in display order.
func AreaUnits() []Unit {
	out := make([]Unit, len(areaUnitTable))
	copy(out, areaUnitTable)
	return out
}

// CO2Units returns the supported CO2 units in display order.
func CO2Units() []Unit {
	out := make([]Unit, len(co2UnitTable))
	copy(out, co2UnitTable)
	return out
}

// AreaDivisor returns the divisor that converts cm² into the given unit.
// Unknown labels report (1, false).
func AreaDivisor(label string) (float64, bool) {
	if f, ok := areaUnitIndex[label]; ok {
		return f, true
	}
	return 1, false
}

// CO2Multiplier returns the multiplier that converts µg into the given unit.
// Unknown labels report (1, false).
func CO2Multiplier(label string) (float64, bool) {
	if f, ok := co2UnitIndex[label]; ok {
		return f, true
	}
	return 1, false
}

// IsKnownAreaUnit reports whether label is a supported area unit.
func IsKnownAreaUnit(label string) bool {
	_, ok := areaUnitIndex[label]
	return ok
}

// IsKnownCO2Unit reports whether label is a supported CO2 unit.
func IsKnownCO2Unit(label string) bool {
	_, ok := co2UnitIndex[label]
	return ok
}
