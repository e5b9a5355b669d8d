package stomata

// Absorption model constants.
const (
	// CO2PerStomaPerDayMicrograms is the CO2 absorbed by a single stoma per day, in µg.
	CO2PerStomaPerDayMicrograms = 0.05

	// CO2PerPersonPerDayKg is the CO2 exhaled by one adult per day, in kg.
	CO2PerPersonPerDayKg = 1.0

	// KgToMicrograms converts kilograms to micrograms.
	KgToMicrograms = 1e9
)

// Default unit labels. Unknown or empty labels fall back to these semantics.
const (
	// AreaUnitCM2 is the base area unit; all densities are per cm².
	AreaUnitCM2 = "cm²"

	// AreaUnitMM2 is square millimetres.
	AreaUnitMM2 = "mm²"

	// AreaUnitM2 is square metres.
	AreaUnitM2 = "m²"

	// CO2UnitMicrogram is the base CO2 mass unit.
	CO2UnitMicrogram = "µg"

	// CO2UnitMilligram is milligrams.
	CO2UnitMilligram = "mg"

	// CO2UnitGram is grams.
	CO2UnitGram = "g"

	// CO2UnitKilogram is kilograms.
	CO2UnitKilogram = "kg"
)

// Display precision for formatted result fields.
const (
	areaPrecision = 2
	co2Precision  = 4
)

// NotComputableLabel is the display text for a leaves-needed value that
// cannot be derived because absorption is zero or negative.
const NotComputableLabel = "not computable"

// NotComputableLabelKorean is the Korean display text for NotComputableLabel.
const NotComputableLabelKorean = "계산 불가"
