package stomata

// ConvertArea converts an area in cm² into the given unit.
// Unknown units pass the value through unchanged.
func ConvertArea(cm2 float64, unit string) float64 {
	divisor, _ := AreaDivisor(unit)
	return cm2 / divisor
}

// AreaToCM2 is the inverse of ConvertArea.
func AreaToCM2(value float64, unit string) float64 {
	divisor, _ := AreaDivisor(unit)
	return value * divisor
}

// ConvertCO2 converts a CO2 mass in µg into the given unit.
// Unknown units pass the value through unchanged.
func ConvertCO2(micrograms float64, unit string) float64 {
	multiplier, _ := CO2Multiplier(unit)
	return micrograms * multiplier
}

// CO2ToMicrograms is the inverse of ConvertCO2.
func CO2ToMicrograms(value float64, unit string) float64 {
	multiplier, _ := CO2Multiplier(unit)
	return value / multiplier
}

// PeopleCO2Micrograms returns the daily CO2 output of count people in µg.
func PeopleCO2Micrograms(count int64) float64 {
	return float64(count) * CO2PerPersonPerDayKg * KgToMicrograms
}
