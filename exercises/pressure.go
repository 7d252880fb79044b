package exercises

import "math"

// Constants of the isothermal barometric formula.
const (
	SeaLevelPressure = 101325.0    // p0, Pa
	MolarMassAir     = 0.02896968  // M, kg/mol
	Gravity          = 9.81        // g, m/s²
	GasConstant      = 8.314462618 // R0, J/(mol·K)
	Temperature      = 273.0       // T, K
)

// AirPressure returns the air pressure in pascals at height h metres:
//
//	p(h) = p0 · exp(-(g·h·M) / (R0·T))
func AirPressure(h float64) float64 {
	ratio := -(Gravity * h * MolarMassAir) / (GasConstant * Temperature)
	return SeaLevelPressure * math.Exp(ratio)
}

// AirPressureSeries evaluates AirPressure for every height, in order.
func AirPressureSeries(hs []float64) []float64 {
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = AirPressure(h)
	}
	return out
}
