package LocalisedFire

import "math"

// Localised (pre-flashover) fire correlations: flame length, virtual origin
// and plume centreline temperature for a fire that has not involved the whole
// compartment.

// Maximum plume temperature, degC.
const flameTempCap = 900.0

// FireDiameter is the equivalent circular diameter of a fire of the given
// output and heat release flux. HRR in W, HRRPUA in W/m^2.
func FireDiameter(HRR, HRRPUA float64) float64 {
	area := HRR / HRRPUA
	return 2 * math.Sqrt(area/math.Pi)
}

// FlameLength is Heskestad's flame length, m. HRR in W.
func FlameLength(HRR, diam float64) float64 {
	return -1.02*diam + 0.0148*math.Pow(HRR, 0.4)
}

// VirtualOrigin is the plume's virtual origin below/above the fire base, m.
func VirtualOrigin(HRR, diam float64) float64 {
	return -1.02*diam + 0.00524*math.Pow(HRR, 0.4)
}

// FlameTemperature is the plume centreline temperature (degC) at height z
// above the fire base, capped at 900 degC.
func FlameTemperature(HRR, convFraction, z, z0 float64) float64 {
	HRRConv := HRR * convFraction
	T := 20 + 0.25*math.Pow(HRRConv, 2./3.)*math.Pow(z-z0, -5./3.)
	return math.Min(T, flameTempCap)
}

// Plume bundles the derived localised fire quantities at one evaluation
// height.
type Plume struct {
	Diameter      float64 // m
	FlameLength   float64 // m
	VirtualOrigin float64 // m
	Temperature   float64 // degC at the evaluation height
}

// Evaluate computes the plume description for a fire of the given output.
// HRR in W, HRRPUA in W/m^2, z is the evaluation height above the fire base
// in m.
func Evaluate(HRR, HRRPUA, convFraction, z float64) Plume {
	d := FireDiameter(HRR, HRRPUA)
	z0 := VirtualOrigin(HRR, d)
	return Plume{
		Diameter:      d,
		FlameLength:   FlameLength(HRR, d),
		VirtualOrigin: z0,
		Temperature:   FlameTemperature(HRR, convFraction, z, z0),
	}
}
