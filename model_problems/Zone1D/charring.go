package Zone1D

import (
	"math"

	"github.com/firetools/gozone/utils"
)

// Charring of exposed timber linings, prEN 1995-1-2 style: char depth follows
// a thermal-penetration correlation on the integral of squared gas
// temperature over the whole exposure history.

const (
	// Smoothing width for the char depth series, in samples.
	charSmoothingSigma = 1.5

	// No charring while the gas is below this temperature AND the fire is
	// younger than charTriggerTime; suppresses spurious early rates from the
	// smoothing filter.
	charTriggerTemp = 300.0 + 273.0 // K
	charTriggerTime = 60.0          // s

	// Char density correlation constant: rho_char = 230/sqrt(depth_mm).
	charDensityCoeff = 230.0
)

// CharDepthIntegral computes the char depth (mm) from the gas temperature
// history (K) over time (minutes): (simpson(T^2)/1.35e5)^(1/1.6).
func CharDepthIntegral(tempK, timeMin []float64) float64 {
	tsq := make([]float64, len(tempK))
	for i, T := range tempK {
		tsq[i] = T * T
	}
	return math.Pow(utils.Simpsons(tsq, timeMin)/1.35e5, 1/1.6)
}

// CharDensity is the bulk density of the char layer (kg/m^3) for a given
// depth in mm, from the inverse square root correlation. Zero depth means no
// char layer yet.
func CharDensity(depthMM float64) float64 {
	if depthMM <= 0 {
		return 0
	}
	return charDensityCoeff / math.Sqrt(depthMM)
}

// CharRegressionHRRPUA is the heat release flux (W/m^2) from regression of
// the char layer: the surface recedes at regressionRate (mm/min) through char
// of the given density (kg/m^3) with heat of combustion charHoC (kJ/kg).
func CharRegressionHRRPUA(regressionRate, charDensity, charHoC float64) float64 {
	return regressionRate / (60 * 1000) * charDensity * charHoC * 1000
}

// CharEstimator tracks the smoothed char depth series over a run. The raw
// history integral for the newest step is appended to the previous smoothed
// series and the whole series re-smoothed, so earlier values shift slightly
// as the run grows; the charring rate depends on this exact ordering.
type CharEstimator struct {
	WoodDensity float64 // kg/m^3

	// Smoothed char depth per recorded step, mm. depths[0] belongs to t=0.
	depths []float64
}

func NewCharEstimator(woodDensity float64) *CharEstimator {
	return &CharEstimator{
		WoodDensity: woodDensity,
		depths:      []float64{0},
	}
}

// Depths exposes the smoothed char depth series, one entry per recorded step.
func (ce *CharEstimator) Depths() []float64 {
	return ce.depths
}

// Update recomputes the char state after a new (time, gas temperature) sample
// has been appended to the histories. timeMin and tempK span the entire run
// including the new sample; t and dt are the current time and step in
// seconds. Returns the smoothed depth (mm), charring rate (mm/min) and mass
// loss rate (kg/(m^2 s)) for this step.
func (ce *CharEstimator) Update(tempK, timeMin []float64, t, dt float64) (depth, rate, mlr float64) {
	raw := CharDepthIntegral(tempK, timeMin)
	ce.depths = utils.GaussianFilter1D(append(ce.depths, raw), charSmoothingSigma)

	i := len(ce.depths) - 1
	Tg := tempK[len(tempK)-1]
	if Tg < charTriggerTemp && t < charTriggerTime {
		rate = 0
	} else {
		rate = (ce.depths[i] - ce.depths[i-1]) / (dt / 60)
	}
	mlr = rate / (60 * 1000) * ce.WoodDensity
	return ce.depths[i], rate, mlr
}
