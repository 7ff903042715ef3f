package Zone1D

import (
	"math"

	"github.com/firetools/gozone/utils"
)

// Lumped gas-phase energy balance terms, per Zhang and Li's single zone
// formulation. All temperatures in K, energies in W.

// OpeningConvectiveLoss is the heat carried out of the openings by buoyant
// flow: 0.5 Ao cp (Tg - Tinf) sqrt(Ho).
func OpeningConvectiveLoss(Ho, Ao, cp, Tg, Tinf float64) float64 {
	return 0.5 * Ao * cp * (Tg - Tinf) * math.Sqrt(Ho)
}

// OpeningRadiativeLoss is the radiation lost through the openings. The
// external sink temperature is passed explicitly; the zone model drives it
// with 0 K rather than ambient (see Zone.Solve).
func OpeningRadiativeLoss(Ao, Ef, Tg, Text float64) float64 {
	return Ao * Ef * Sigma * (utils.POW(Tg, 4) - utils.POW(Text, 4))
}

// BoundaryFlux is the combined convective and radiative flux from the gas to
// a boundary surface at Ts, W/m^2.
func BoundaryFlux(Tg, Ts, hc, epsNet float64) float64 {
	return hc*(Tg-Ts) + epsNet*Sigma*(utils.POW(Tg, 4)-utils.POW(Ts, 4))
}

// GasEnergyBalance is the net power stored in the gas.
func GasEnergyBalance(HRRConv, QBound, QOpenConv, QOpenRad float64) float64 {
	return HRRConv - (QBound + QOpenConv + QOpenRad)
}

// DeltaGasTemp converts net stored power into a lumped temperature increment
// over one step.
func DeltaGasTemp(QGas, dt, rhoAir, cp, VGas float64) float64 {
	return QGas * dt / (rhoAir * cp * VGas)
}

// RadiantFluxToBoundaries distributes the radiative fraction of the fire's
// output over a sphere whose radius is the equivalent radiant path length of
// the gas volume, giving the incident flux on the enclosure surfaces, W/m^2.
func RadiantFluxToBoundaries(VGas, radFraction, HRR float64) float64 {
	r := math.Cbrt(3 * VGas / (4 * math.Pi))
	return radFraction * HRR / (4 * math.Pi * r * r)
}

// FireEmissivity grows with the characteristic fire height h.
func FireEmissivity(h float64) float64 {
	return 1 - math.Exp(-1.1*h)
}
