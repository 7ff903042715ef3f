package Zone1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpeningConvectiveLoss(t *testing.T) {
	// 1.44 m^2 opening, 1.8 m tall, 100 K above ambient
	got := OpeningConvectiveLoss(1.8, 1.44, 1000, 393, 293)
	assert.InDelta(t, 0.5*1.44*1000*100*math.Sqrt(1.8), got, 1.e-9)
	// No excess temperature, no loss
	assert.Equal(t, 0., OpeningConvectiveLoss(1.8, 1.44, 1000, 293, 293))
}

func TestOpeningRadiativeLoss(t *testing.T) {
	got := OpeningRadiativeLoss(1.44, 0.9, 1073, 0)
	assert.InDelta(t, 1.44*0.9*Sigma*math.Pow(1073, 4), got, 1.e-6)
	// Sink at gas temperature cancels the exchange
	assert.Equal(t, 0., OpeningRadiativeLoss(1.44, 0.9, 1073, 1073))
}

func TestBoundaryFlux(t *testing.T) {
	got := BoundaryFlux(1073, 373, 35, 0.8)
	want := 35*(1073-373) + 0.8*Sigma*(math.Pow(1073, 4)-math.Pow(373, 4))
	assert.InDelta(t, want, got, 1.e-6)
	assert.Equal(t, 0., BoundaryFlux(500, 500, 35, 0.8))
}

func TestGasEnergyBalance(t *testing.T) {
	assert.Equal(t, 400., GasEnergyBalance(1000, 300, 200, 100))
	// Losses exceeding the input cool the gas
	assert.Less(t, GasEnergyBalance(100, 300, 200, 100), 0.)
}

func TestDeltaGasTemp(t *testing.T) {
	// 28.8 kW net into 28.8 m^3 of unit-density air for 1 s is 1 K
	assert.InDelta(t, 1., DeltaGasTemp(28800, 1, 1, 1000, 28.8), 1.e-12)
}

func TestRadiantFluxToBoundaries(t *testing.T) {
	V := 28.8
	r := math.Cbrt(3 * V / (4 * math.Pi))
	got := RadiantFluxToBoundaries(V, 0.3, 1.e6)
	assert.InDelta(t, 0.3*1.e6/(4*math.Pi*r*r), got, 1.e-9)
}

func TestFireEmissivity(t *testing.T) {
	assert.Equal(t, 0., FireEmissivity(0))
	assert.InDelta(t, 1-math.Exp(-1.1*2.4), FireEmissivity(2.4), 1.e-15)
	assert.Less(t, FireEmissivity(2.4), 1.)
}
