package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/firetools/gozone/InputParameters"
	"github.com/firetools/gozone/model_problems/Zone1D"
)

func TestRunZoneScenario(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Room
Breadth: 4.
Depth: 3.
Height: 2.4
OpeningHeight: 1.8
OpeningWidth: 0.8
AmbientTemp: 293.
InitialGasTemp: 293.
GrowthRate: 0.012
HRRPUA: 25.
FLED: 570000.
CombustionEfficiency: 1.
ConvectiveFraction: 0.7
WoodDensity: 450.
WoodHoC: 17500.
CeilingExposedFraction: 0.999
CharRegressionRate: 1.
CharHoC: 32000.
GasSpecificHeat: 1000.
NetEmissivity: 0.8
AirDensity: 1.
ConvectiveCoeff: 35.
Wall:
  Conductivity: 0.12
  Density: 750.
  SpecificHeat: 1090.
  Thickness: 0.1
  Nodes: 51
Ceiling:
  Conductivity: 0.12
  Density: 750.
  SpecificHeat: 1090.
  Thickness: 0.1
  Nodes: 51
Floor:
  Conductivity: 0.12
  Density: 750.
  SpecificHeat: 1090.
  Thickness: 0.1
  Nodes: 51
EndTime: 900.
`)
	var input InputParameters.ZoneParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Breadth, 4.)
	assert.Equal(t, input.Wall.Nodes, 51)
	assert.Equal(t, input.EndTime, 900.)
	input.Print()

	cfg, err := buildConfig(&input)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, cfg.Source, Zone1D.Generated)
	assert.Equal(t, cfg.Geometry.OpeningHeight, 1.8)
	assert.Equal(t, cfg.Ceiling.Nodes, 51)

	z, err := Zone1D.NewZone(cfg)
	if err != nil {
		panic(err)
	}
	res, err := z.Solve()
	if err != nil {
		panic(err)
	}
	assert.Equal(t, res.Len(), z.NSteps+1)
}

func TestBuildConfigPrescribedNeedsTable(t *testing.T) {
	input := InputParameters.ZoneParameters{HRRSource: "prescribed"}
	_, err := buildConfig(&input)
	if err == nil {
		t.Fatal("expected an error for a prescribed source with no table file")
	}
}
