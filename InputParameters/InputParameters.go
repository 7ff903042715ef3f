package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML scenario file
type ZoneParameters struct {
	Title string `yaml:"Title"`

	// Geometry, m
	Breadth       float64 `yaml:"Breadth"`
	Depth         float64 `yaml:"Depth"`
	Height        float64 `yaml:"Height"`
	OpeningHeight float64 `yaml:"OpeningHeight"`
	OpeningWidth  float64 `yaml:"OpeningWidth"`

	// Temperatures, K
	AmbientTemp    float64 `yaml:"AmbientTemp"`
	InitialGasTemp float64 `yaml:"InitialGasTemp"`

	// Fire
	GrowthRate           float64 `yaml:"GrowthRate"`           // kW/s^2
	HRRPUA               float64 `yaml:"HRRPUA"`               // kW/m^2
	FLED                 float64 `yaml:"FLED"`                 // kJ/m^2
	CombustionEfficiency float64 `yaml:"CombustionEfficiency"` // -
	ConvectiveFraction   float64 `yaml:"ConvectiveFraction"`   // -

	// Exposed timber lining
	WoodDensity            float64 `yaml:"WoodDensity"`            // kg/m^3
	WoodHoC                float64 `yaml:"WoodHoC"`                // kJ/kg
	CeilingExposedFraction float64 `yaml:"CeilingExposedFraction"` // -
	CharRegressionRate     float64 `yaml:"CharRegressionRate"`     // mm/min
	CharHoC                float64 `yaml:"CharHoC"`                // kJ/kg

	// Gas and surface heat transfer
	GasSpecificHeat float64 `yaml:"GasSpecificHeat"` // J/(kg K)
	NetEmissivity   float64 `yaml:"NetEmissivity"`   // -
	AirDensity      float64 `yaml:"AirDensity"`      // kg/m^3
	ConvectiveCoeff float64 `yaml:"ConvectiveCoeff"` // W/(m^2 K)

	// Per-boundary material and discretization
	Wall    BoundaryParameters `yaml:"Wall"`
	Ceiling BoundaryParameters `yaml:"Ceiling"`
	Floor   BoundaryParameters `yaml:"Floor"`

	EndTime float64 `yaml:"EndTime"` // s, 0 = run to the end of the HRR curve

	// "generated" (default) or "prescribed". A prescribed run reads the HRR
	// table from HRRTableFile and requires the three timing markers.
	HRRSource    string  `yaml:"HRRSource"`
	HRRTableFile string  `yaml:"HRRTableFile"`
	Ignition     float64 `yaml:"Ignition"`   // s
	DecayStart   float64 `yaml:"DecayStart"` // s
	DecayEnd     float64 `yaml:"DecayEnd"`   // s
}

type BoundaryParameters struct {
	Conductivity float64 `yaml:"Conductivity"` // W/(m K)
	Density      float64 `yaml:"Density"`      // kg/m^3
	SpecificHeat float64 `yaml:"SpecificHeat"` // J/(kg K)
	Thickness    float64 `yaml:"Thickness"`    // m
	Nodes        int     `yaml:"Nodes"`
}

func (zp *ZoneParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, zp)
}

func (zp *ZoneParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", zp.Title)
	fmt.Printf("%8.3f x %.3f x %.3f\t= Compartment (m)\n", zp.Breadth, zp.Depth, zp.Height)
	fmt.Printf("%8.3f x %.3f\t\t= Opening (m)\n", zp.OpeningHeight, zp.OpeningWidth)
	fmt.Printf("%8.5f\t\t= GrowthRate (kW/s^2)\n", zp.GrowthRate)
	fmt.Printf("%8.1f\t\t= HRRPUA (kW/m^2)\n", zp.HRRPUA)
	fmt.Printf("%8.0f\t\t= FLED (kJ/m^2)\n", zp.FLED)
	fmt.Printf("%8.2f\t\t= ConvectiveFraction\n", zp.ConvectiveFraction)
	fmt.Printf("%8.0f\t\t= EndTime (s)\n", zp.EndTime)
	fmt.Printf("[%s]\t\t\t= HRR Source\n", zp.HRRSource)
}
