package Zone1D

import "fmt"

// CompartmentGeometry describes a single rectangular compartment with one
// aggregate opening. Immutable for a run.
type CompartmentGeometry struct {
	Breadth       float64 // m
	Depth         float64 // m
	Height        float64 // m
	OpeningHeight float64 // m
	OpeningWidth  float64 // m
}

func (g CompartmentGeometry) OpeningArea() float64 {
	return g.OpeningHeight * g.OpeningWidth
}

// WallArea is the total vertical boundary area less the opening.
func (g CompartmentGeometry) WallArea() float64 {
	return 2*(g.Breadth+g.Depth)*g.Height - g.OpeningArea()
}

func (g CompartmentGeometry) CeilingArea() float64 {
	return g.Breadth * g.Depth
}

func (g CompartmentGeometry) FloorArea() float64 {
	return g.Breadth * g.Depth
}

// TotalSurfaceArea is the enclosure surface area excluding the opening.
func (g CompartmentGeometry) TotalSurfaceArea() float64 {
	return g.WallArea() + g.CeilingArea() + g.FloorArea()
}

func (g CompartmentGeometry) GasVolume() float64 {
	return g.Breadth * g.Depth * g.Height
}

func (g CompartmentGeometry) Validate() error {
	if g.Breadth <= 0 || g.Depth <= 0 || g.Height <= 0 {
		return fmt.Errorf("compartment dimensions must be positive, got %gx%gx%g",
			g.Breadth, g.Depth, g.Height)
	}
	if g.OpeningHeight <= 0 || g.OpeningWidth <= 0 {
		return fmt.Errorf("opening dimensions must be positive, got %gx%g",
			g.OpeningHeight, g.OpeningWidth)
	}
	if g.OpeningHeight > g.Height {
		return fmt.Errorf("opening height %g exceeds compartment height %g",
			g.OpeningHeight, g.Height)
	}
	if g.WallArea() <= 0 {
		return fmt.Errorf("opening area %g consumes the entire wall area", g.OpeningArea())
	}
	return nil
}

// FireLoad describes the design fire for the compartment contents.
type FireLoad struct {
	GrowthRate           float64 // t-squared growth constant, kW/s^2
	HRRPUA               float64 // kW/m^2
	FLED                 float64 // kJ/m^2
	CombustionEfficiency float64 // applied to FLED
	ConvectiveFraction   float64
}

func (f FireLoad) Validate() error {
	if f.GrowthRate <= 0 {
		return fmt.Errorf("growth rate must be positive, got %g", f.GrowthRate)
	}
	if f.HRRPUA <= 0 {
		return fmt.Errorf("HRRPUA must be positive, got %g", f.HRRPUA)
	}
	if f.FLED <= 0 {
		return fmt.Errorf("FLED must be positive, got %g", f.FLED)
	}
	if f.CombustionEfficiency <= 0 || f.CombustionEfficiency > 1 {
		return fmt.Errorf("combustion efficiency must be in (0,1], got %g", f.CombustionEfficiency)
	}
	if f.ConvectiveFraction <= 0 || f.ConvectiveFraction > 1 {
		return fmt.Errorf("convective fraction must be in (0,1], got %g", f.ConvectiveFraction)
	}
	return nil
}
