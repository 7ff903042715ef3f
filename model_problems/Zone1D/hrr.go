package Zone1D

import (
	"fmt"
	"math"

	"github.com/firetools/gozone/utils"
)

// Fraction of the fire load consumed by the end of the steady phase. The
// decay ramp carries the remaining 30% of the energy, which fixes its
// duration at 2*(1-steadyFraction)*FLE/Qmax for a linear ramp to zero.
const steadyFraction = 0.7

// Nominal final control point, s. Lookups past the decay endpoint ride a flat
// zero segment instead of extrapolating the decay slope below zero; when the
// decay outlasts this, the tail is pushed past the decay endpoint instead.
const curveTailTime = 14400.0

// FlashoverHRR is the threshold HRR for flashover from the opening factor:
// 7.8 At + 378 Av sqrt(Hv), kW.
func FlashoverHRR(At, Av, Hv float64) float64 {
	return 7.8*At + 378*Av*math.Sqrt(Hv)
}

// VentControlledHRR is the opening-flow limited HRR: 1130 Av sqrt(Hv), kW.
func VentControlledHRR(Av, Hv float64) float64 {
	return 1130 * Av * math.Sqrt(Hv)
}

// FuelControlledHRR is the fuel-surface limited HRR: Af * HRRPUA, kW.
func FuelControlledHRR(Af, HRRPUA float64) float64 {
	return Af * HRRPUA
}

// TSquaredHRR is the growth-phase HRR alpha*t^2, kW.
func TSquaredHRR(growthRate, time float64) float64 {
	return growthRate * time * time
}

// FireCurve is the content fire expressed as ordered (time, HRR) control
// points, plus the timing markers and the ventilation cap derived alongside
// it. Immutable once built; used only for interpolated lookup.
type FireCurve struct {
	Times  []float64 // s
	Values []float64 // W

	VentLimit float64 // ventilation-controlled cap, W

	// Markers consumed by the charring feedback. For a generated curve,
	// lining ignition is taken at the end of the growth phase and the decay
	// window spans the linear ramp. Prescribed curves must supply these
	// directly.
	Ignition   float64 // s
	DecayStart float64 // s
	DecayEnd   float64 // s
}

// HRRAt looks up the content HRR at time t (s) by linear interpolation,
// extrapolating on the end segments rather than failing.
func (fc *FireCurve) HRRAt(t float64) float64 {
	return utils.LinInterp(fc.Times, fc.Values, t)
}

// EndTime returns the final control-point time, s.
func (fc *FireCurve) EndTime() float64 {
	return fc.Times[len(fc.Times)-1]
}

// GenerateFireCurve builds the piecewise growth / steady / decay design fire
// for the compartment contents.
//
// The growth phase follows alpha*t^2 up to the least of the flashover,
// ventilation and fuel caps; the plateau sits at min(vent, fuel); the decay
// ramps linearly to zero. Durations come from the fire load energy
// FLE = FLED * floor area * combustion efficiency: the steady phase ends once
// 70% of FLE is consumed and the ramp carries the rest.
func GenerateFireCurve(geom CompartmentGeometry, fire FireLoad) (fc *FireCurve, err error) {
	var (
		Av  = geom.OpeningArea()
		Hv  = geom.OpeningHeight
		FLE = fire.FLED * geom.FloorArea() * fire.CombustionEfficiency
	)
	Qfo := FlashoverHRR(geom.TotalSurfaceArea(), Av, Hv)
	Qvc := VentControlledHRR(Av, Hv)
	Qfc := FuelControlledHRR(geom.FloorArea(), fire.HRRPUA)

	QEndGrow := math.Min(Qfo, math.Min(Qvc, Qfc))
	QMax := math.Min(Qvc, Qfc)

	tGrow := math.Sqrt(QEndGrow / fire.GrowthRate)
	EGrow := fire.GrowthRate * tGrow * tGrow * tGrow / 3
	tSteady := (steadyFraction*FLE - EGrow) / QMax
	tDecay := 2 * (1 - steadyFraction) * FLE / QMax

	if tSteady < 0 {
		return nil, fmt.Errorf(
			"fire load insufficient: growth phase consumes %.0f kJ of the %.0f kJ budget before reaching steady burning",
			EGrow, steadyFraction*FLE)
	}

	nGrow := int(math.Round(tGrow))
	times := make([]float64, 0, nGrow+4)
	values := make([]float64, 0, nGrow+4)
	for ts := 0; ts < nGrow; ts++ {
		times = append(times, float64(ts))
		values = append(values, TSquaredHRR(fire.GrowthRate, float64(ts))*1000)
	}
	// Plateau onset one second past the growth endpoint, then the steady
	// plateau, the decay endpoint and the flat tail. A steady phase shorter
	// than the one-second onset offset collapses onto the decay-start point,
	// and a decay outlasting the nominal tail pushes the tail out, so the
	// control times stay strictly increasing.
	decayStart := tGrow + tSteady
	decayEnd := decayStart + tDecay
	tail := curveTailTime
	if decayEnd >= curveTailTime {
		tail = decayEnd + 3600
	}
	if tSteady > 1 {
		times = append(times, tGrow+1)
		values = append(values, QMax*1000)
	}
	times = append(times, decayStart, decayEnd, tail)
	values = append(values, QMax*1000, 0, 0)

	fc = &FireCurve{
		Times:      times,
		Values:     values,
		VentLimit:  Qvc * 1000,
		Ignition:   tGrow,
		DecayStart: decayStart,
		DecayEnd:   decayEnd,
	}
	return fc, nil
}

// PrescribedFireCurve wraps a user-supplied (time, HRR) table. The table
// replaces the generated design fire, so the ignition and decay markers the
// charring feedback needs cannot be derived and must be passed in. HRR values
// are in kW, converted to W here; times in s.
func PrescribedFireCurve(times, hrrKW []float64, geom CompartmentGeometry, ignition, decayStart, decayEnd float64) (fc *FireCurve, err error) {
	if len(times) != len(hrrKW) {
		return nil, fmt.Errorf("prescribed curve: %d times vs %d HRR values", len(times), len(hrrKW))
	}
	if len(times) < 2 {
		return nil, fmt.Errorf("prescribed curve needs at least 2 points, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("prescribed curve times must be strictly increasing at row %d", i)
		}
	}
	if ignition < 0 || decayStart < ignition || decayEnd < decayStart {
		return nil, fmt.Errorf("prescribed curve markers must satisfy 0 <= ignition <= decay start <= decay end, got %g/%g/%g",
			ignition, decayStart, decayEnd)
	}
	values := make([]float64, len(hrrKW))
	for i, q := range hrrKW {
		values[i] = q * 1000
	}
	fc = &FireCurve{
		Times:      append([]float64(nil), times...),
		Values:     values,
		VentLimit:  VentControlledHRR(geom.OpeningArea(), geom.OpeningHeight) * 1000,
		Ignition:   ignition,
		DecayStart: decayStart,
		DecayEnd:   decayEnd,
	}
	return fc, nil
}
