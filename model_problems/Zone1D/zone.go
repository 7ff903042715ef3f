package Zone1D

import (
	"fmt"
	"math"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// HRRSourceType selects where the content fire curve comes from.
type HRRSourceType uint8

const (
	Generated HRRSourceType = iota
	PrescribedTable
)

var (
	hrrSourceNames = map[string]HRRSourceType{
		"generated":  Generated,
		"prescribed": PrescribedTable,
	}
)

func NewHRRSourceType(label string) HRRSourceType {
	if st, ok := hrrSourceNames[label]; ok {
		return st
	}
	err := fmt.Errorf("unable to use HRR source named %s", label)
	panic(err)
}

// The opening radiation term radiates against a 0 K external sink rather than
// ambient. Kept for output compatibility pending a correctness review; do not
// change without revalidating results.
const externalSinkTemp = 0.0

const logFrequency = 500

// BoundarySpec is the material and discretization of one boundary.
type BoundarySpec struct {
	Mat       MaterialProperties
	Thickness float64 // m
	Nodes     int
}

// Config is the complete, immutable description of a run. The engine keeps no
// state outside the Zone built from it.
type Config struct {
	Geometry CompartmentGeometry
	Fire     FireLoad

	AmbientTemp    float64 // K, also the hard floor for gas temperature
	InitialGasTemp float64 // K

	// Exposed timber lining
	WoodDensity            float64 // kg/m^3
	WoodHoC                float64 // kJ/kg
	CeilingExposedFraction float64
	CharRegressionRate     float64 // mm/min
	CharHoC                float64 // kJ/kg

	// Gas and surface heat transfer
	GasSpecificHeat float64 // J/(kg K)
	NetEmissivity   float64
	AirDensity      float64 // kg/m^3
	ConvectiveCoeff float64 // W/(m^2 K)

	Wall    BoundarySpec
	Ceiling BoundarySpec
	Floor   BoundarySpec

	// End of the run in seconds; 0 means run to the fire curve's final
	// control point.
	EndTime float64

	Source HRRSourceType

	// Prescribed-table inputs, used only when Source == PrescribedTable.
	// Times in s, HRR in kW. The timing markers cannot be derived from a
	// prescribed table and must be supplied.
	PrescribedTimes []float64
	PrescribedHRR   []float64
	Ignition        float64 // s
	DecayStart      float64 // s
	DecayEnd        float64 // s
}

// DefaultConfig is the reference compartment: a 4x3x2.4 m room, single 1.8 m
// by 0.8 m opening, plasterboard boundaries and an exposed timber ceiling.
func DefaultConfig() Config {
	plasterboard := BoundarySpec{
		Mat:       MaterialProperties{Conductivity: 0.12, Density: 750, SpecificHeat: 1090},
		Thickness: 0.1,
		Nodes:     101,
	}
	return Config{
		Geometry: CompartmentGeometry{
			Breadth:       4,
			Depth:         3,
			Height:        2.4,
			OpeningHeight: 1.8,
			OpeningWidth:  0.8,
		},
		Fire: FireLoad{
			GrowthRate:           0.012,
			HRRPUA:               290,
			FLED:                 570000,
			CombustionEfficiency: 1,
			ConvectiveFraction:   0.7,
		},
		AmbientTemp:            293,
		InitialGasTemp:         293,
		WoodDensity:            450,
		WoodHoC:                17500,
		CeilingExposedFraction: 0.999,
		CharRegressionRate:     1,
		CharHoC:                32000,
		GasSpecificHeat:        1000,
		NetEmissivity:          0.8,
		AirDensity:             1,
		ConvectiveCoeff:        35,
		Wall:                   plasterboard,
		Ceiling:                plasterboard,
		Floor:                  plasterboard,
		EndTime:                7200,
		Source:                 Generated,
	}
}

// Validate fails fast on configuration the solver would otherwise turn into
// NaNs mid-run.
func (cfg *Config) Validate() error {
	if err := cfg.Geometry.Validate(); err != nil {
		return err
	}
	if cfg.Source == Generated {
		if err := cfg.Fire.Validate(); err != nil {
			return err
		}
	}
	if cfg.AmbientTemp <= 0 {
		return fmt.Errorf("ambient temperature must be positive kelvin, got %g", cfg.AmbientTemp)
	}
	if cfg.InitialGasTemp < cfg.AmbientTemp {
		return fmt.Errorf("initial gas temperature %g below ambient %g", cfg.InitialGasTemp, cfg.AmbientTemp)
	}
	if cfg.WoodDensity <= 0 || cfg.WoodHoC <= 0 {
		return fmt.Errorf("wood density and heat of combustion must be positive")
	}
	if cfg.CeilingExposedFraction < 0 || cfg.CeilingExposedFraction > 1 {
		return fmt.Errorf("ceiling exposed fraction must be in [0,1], got %g", cfg.CeilingExposedFraction)
	}
	if cfg.CharRegressionRate < 0 || cfg.CharHoC <= 0 {
		return fmt.Errorf("char regression rate must be >= 0 and char heat of combustion positive")
	}
	if cfg.GasSpecificHeat <= 0 || cfg.AirDensity <= 0 {
		return fmt.Errorf("gas specific heat and air density must be positive")
	}
	if cfg.NetEmissivity <= 0 || cfg.NetEmissivity > 1 {
		return fmt.Errorf("net emissivity must be in (0,1], got %g", cfg.NetEmissivity)
	}
	if cfg.ConvectiveCoeff <= 0 {
		return fmt.Errorf("convective heat transfer coefficient must be positive, got %g", cfg.ConvectiveCoeff)
	}
	if cfg.EndTime < 0 {
		return fmt.Errorf("end time must be >= 0, got %g", cfg.EndTime)
	}
	return nil
}

// Zone owns all mutable state of one simulation: the per-boundary temperature
// fields, the gas temperature history and the output buffers. Concurrent runs
// need independent Zones.
type Zone struct {
	Cfg   Config
	Curve *FireCurve
	Ef    float64 // fire emissivity, fixed per run

	// Wall, ceiling, floor. A single shared step bounded by the stiffest of
	// the three keeps every field stable.
	Boundaries []*Boundary
	Dt         float64
	NSteps     int

	stepsDone int64
}

// NewZone validates the configuration, builds the fire curve and the boundary
// fields, and fixes the shared time step.
func NewZone(cfg Config) (z *Zone, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	var curve *FireCurve
	switch cfg.Source {
	case PrescribedTable:
		curve, err = PrescribedFireCurve(cfg.PrescribedTimes, cfg.PrescribedHRR,
			cfg.Geometry, cfg.Ignition, cfg.DecayStart, cfg.DecayEnd)
	case Generated:
		fallthrough
	default:
		curve, err = GenerateFireCurve(cfg.Geometry, cfg.Fire)
	}
	if err != nil {
		return nil, err
	}

	geom := cfg.Geometry
	T0 := cfg.InitialGasTemp
	specs := []struct {
		name string
		spec BoundarySpec
		area float64
	}{
		{"wall", cfg.Wall, geom.WallArea()},
		{"ceiling", cfg.Ceiling, geom.CeilingArea()},
		{"floor", cfg.Floor, geom.FloorArea()},
	}
	z = &Zone{
		Cfg:   cfg,
		Curve: curve,
		Ef:    FireEmissivity(geom.Height),
	}
	dt := math.Inf(1)
	for _, s := range specs {
		b, err := NewBoundary(s.name, s.spec.Mat, s.spec.Thickness, s.area, T0, s.spec.Nodes)
		if err != nil {
			return nil, err
		}
		z.Boundaries = append(z.Boundaries, b)
		dt = math.Min(dt, b.StableStep())
	}
	z.Dt = dt

	endTime := cfg.EndTime
	if endTime == 0 {
		endTime = curve.EndTime()
	}
	z.NSteps = int(math.Round(endTime / dt))
	return z, nil
}

// StepsDone reports loop progress; safe to poll from another goroutine. The
// run itself cannot be interrupted mid-step.
func (z *Zone) StepsDone() int64 {
	return atomic.LoadInt64(&z.stepsDone)
}

// Solve drives the fixed-horizon time loop and assembles the output series.
//
// Per step: look up the content HRR, add the lagged structural terms, cap by
// ventilation, advance the three boundary fields, resolve the gas energy
// balance, then recompute the char state from the full gas temperature
// history. The mass loss rate and char density written at the end of step i
// feed the structural HRR of step i+1 and are never re-derived mid-step.
func (z *Zone) Solve() (res *Results, err error) {
	var (
		cfg   = z.Cfg
		geom  = cfg.Geometry
		curve = z.Curve
		dt    = z.Dt

		Ao       = geom.OpeningArea()
		VGas     = geom.GasVolume()
		ceilArea = geom.CeilingArea()
		exposed  = ceilArea * cfg.CeilingExposedFraction

		Tf = cfg.InitialGasTemp

		// One-step-lagged charring feedback
		mlr        float64
		charRho    float64
		timeMinArr = []float64{0}
		tempArr    = []float64{Tf}
	)
	log.Infof("Zone1D: dt = %.4f s, steps = %d, Qvc = %.1f kW, Ef = %.4f",
		dt, z.NSteps, curve.VentLimit/1000, z.Ef)

	res = newResults(z.NSteps + 1)
	res.append(0, Tf, 0, 0, 0, 0, 0)
	ce := NewCharEstimator(cfg.WoodDensity)

	for i := 1; i <= z.NSteps; i++ {
		t := float64(i) * dt

		// 1. Content fire from the curve; structural terms from the state
		// carried out of step i-1, zero before lining ignition.
		content := curve.HRRAt(t)
		var wood, charReg float64
		if t >= curve.Ignition {
			wood = mlr * cfg.WoodHoC * exposed * 1000
			if charRho > 0 && t >= curve.DecayStart && t <= curve.DecayEnd {
				charReg = CharRegressionHRRPUA(cfg.CharRegressionRate, charRho, cfg.CharHoC) * exposed
			}
		}

		// 2. Ventilation cap; the excess burns outside the openings.
		raw := content + wood + charReg
		total := math.Max(math.Min(raw, curve.VentLimit), 0)
		ext := math.Max(0, raw-curve.VentLimit)
		conv := total * cfg.Fire.ConvectiveFraction

		// 3. Incident radiation on the boundaries, then one conduction step
		// per boundary against the current gas temperature.
		qInc := RadiantFluxToBoundaries(VGas, 1-cfg.Fire.ConvectiveFraction, conv) * (1 - z.Ef)
		for _, b := range z.Boundaries {
			b.Advance(dt, cfg.ConvectiveCoeff, Tf, cfg.NetEmissivity, qInc)
		}

		// 4. Losses with updated surface temperatures, then the new gas
		// temperature, floored at ambient.
		QOpenConv := OpeningConvectiveLoss(geom.OpeningHeight, Ao, cfg.GasSpecificHeat, Tf, cfg.AmbientTemp)
		QOpenRad := OpeningRadiativeLoss(Ao, z.Ef, Tf, externalSinkTemp)
		var QBound float64
		for _, b := range z.Boundaries {
			QBound += BoundaryFlux(Tf, b.SurfaceTemp(), cfg.ConvectiveCoeff, cfg.NetEmissivity) * b.Area
		}
		QGas := GasEnergyBalance(conv, QBound, QOpenConv, QOpenRad)
		Tf = math.Max(cfg.AmbientTemp, Tf+DeltaGasTemp(QGas, dt, cfg.AirDensity, cfg.GasSpecificHeat, VGas))
		if math.IsNaN(Tf) {
			return nil, fmt.Errorf("gas temperature diverged to NaN at step %d (t = %.1f s)", i, t)
		}

		// 5. Char state from the full history; mlr and charRho carried into
		// step i+1.
		timeMinArr = append(timeMinArr, t/60)
		tempArr = append(tempArr, Tf)
		depth, rate, stepMLR := ce.Update(tempArr, timeMinArr, t, dt)
		mlr = stepMLR
		charRho = CharDensity(depth)

		res.append(t, Tf, rate, mlr, wood, total, ext)
		atomic.StoreInt64(&z.stepsDone, int64(i))

		if i%logFrequency == 0 {
			log.Debugf("step %6d  t = %7.1f s  HRR = %8.1f kW  Tg = %7.2f K  char = %6.3f mm",
				i, t, total/1000, Tf, depth)
		}
	}

	// The smoothed char depth series is only final once the run ends; the
	// filter shifts earlier samples as the history grows.
	res.CharDepth = append([]float64(nil), ce.Depths()...)

	res.CurveTimeMin = make([]float64, len(curve.Times))
	for i, ts := range curve.Times {
		res.CurveTimeMin[i] = ts / 60
	}
	res.CurveHRR = append([]float64(nil), curve.Values...)
	return res, nil
}
