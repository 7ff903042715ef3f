package Zone1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig keeps runs short and stable. StableStep bounds only the interior
// conduction number; the exposed-node convective and radiative terms eat into
// the same margin and grow with gas temperature, so the test fire is capped
// fuel-controlled at 300 kW to keep the gas cool, and 51 nodes give a 6.8 s
// step over a 900 s horizon (132 steps).
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Fire.HRRPUA = 25
	cfg.Wall.Nodes = 51
	cfg.Ceiling.Nodes = 51
	cfg.Floor.Nodes = 51
	cfg.EndTime = 900
	return cfg
}

func TestNewZone(t *testing.T) {
	z, err := NewZone(testConfig())
	require.NoError(t, err)
	assert.Len(t, z.Boundaries, 3)
	assert.InDelta(t, 6.8125, z.Dt, 1.e-9)
	assert.Equal(t, 132, z.NSteps)
	// Fire emissivity for a 2.4 m tall layer
	assert.InDelta(t, FireEmissivity(2.4), z.Ef, 1.e-15)
}

func TestZoneStableStepIsMinAcrossBoundaries(t *testing.T) {
	// A more diffusive ceiling material tightens the shared step
	cfg := testConfig()
	cfg.Ceiling.Mat = MaterialProperties{Conductivity: 1.6, Density: 2300, SpecificHeat: 1000}
	z, err := NewZone(cfg)
	require.NoError(t, err)
	ceiling := z.Boundaries[1]
	assert.Equal(t, "ceiling", ceiling.Name)
	assert.Equal(t, ceiling.StableStep(), z.Dt)
	assert.Less(t, z.Dt, z.Boundaries[0].StableStep())
}

func TestZoneSolve(t *testing.T) {
	z, err := NewZone(testConfig())
	require.NoError(t, err)
	res, err := z.Solve()
	require.NoError(t, err)

	require.Equal(t, z.NSteps+1, res.Len())
	assert.Equal(t, int64(z.NSteps), z.StepsDone())

	ambientC := z.Cfg.AmbientTemp - 273
	for i := 0; i < res.Len(); i++ {
		if i > 0 {
			assert.Greater(t, res.TimeMin[i], res.TimeMin[i-1])
		}
		// Ambient is a hard floor
		assert.GreaterOrEqual(t, res.GasTemp[i], ambientC-1.e-9)
		// Delivered HRR never exceeds the ventilation limit
		assert.GreaterOrEqual(t, res.HRRTotal[i], 0.)
		assert.LessOrEqual(t, res.HRRTotal[i], z.Curve.VentLimit+1.e-6)
		// External burning only once the cap binds
		if res.HRRExternal[i] > 0 {
			assert.InDelta(t, z.Curve.VentLimit, res.HRRTotal[i], 1.e-6)
		}
	}

	// First step is inside the charring dead band: cool gas, t < 60 s
	assert.Equal(t, 0., res.CharringRate[1])

	// The gas heats during growth
	assert.Greater(t, res.GasTemp[res.Len()-1], res.GasTemp[0])

	// Smoothed char depth series spans the run and does not regress beyond
	// filter tolerance
	require.Equal(t, res.Len(), len(res.CharDepth))
	for i := 1; i < len(res.CharDepth); i++ {
		assert.GreaterOrEqual(t, res.CharDepth[i], res.CharDepth[i-1]-1.e-6)
	}

	// The design curve is exported alongside the per-step series
	assert.Equal(t, len(z.Curve.Times), len(res.CurveTimeMin))
	assert.Equal(t, len(z.Curve.Values), len(res.CurveHRR))
}

func TestZoneSolvePrescribed(t *testing.T) {
	cfg := testConfig()
	cfg.Source = PrescribedTable
	cfg.PrescribedTimes = []float64{0, 120, 600, 900}
	cfg.PrescribedHRR = []float64{0, 300, 300, 0}
	cfg.Ignition = 120
	cfg.DecayStart = 600
	cfg.DecayEnd = 900

	z, err := NewZone(cfg)
	require.NoError(t, err)
	res, err := z.Solve()
	require.NoError(t, err)
	assert.Equal(t, z.NSteps+1, res.Len())
	assert.Greater(t, res.GasTemp[res.Len()-1], res.GasTemp[0])
}

func TestZoneEndTimeDefaultsToCurveEnd(t *testing.T) {
	cfg := testConfig()
	cfg.EndTime = 0
	z, err := NewZone(cfg)
	require.NoError(t, err)
	assert.Equal(t, int(z.Curve.EndTime()/z.Dt+0.5), z.NSteps)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero breadth", func(c *Config) { c.Geometry.Breadth = 0 }},
		{"opening taller than room", func(c *Config) { c.Geometry.OpeningHeight = 3 }},
		{"negative growth rate", func(c *Config) { c.Fire.GrowthRate = -1 }},
		{"zero ambient", func(c *Config) { c.AmbientTemp = 0 }},
		{"initial below ambient", func(c *Config) { c.InitialGasTemp = 200 }},
		{"zero wood density", func(c *Config) { c.WoodDensity = 0 }},
		{"exposed fraction above one", func(c *Config) { c.CeilingExposedFraction = 1.5 }},
		{"negative regression rate", func(c *Config) { c.CharRegressionRate = -1 }},
		{"zero air density", func(c *Config) { c.AirDensity = 0 }},
		{"emissivity above one", func(c *Config) { c.NetEmissivity = 1.2 }},
		{"zero convective coefficient", func(c *Config) { c.ConvectiveCoeff = 0 }},
		{"negative end time", func(c *Config) { c.EndTime = -1 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		assert.Errorf(t, cfg.Validate(), "case %q", tc.name)
	}
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestNewHRRSourceType(t *testing.T) {
	assert.Equal(t, Generated, NewHRRSourceType("generated"))
	assert.Equal(t, PrescribedTable, NewHRRSourceType("prescribed"))
	assert.Panics(t, func() { NewHRRSourceType("bogus") })
}
