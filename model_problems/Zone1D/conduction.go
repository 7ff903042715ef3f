package Zone1D

import (
	"fmt"

	"github.com/firetools/gozone/utils"
)

// Stefan-Boltzmann constant, W/(m^2 K^4)
const Sigma = 5.67e-8

// MaterialProperties holds the thermal properties of a boundary lining.
type MaterialProperties struct {
	Conductivity float64 // W/(m K)
	Density      float64 // kg/m^3
	SpecificHeat float64 // J/(kg K)
}

// Diffusivity returns the thermal diffusivity k/(rho c), m^2/s.
func (mp MaterialProperties) Diffusivity() float64 {
	return mp.Conductivity / (mp.Density * mp.SpecificHeat)
}

func (mp MaterialProperties) validate(name string) error {
	if mp.Conductivity <= 0 {
		return fmt.Errorf("%s: conductivity must be positive, got %g", name, mp.Conductivity)
	}
	if mp.Density <= 0 {
		return fmt.Errorf("%s: density must be positive, got %g", name, mp.Density)
	}
	if mp.SpecificHeat <= 0 {
		return fmt.Errorf("%s: specific heat must be positive, got %g", name, mp.SpecificHeat)
	}
	return nil
}

// Boundary is the 1D finite-difference temperature field through one
// compartment boundary (wall, ceiling or floor). The exposed face is node 0,
// the back face node N-1 and is adiabatic. A Boundary is exclusively owned by
// one Zone for the duration of a run.
type Boundary struct {
	Name      string
	Mat       MaterialProperties
	Thickness float64 // m
	Area      float64 // m^2, exposed area inside the compartment
	N         int     // node count across the thickness
	Dx        float64 // node spacing, m
	Alpha     float64 // diffusivity, m^2/s
	T         []float64
	scratch   []float64
}

func NewBoundary(name string, mat MaterialProperties, thickness, area, T0 float64, nodes int) (b *Boundary, err error) {
	if err = mat.validate(name); err != nil {
		return nil, err
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("%s: thickness must be positive, got %g", name, thickness)
	}
	if nodes < 2 {
		return nil, fmt.Errorf("%s: need at least 2 nodes, got %d", name, nodes)
	}
	if area <= 0 {
		return nil, fmt.Errorf("%s: area must be positive, got %g", name, area)
	}
	b = &Boundary{
		Name:      name,
		Mat:       mat,
		Thickness: thickness,
		Area:      area,
		N:         nodes,
		Dx:        thickness / float64(nodes-1),
		Alpha:     mat.Diffusivity(),
		T:         utils.ConstArray(nodes, T0),
		scratch:   make([]float64, nodes),
	}
	return b, nil
}

// StableStep returns the largest time step this boundary tolerates under the
// explicit scheme, half the classical diffusion limit: 0.25 dx^2 / alpha.
func (b *Boundary) StableStep() float64 {
	return 0.25 * b.Dx * b.Dx / b.Alpha
}

// SurfaceTemp returns the exposed-face temperature, K.
func (b *Boundary) SurfaceTemp() float64 {
	return b.T[0]
}

// Advance steps the temperature field forward by dt. The exposed node sees
// convection against the gas at Tg, net thermal radiation exchange with the
// gas, and the externally supplied incident radiant flux qInc; the back node
// is adiabatic. The caller must supply dt <= StableStep(): the scheme does not
// check and simply diverges if violated.
func (b *Boundary) Advance(dt, hc, Tg, epsNet, qInc float64) {
	var (
		T   = b.T
		Tn  = b.scratch
		N   = b.N
		fo  = b.Alpha * dt / (b.Dx * b.Dx)
		rcd = b.Mat.Density * b.Mat.SpecificHeat * b.Dx
	)
	for i := 1; i < N-1; i++ {
		Tn[i] = T[i] + fo*(T[i+1]-2*T[i]+T[i-1])
	}
	Tn[0] = T[0] +
		(hc*(Tg-T[0])+epsNet*Sigma*(utils.POW(Tg, 4)-utils.POW(T[0], 4))+qInc)*dt/rcd +
		fo*(T[1]-T[0])
	Tn[N-1] = T[N-1] + fo*(T[N-2]-T[N-1])
	b.T, b.scratch = Tn, T
}
