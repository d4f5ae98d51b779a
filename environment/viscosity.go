package environment

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

// Viscosity represents a dynamic viscosity in Pa s.
type Viscosity float64

const PascalSecond Viscosity = 1

var viscosityDimensions = unit.Dimensions{
	unit.MassDim:   1,
	unit.LengthDim: -1,
	unit.TimeDim:   -1,
}

// Unit converts the Viscosity to a *unit.Unit.
func (v Viscosity) Unit() *unit.Unit {
	return unit.New(float64(v), viscosityDimensions)
}

// Viscosity allows Viscosity to implement a Viscositer interface.
func (v Viscosity) Viscosity() Viscosity {
	return v
}

// From converts the unit into the receiver. From returns an
// error if there is a mismatch in dimension.
func (v *Viscosity) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, PascalSecond) {
		*v = Viscosity(math.NaN())
		return errors.New("environment: dimension mismatch")
	}
	*v = Viscosity(u.Unit().Value())
	return nil
}

func (v Viscosity) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T(%v)", v, float64(v))
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		w, wOk := fs.Width()
		switch {
		case pOk && wOk:
			fmt.Fprintf(fs, "%*.*"+string(c), w, p, float64(v))
		case pOk:
			fmt.Fprintf(fs, "%.*"+string(c), p, float64(v))
		case wOk:
			fmt.Fprintf(fs, "%*"+string(c), w, float64(v))
		default:
			fmt.Fprintf(fs, "%"+string(c), float64(v))
		}
		fmt.Fprint(fs, " Pa s")
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%g Pa s)", c, v, float64(v))
	}
}
