// Package environment describes the ambient state of airborne particles
// and the properties of air derived from it.
package environment

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

// ErrInvalidDimension is returned when a quantity of the wrong physical
// dimension is given for the temperature or the pressure.
var ErrInvalidDimension = errors.New("invalid dimension")

// Environment is the temperature and pressure of the air surrounding the
// particles. The zero value is not meaningful; use New or FromUnits.
//
// Derived properties are defined only for positive temperature and
// pressure.
type Environment struct {
	temperature unit.Temperature // 温度, K
	pressure    unit.Pressure    // 圧力, Pa
}

/*
温度と圧力から環境を作成する。

	Args:
		temperature: 温度, K
		pressure: 圧力, Pa
*/
func New(temperature unit.Temperature, pressure unit.Pressure) Environment {
	return Environment{
		temperature: temperature,
		pressure:    pressure,
	}
}

/*
次元付きの量から環境を作成する。

	Args:
		temperature: 温度の次元を持つ量
		pressure: 圧力の次元を持つ量

	Returns:
		環境
		次元が一致しない場合は ErrInvalidDimension をラップしたエラー
*/
func FromUnits(temperature, pressure unit.Uniter) (Environment, error) {
	var t unit.Temperature
	if err := t.From(temperature); err != nil {
		return Environment{}, fmt.Errorf("temperature %v: %w", temperature.Unit(), ErrInvalidDimension)
	}

	var p unit.Pressure
	if err := p.From(pressure); err != nil {
		return Environment{}, fmt.Errorf("pressure %v: %w", pressure.Unit(), ErrInvalidDimension)
	}

	return New(t, p), nil
}

// 標準状態 (298 K, 101325 Pa) の環境
func Standard() Environment {
	return New(StandardTemperature, StandardPressure)
}

func (e Environment) Temperature() unit.Temperature {
	return e.temperature
}

func (e Environment) Pressure() unit.Pressure {
	return e.pressure
}

func (e Environment) String() string {
	return fmt.Sprintf("T=%v p=%v", e.temperature, e.pressure)
}

/*
空気の粘性係数を計算する。

	Returns:
		空気の粘性係数, Pa s

	Notes:
		Sutherland の式
		mu = mu_ref * (T / T_ref)^(3/2) * (T_ref + S) / (T + S)
		圧力には依存しない。
*/
func (e Environment) DynamicViscosityAir() Viscosity {
	t := float64(e.temperature)
	tRef := float64(ReferenceTemperatureAir)
	s := float64(SutherlandConstantAir)

	return ReferenceViscosityAir * Viscosity(math.Pow(t/tRef, 1.5)*(tRef+s)/(t+s))
}

/*
空気の平均自由行程を計算する。

	Returns:
		空気分子の平均自由行程, m

	Notes:
		気体分子運動論による
		lambda = 2 mu / (p * sqrt(8 M / (pi R T)))
		mu は DynamicViscosityAir の値を用いる。
*/
func (e Environment) MeanFreePathAir() unit.Length {
	mu := e.DynamicViscosityAir().Unit()

	// 一般ガス定数, J/(mol K)
	r := constant.Avogadro.Unit().Mul(constant.Boltzmann)

	// 空気のモル質量, kg/mol
	m := unit.New(MolarMassAir, unit.Dimensions{unit.MassDim: 1, unit.MoleDim: -1})

	// 8 M / (pi R T), s2/m2
	x := m.Mul(unit.Dimless(8 / math.Pi)).Div(r).Div(e.temperature)

	lambda := mu.Mul(unit.Dimless(2)).Div(e.pressure.Unit().Mul(sqrt(x)))

	var l unit.Length
	if err := l.From(lambda); err != nil {
		panic(fmt.Sprintf("environment: mean free path has dimension %v", lambda))
	}
	return l
}

// sqrt returns the square root of u, halving each dimension exponent.
func sqrt(u *unit.Unit) *unit.Unit {
	d := make(unit.Dimensions)
	for k, v := range u.Dimensions() {
		if v%2 != 0 {
			panic(fmt.Sprintf("environment: odd exponent in square root of %v", u))
		}
		d[k] = v / 2
	}
	return unit.New(math.Sqrt(u.Value()), d)
}
