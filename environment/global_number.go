package environment

import (
	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

// Sutherland式の基準粘性係数, Pa s
// 273.15 K における空気の値 (White, Viscous Fluid Flow)
const ReferenceViscosityAir Viscosity = 1.716e-5

// Sutherland式の基準温度, K
const ReferenceTemperatureAir unit.Temperature = 273.15

// 空気のSutherland定数, K
const SutherlandConstantAir unit.Temperature = 110.4

// 空気のモル質量, kg/mol
const MolarMassAir = 0.028966

// 一般ガス定数, J/(mol K)
// アボガドロ定数とボルツマン定数の積 (2019 SI の定義値から厳密に定まる)
const GasConstant = float64(constant.Avogadro) * float64(constant.Boltzmann)

// 標準状態の温度, K
const StandardTemperature unit.Temperature = 298.0

// 標準状態の大気圧, Pa
const StandardPressure unit.Pressure = 101325.0
