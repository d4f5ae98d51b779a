package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/unit"

	"aerosol_dynamics/environment"
)

var errInvalidGrid = errors.New("invalid grid")

// 計算条件の1行
type StateRow struct {
	Temperature float64 `csv:"temperature"` // 温度, K
	Pressure    float64 `csv:"pressure"`    // 圧力, Pa
}

// 計算結果の1行
type PropertyRow struct {
	Temperature      float64 `csv:"temperature"`       // 温度, K
	Pressure         float64 `csv:"pressure"`          // 圧力, Pa
	DynamicViscosity float64 `csv:"dynamic_viscosity"` // 空気の粘性係数, Pa s
	MeanFreePath     float64 `csv:"mean_free_path"`    // 空気の平均自由行程, m
}

/*
温度を等間隔に分割した計算条件を作成する。

	Args:
		tMin: 最低温度, K
		tMax: 最高温度, K
		n: 分割数 (両端を含む)
		pressure: 圧力, Pa

	Returns:
		計算条件, [n]
*/
func makeGrid(tMin, tMax float64, n int, pressure float64) ([]StateRow, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n must be at least 2, got %d", errInvalidGrid, n)
	}
	if tMin <= 0 || tMin >= tMax {
		return nil, fmt.Errorf("%w: need 0 < t-min < t-max, got %g and %g", errInvalidGrid, tMin, tMax)
	}
	if pressure <= 0 {
		return nil, fmt.Errorf("%w: pressure must be positive, got %g", errInvalidGrid, pressure)
	}

	ts := floats.Span(make([]float64, n), tMin, tMax)

	states := make([]StateRow, n)
	for i, t := range ts {
		states[i] = StateRow{Temperature: t, Pressure: pressure}
	}
	return states, nil
}

// CSVから計算条件を読み込む。
func readStates(r io.Reader) ([]StateRow, error) {
	var states []StateRow
	if err := gocsv.Unmarshal(r, &states); err != nil {
		return nil, fmt.Errorf("read states: %w", err)
	}
	return states, nil
}

/*
各計算条件について空気の物性値を計算する。

	Args:
		states: 計算条件

	Returns:
		計算結果

	Notes:
		温度・圧力が正でない行があればその行番号 (1始まり) を含むエラーを返す。
*/
func tabulate(states []StateRow) ([]PropertyRow, error) {
	rows := make([]PropertyRow, len(states))
	for i, s := range states {
		if s.Temperature <= 0 || s.Pressure <= 0 {
			return nil, fmt.Errorf("row %d: temperature and pressure must be positive, got %g K and %g Pa",
				i+1, s.Temperature, s.Pressure)
		}

		e := environment.New(unit.Temperature(s.Temperature), unit.Pressure(s.Pressure))
		rows[i] = PropertyRow{
			Temperature:      float64(e.Temperature()),
			Pressure:         float64(e.Pressure()),
			DynamicViscosity: float64(e.DynamicViscosityAir()),
			MeanFreePath:     float64(e.MeanFreePathAir()),
		}
	}
	return rows, nil
}

func writeTable(w io.Writer, rows []PropertyRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
