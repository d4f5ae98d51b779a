package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeGrid(t *testing.T) {
	states, err := makeGrid(200, 400, 5, 101325)
	require.NoError(t, err)
	require.Len(t, states, 5)

	for i, want := range []float64{200, 250, 300, 350, 400} {
		assert.InDelta(t, want, states[i].Temperature, 1e-9)
		assert.Equal(t, 101325.0, states[i].Pressure)
	}
}

func TestMakeGridInvalid(t *testing.T) {
	tests := []struct {
		name       string
		tMin, tMax float64
		n          int
		pressure   float64
	}{
		{"single point", 200, 400, 1, 101325},
		{"reversed range", 400, 200, 5, 101325},
		{"empty range", 300, 300, 5, 101325},
		{"zero temperature", 0, 400, 5, 101325},
		{"negative pressure", 200, 400, 5, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := makeGrid(tt.tMin, tt.tMax, tt.n, tt.pressure)
			assert.True(t, errors.Is(err, errInvalidGrid), "got %v", err)
		})
	}
}

func TestReadStates(t *testing.T) {
	in := "temperature,pressure\n298,101325\n273.15,50000\n"

	states, err := readStates(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []StateRow{
		{Temperature: 298, Pressure: 101325},
		{Temperature: 273.15, Pressure: 50000},
	}, states)
}

func TestTabulate(t *testing.T) {
	rows, err := tabulate([]StateRow{{Temperature: 298, Pressure: 101325}})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 298.0, rows[0].Temperature)
	assert.Equal(t, 101325.0, rows[0].Pressure)
	assert.InEpsilon(t, 1.836e-5, rows[0].DynamicViscosity, 1e-3)
	assert.InEpsilon(t, 6.644e-8, rows[0].MeanFreePath, 1e-3)
}

func TestTabulateRejectsNonPositive(t *testing.T) {
	_, err := tabulate([]StateRow{
		{Temperature: 298, Pressure: 101325},
		{Temperature: 298, Pressure: 0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteTable(t *testing.T) {
	rows, err := tabulate([]StateRow{{Temperature: 298, Pressure: 101325}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, rows))

	header, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, "temperature,pressure,dynamic_viscosity,mean_free_path", header)

	var got []PropertyRow
	require.NoError(t, gocsv.Unmarshal(&buf, &got))
	require.Len(t, got, 1)
	assert.InEpsilon(t, rows[0].MeanFreePath, got[0].MeanFreePath, 1e-12)
	assert.InEpsilon(t, rows[0].DynamicViscosity, got[0].DynamicViscosity, 1e-12)
}

func TestRunGridToStdout(t *testing.T) {
	var buf bytes.Buffer
	err := run(options{output: "-", tMin: 250, tMax: 350, n: 3, pressure: 101325}, &buf)
	require.NoError(t, err)

	var got []PropertyRow
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &got))
	require.Len(t, got, 3)
	assert.Less(t, got[0].MeanFreePath, got[1].MeanFreePath)
	assert.Less(t, got[1].MeanFreePath, got[2].MeanFreePath)
}

func TestRunInputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "states.csv")
	output := filepath.Join(dir, "out", "result.csv")
	require.NoError(t, os.WriteFile(input, []byte("temperature,pressure\n298,101325\n298,202650\n"), 0644))

	require.NoError(t, run(options{input: input, output: output}, nil))

	file, err := os.Open(output)
	require.NoError(t, err)
	defer file.Close()

	var got []PropertyRow
	require.NoError(t, gocsv.UnmarshalFile(file, &got))
	require.Len(t, got, 2)
	assert.Equal(t, got[0].DynamicViscosity, got[1].DynamicViscosity)
	assert.InEpsilon(t, got[0].MeanFreePath/2, got[1].MeanFreePath, 1e-12)
}

func TestRunMissingInput(t *testing.T) {
	err := run(options{input: filepath.Join(t.TempDir(), "missing.csv"), output: "-"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	assert.NoError(t, setupLogger(&buf, "debug"))
	assert.Error(t, setupLogger(&buf, "loud"))
}
