package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	input    string
	output   string
	tMin     float64
	tMax     float64
	n        int
	pressure float64
	logLevel string
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "aerosol_dynamics",
	Short: "空気の粘性係数と平均自由行程を計算します。",
	Long: `空気の粘性係数と平均自由行程を計算し、CSVで出力します。

計算条件は --input で指定したCSV (列: temperature [K], pressure [Pa]) から読み込みます。
--input を指定しない場合は、--t-min から --t-max までを --n 点に等分割し、
圧力 --pressure で計算します。

出力列: temperature [K], pressure [Pa], dynamic_viscosity [Pa s], mean_free_path [m]

Examples:

  aerosol_dynamics --t-min 250 --t-max 350 --n 11 -o result.csv
  aerosol_dynamics --input states.csv
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(cmd.ErrOrStderr(), opts.logLevel); err != nil {
			return err
		}
		return run(opts, cmd.OutOrStdout())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.input, "input", "", "計算条件のCSVファイル")
	flags.StringVarP(&opts.output, "output", "o", "-", "出力CSVファイル (- は標準出力)")
	flags.Float64Var(&opts.tMin, "t-min", 200.0, "最低温度, K")
	flags.Float64Var(&opts.tMax, "t-max", 400.0, "最高温度, K")
	flags.IntVar(&opts.n, "n", 21, "温度の分割数 (両端を含む)")
	flags.Float64Var(&opts.pressure, "pressure", 101325.0, "圧力, Pa")
	flags.StringVar(&opts.logLevel, "log", "ERROR", "ログレベルを指定します。 (Default=ERROR)")
}

func setupLogger(w io.Writer, level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})))
	return nil
}

/*
物性値計算の実行

	Args:
		o: 実行オプション
		stdout: 出力ファイルが "-" の場合の出力先
*/
func run(o options, stdout io.Writer) error {
	start := time.Now()

	// ---- 計算条件 ----

	var states []StateRow
	if o.input != "" {
		slog.Info("計算条件の読み込み開始", "path", o.input)
		file, err := os.Open(o.input)
		if err != nil {
			return err
		}
		defer file.Close()

		states, err = readStates(file)
		if err != nil {
			return err
		}
	} else {
		slog.Info("計算条件の生成開始", "t_min", o.tMin, "t_max", o.tMax, "n", o.n, "pressure", o.pressure)
		var err error
		states, err = makeGrid(o.tMin, o.tMax, o.n, o.pressure)
		if err != nil {
			return err
		}
	}

	// ---- 計算 ----

	rows, err := tabulate(states)
	if err != nil {
		return err
	}
	slog.Debug("計算完了", "rows", len(rows))

	// ---- 計算結果ファイルの保存 ----

	if o.output == "-" {
		if err := writeTable(stdout, rows); err != nil {
			return err
		}
	} else {
		// 出力ディレクトリの作成
		if err := os.MkdirAll(filepath.Dir(o.output), 0755); err != nil {
			return err
		}

		slog.Info("Save calculation results", "path", o.output)
		file, err := os.Create(o.output)
		if err != nil {
			return err
		}
		if err := writeTable(file, rows); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}

	slog.Info("elapsed_time", "elapsed", time.Since(start))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
