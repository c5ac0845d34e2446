// Command gaunt prints the Gaunt expansion of P_n^m·P_ν^μ for one parameter
// tuple. Without flags it reproduces the reference demo (500, 500, 400, 400).
//
//	gaunt --n 4 --nu 7 --m 1 --mu 3
//	gaunt --format json --strict
//	gaunt --config run.yaml -v
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gaunt/gaunt"
)

// rootOptions carries flag values and the logger for one command instance.
type rootOptions struct {
	cfgFile string
	verbose bool
	flags   Config
	logger  *zap.Logger
}

// newRootCmd builds the command. A non-nil logger is used as is; otherwise
// a zap production logger is created before the run.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	o := &rootOptions{flags: DefaultConfig(), logger: logger}
	ownLogger := logger == nil

	cmd := &cobra.Command{
		Use:   "gaunt",
		Short: "Gaunt coefficients for products of associated Legendre functions",
		Long: `gaunt computes qmax, a0 and the normalized coefficients ã(q) of

  P_n^m(x)·P_ν^μ(x) = a0 · Σ_{q=0..qmax} ã(q) · P_{n+ν−2q}^{m+μ}(x)

for one (n, ν, m, μ). Values come from --config (YAML) and flags; flags win.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !ownLogger {
				return nil
			}
			config := zap.NewProductionConfig()
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			o.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ownLogger && o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.cfgFile, "config", "c", "", "YAML config file")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	f.IntVar(&o.flags.N, "n", o.flags.N, "degree n of the first factor")
	f.IntVar(&o.flags.Nu, "nu", o.flags.Nu, "degree ν of the second factor")
	f.IntVar(&o.flags.M, "m", o.flags.M, "order m of the first factor")
	f.IntVar(&o.flags.Mu, "mu", o.flags.Mu, "order μ of the second factor")
	f.StringVarP(&o.flags.Format, "format", "f", o.flags.Format, "output format: text, json or yaml")
	f.BoolVar(&o.flags.Validate, "validate", false, "reject |m| > n, |μ| > ν and negative degrees")
	f.BoolVar(&o.flags.Strict, "strict", false, "fail on zero divisors and NaN/Inf instead of printing them")

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	cfg := o.flags
	if o.cfgFile != "" {
		fileCfg, err := loadConfig(o.cfgFile)
		if err != nil {
			return err
		}
		o.logger.Debug("Loaded config", zap.String("path", o.cfgFile))
		cfg = mergeFlags(cmd, fileCfg, o.flags)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	p := cfg.Params()
	branches := make(map[int]gaunt.Branch)
	opts := append(cfg.Options(), gaunt.WithBranchHook(func(q int, b gaunt.Branch) {
		branches[q] = b
	}))

	o.logger.Debug("Computing expansion",
		zap.Stringer("params", p),
		zap.Bool("validate", cfg.Validate),
		zap.Bool("strict", cfg.Strict))

	start := time.Now()
	res, err := gaunt.Compute(p, opts...)
	if err != nil {
		o.logger.Error("Computation failed", zap.Stringer("params", p), zap.Error(err))

		return err
	}

	o.logger.Info("Computed expansion",
		zap.Stringer("params", p),
		zap.Int("qmax", res.QMax),
		zap.Float64("a0", res.A0),
		zap.Duration("elapsed", time.Since(start)))

	if q := firstNonFinite(res.Coeffs); q >= 0 {
		o.logger.Warn("Non-finite coefficients; rerun with --strict to fail instead",
			zap.Int("first_q", q))
	}
	if res.A0 == 0 {
		o.logger.Warn("a0 underflows float64; use ln a0", zap.Float64("log_a0", gaunt.LogA0(p.N, p.Nu, p.M, p.Mu)))
	}

	return render(cmd.OutOrStdout(), newReport(p, res, branches), cfg.Format)
}

// firstNonFinite returns the first index holding NaN or ±Inf, or −1.
func firstNonFinite(a []float64) int {
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}

	return -1
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
