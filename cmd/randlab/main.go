package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"randlab/adapters/generator"
	"randlab/adapters/postgres"
	"randlab/adapters/stats/tests"
	"randlab/app"
	"randlab/domain/sample"
	"randlab/internal"
	"randlab/internal/config"
	"randlab/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "randlab",
		Short: "Randomness test battery for bounded integer sequences",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newBinsCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		rangeN           int
		count            int
		sourceName       string
		outputDir        string
		seed             int64
		significance     float64
		gapBucket        int
		equalPolicy      string
		entropyThreshold float64
		writeBinary      bool
		storeDSN         string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate sequences, run the five-test battery and export results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags override environment defaults.
			if cmd.Flags().Changed("n") {
				cfg.Analysis.RangeN = rangeN
			}
			if cmd.Flags().Changed("count") {
				cfg.Analysis.Count = count
			}
			if cmd.Flags().Changed("output") {
				cfg.Analysis.OutputDir = outputDir
			}
			if cmd.Flags().Changed("seed") {
				cfg.Analysis.Seed = seed
			}
			if cmd.Flags().Changed("significance") {
				cfg.Battery.SignificanceLevel = significance
			}
			if cmd.Flags().Changed("gap-bucket") {
				cfg.Battery.GapBucketSize = gapBucket
			}
			if cmd.Flags().Changed("equal-policy") {
				cfg.Battery.RunEqualPolicy = sample.EqualPolicy(equalPolicy)
			}
			if cmd.Flags().Changed("entropy-threshold") {
				cfg.Battery.EntropyPassThreshold = entropyThreshold
			}
			if cmd.Flags().Changed("store-dsn") {
				cfg.Store.DSN = storeDSN
			}

			sources, err := resolveSources(sourceName, cfg.Analysis.Seed)
			if err != nil {
				return err
			}

			var store ports.ReportStore
			if cfg.Store.DSN != "" {
				repo, err := postgres.Open(cfg.Store.DSN)
				if err != nil {
					return fmt.Errorf("connect report store: %w", err)
				}
				defer repo.Close()
				store = repo
			}

			service := app.NewAnalysisService(tests.NewBattery(), store, internal.DefaultLogger)
			outcomes, err := service.Run(context.Background(), app.AnalysisRequest{
				Sources:     sources,
				RangeN:      cfg.Analysis.RangeN,
				Count:       cfg.Analysis.Count,
				Battery:     cfg.Battery,
				OutputDir:   cfg.Analysis.OutputDir,
				WriteBinary: writeBinary,
			})
			if err != nil {
				return err
			}

			for _, outcome := range outcomes {
				printOutcome(outcome)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rangeN, "n", 100, "range upper bound, values fall in [0, n)")
	cmd.Flags().IntVar(&count, "count", 10000, "number of values to generate")
	cmd.Flags().StringVar(&sourceName, "source", "all", "source to test (simple|uniform|normal|exponential|poisson|chi_square|mixed|all)")
	cmd.Flags().StringVar(&outputDir, "output", "output", "output directory")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base seed for seeded sources")
	cmd.Flags().Float64Var(&significance, "significance", 0.05, "significance level for the hypothesis tests")
	cmd.Flags().IntVar(&gapBucket, "gap-bucket", 0, "gap bucket width (0 = automatic)")
	cmd.Flags().StringVar(&equalPolicy, "equal-policy", "drop", "equal-value policy for the runs test (drop|extend)")
	cmd.Flags().Float64Var(&entropyThreshold, "entropy-threshold", 0.95, "entropy ratio pass threshold")
	cmd.Flags().BoolVar(&writeBinary, "bin", false, "also write raw binary sample files (needs n <= 256)")
	cmd.Flags().StringVar(&storeDSN, "store-dsn", "", "PostgreSQL DSN for report persistence (optional)")

	return cmd
}

func newBinsCmd() *cobra.Command {
	var (
		outputDir string
		size      int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "bins",
		Short: "Write fixed-size binary sample files for third-party evaluation suites",
		Long: `Writes one raw binary file per source with N=256 so every draw fits a byte.
The files feed external suites such as ent or dieharder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewAnalysisService(tests.NewBattery(), nil, internal.DefaultLogger)
			outcomes, err := service.Run(context.Background(), app.AnalysisRequest{
				Sources:     generator.All(seed),
				RangeN:      256,
				Count:       size,
				OutputDir:   outputDir,
				WriteBinary: true,
			})
			if err != nil {
				return err
			}
			for _, outcome := range outcomes {
				fmt.Printf("%s: %d files\n", outcome.Source, len(outcome.Files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "output_bin", "output directory")
	cmd.Flags().IntVar(&size, "size", 128*1024, "draws per file (one byte each)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base seed for seeded sources")

	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		addr      string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve finished reports over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveReports(addr, outputDir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8095", "listen address")
	cmd.Flags().StringVar(&outputDir, "output", "output", "directory holding *_report.json files")

	return cmd
}

func resolveSources(name string, seed int64) ([]ports.SequenceSource, error) {
	if name == "all" {
		return generator.All(seed), nil
	}
	src, err := generator.New(name, seed)
	if err != nil {
		return nil, err
	}
	return []ports.SequenceSource{src}, nil
}

func printOutcome(outcome app.SourceOutcome) {
	fmt.Printf("\n=== %s (N=%d, count=%d) ===\n", outcome.Source, outcome.Report.RangeN, outcome.Report.SampleSize)
	fmt.Printf("mean=%.2f std=%.2f min=%.0f max=%.0f median=%.2f\n",
		outcome.Summary.Mean, outcome.Summary.StdDev, outcome.Summary.Min, outcome.Summary.Max, outcome.Summary.Median)
	for _, res := range outcome.Report.Results {
		verdict := "inconclusive"
		if res.Passed != nil {
			if *res.Passed {
				verdict = "passed"
			} else {
				verdict = "FAILED"
			}
		}
		df := ""
		if res.DegreesOfFreedom != nil {
			df = fmt.Sprintf(" df=%d", *res.DegreesOfFreedom)
		}
		fmt.Printf("  %-13s stat=%.4f%s p=%.4f  %s\n", res.Name, res.Statistic, df, res.PValue, verdict)
	}
	for _, f := range outcome.Files {
		fmt.Printf("  wrote %s\n", f)
	}
}
