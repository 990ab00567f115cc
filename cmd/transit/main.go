package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/ArunNairID/transit/internal/server"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	rootCmd := &cobra.Command{
		Use:   "transit",
		Short: "Break-even transit fare and frequency solver",
	}

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(curveCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "solve [project-path]",
		Short: "Solve for the ridership-maximizing break-even operating point",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the solution as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func curveCmd() *cobra.Command {
	var out string
	var samples int

	cmd := &cobra.Command{
		Use:   "curve [project-path]",
		Short: "Plot the break-even residual over the ridership domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCurve(args[0], out, samples)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "curve.png", "output image path")
	cmd.Flags().IntVar(&samples, "samples", 0, "sample count (default from scenario)")
	return cmd
}

func sweepCmd() *cobra.Command {
	var maxFactor float64
	var steps int

	cmd := &cobra.Command{
		Use:   "sweep [project-path]",
		Short: "Re-solve over a range of fixed costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSweep(args[0], maxFactor, steps)
		},
	}

	cmd.Flags().Float64Var(&maxFactor, "factor-max", 2.0, "largest fixed-cost multiple")
	cmd.Flags().IntVar(&steps, "steps", 6, "number of sweep points")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with solution and curve endpoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port, slog.Default())
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
