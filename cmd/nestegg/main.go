package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ChrisLanks/nest-egg-sub003/internal/calculation"
	"github.com/ChrisLanks/nest-egg-sub003/internal/config"
	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
	"github.com/ChrisLanks/nest-egg-sub003/internal/output"
	"github.com/ChrisLanks/nest-egg-sub003/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nestegg",
		Short:         "Portfolio Monte Carlo projection engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd(), newGrowthCmd(), newScenariosCmd(), newServeCmd())
	return root
}

func newSimulateCmd() *cobra.Command {
	var (
		paramsPath string
		format     string
		outputPath string
		seed       int64
		scenario   string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo portfolio projection",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewParamsParser()
			params, err := parser.LoadFromFile(paramsPath)
			if err != nil {
				return err
			}
			if seed != 0 {
				params.Seed = seed
			}
			if scenario != "" {
				preset, ok := domain.PresetStressScenario(scenario)
				if !ok {
					return fmt.Errorf("unknown stress scenario %q (available: %v)",
						scenario, domain.PresetStressScenarioNames())
				}
				params.StressOverrides = preset
			}

			engine := calculation.NewMonteCarloEngine()
			if verbose {
				engine.SetLogger(calculation.StderrLogger{})
			}
			summary, err := engine.RunMonteCarloSimulation(*params)
			if err != nil {
				return err
			}
			return output.GenerateReport(summary, format, outputPath)
		},
	}

	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "simulation parameter file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, csv)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed override (0 keeps the file's seed or picks one)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "stress scenario override (see the scenarios command)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine progress to stderr")
	_ = cmd.MarkFlagRequired("params")
	return cmd
}

func newGrowthCmd() *cobra.Command {
	var (
		value        string
		years        int
		annualReturn string
	)

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Deterministic compound growth estimate (no simulation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			currentValue, err := decimal.NewFromString(value)
			if err != nil {
				return fmt.Errorf("invalid --value: %w", err)
			}
			rate, err := decimal.NewFromString(annualReturn)
			if err != nil {
				return fmt.Errorf("invalid --return: %w", err)
			}
			if years < 0 {
				return fmt.Errorf("years cannot be negative, got %d", years)
			}

			result := calculation.CompoundGrowth(currentValue, years, rate)
			fmt.Fprintf(cmd.OutOrStdout(), "%s after %d years at %s%%: %s\n",
				output.FormatAmount(currentValue), years, rate.String(), output.FormatAmount(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "starting portfolio value")
	cmd.Flags().IntVar(&years, "years", 0, "number of years")
	cmd.Flags().StringVar(&annualReturn, "return", "", "annual return in percent (7 means 7%)")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("years")
	_ = cmd.MarkFlagRequired("return")
	return cmd
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List built-in stress scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range domain.PresetStressScenarioNames() {
				scenario, _ := domain.PresetStressScenario(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s (%d return overrides, %d inflation overrides)\n",
					scenario.Name, scenario.Description,
					len(scenario.ReturnOverrides), len(scenario.InflationOverrides))
			}
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation API for the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New().ListenAndServe(fmt.Sprintf(":%d", port))
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "listen port")
	return cmd
}
