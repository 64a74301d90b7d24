package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/dpgo/internal/cli"
	"github.com/rgehrsitz/dpgo/internal/compare"
	"github.com/rgehrsitz/dpgo/internal/config"
	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/feasibility"
	"github.com/rgehrsitz/dpgo/internal/minimum"
	"github.com/rgehrsitz/dpgo/internal/plan"
	"github.com/rgehrsitz/dpgo/internal/report"
	"github.com/rgehrsitz/dpgo/internal/simulation"
	"github.com/rgehrsitz/dpgo/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var statePath string

var rootCmd = &cobra.Command{
	Use:   "dpgo",
	Short: "Debt Payoff Planner CLI",
	Long:  "Simulates multi-debt payoff under snowball and avalanche strategies and checks whether the plan is feasible at all",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "dpgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadConfiguration resolves the planning inputs: from an explicit input
// file when one is given (persisting it to the state db when configured), or
// from the last saved snapshot otherwise.
func loadConfiguration(args []string) (*domain.Configuration, error) {
	if len(args) > 0 {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		if statePath != "" {
			if err := saveSnapshot(cfg); err != nil {
				return nil, err
			}
		}
		return cfg, nil
	}

	if statePath == "" {
		return nil, fmt.Errorf("no input file given and no --state database configured")
	}
	st, err := store.Open(statePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = st.Close() }()

	cfg, err := st.Load(store.DefaultKey)
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil, fmt.Errorf("state database %s holds no saved inputs yet; pass an input file first", statePath)
	}
	return cfg, err
}

func saveSnapshot(cfg *domain.Configuration) error {
	st, err := store.Open(statePath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	return st.Save(store.DefaultKey, cfg)
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [input-file]",
		Short: "Run the reality check: income vs bills vs minimums vs month 1",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args)
			if err != nil {
				return err
			}

			assessment := feasibility.Evaluate(feasibility.Input{
				Income:  cfg.Income,
				Bills:   cfg.Bills,
				Debts:   minimum.Annotate(cfg.Debts),
				Funding: cfg.Funding,
			})
			fmt.Print(cli.RenderAssessment(assessment))
			return nil
		},
	}
}

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [input-file]",
		Short: "Simulate a single payoff strategy month by month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args)
			if err != nil {
				return err
			}

			strategyName, _ := cmd.Flags().GetString("strategy")
			strategy := domain.Strategy(strategyName)
			if strategy != domain.StrategySnowball && strategy != domain.StrategyAvalanche {
				return fmt.Errorf("strategy must be 'snowball' or 'avalanche', got %q", strategyName)
			}

			annotated := minimum.Annotate(cfg.Debts)
			assessment := feasibility.Evaluate(feasibility.Input{
				Income:  cfg.Income,
				Bills:   cfg.Bills,
				Debts:   annotated,
				Funding: cfg.Funding,
			})
			if assessment.AtRisk {
				fmt.Print(cli.RenderAssessment(assessment))
				return feasibility.ErrNotFeasible
			}

			provider := plan.NewProvider(cfg.Funding, annotated)
			sim := simulation.NewSimulator(provider, cfg.Funding.Mode == domain.FundingSchedule)
			run := sim.Run(strategy, cfg.Debts)

			if run.Invalid() {
				return fmt.Errorf("month %d requires $%s but only $%s is funded",
					run.Timeline[0].Month,
					run.Timeline[0].RequiredSum.StringFixed(2),
					run.Timeline[0].FundingAmount.StringFixed(2))
			}

			printRun(run)
			return nil
		},
	}
	cmd.Flags().StringP("strategy", "s", string(domain.StrategySnowball), "Payoff strategy: snowball or avalanche")
	return cmd
}

func printRun(run *domain.RunResult) {
	fmt.Printf("Strategy: %s\n", run.Strategy)
	if run.PaidOff() {
		fmt.Printf("Debt free in %d month(s)\n", run.MonthsToDebtFree)
	} else {
		fmt.Printf("Not debt free after %d months ($%s remaining)\n",
			run.MonthsToDebtFree, run.RemainingBalance.StringFixed(2))
	}
	fmt.Printf("Total interest: $%s\n\n", run.TotalInterest.StringFixed(2))
	for _, d := range run.Debts {
		fmt.Printf("  %-24s %6s%%  paid off month %3d  $%s interest\n",
			d.Name, d.AnnualRatePercent.StringFixed(2), d.PayoffMonth, d.InterestPaid.StringFixed(2))
	}
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Run both strategies and pick a winner for the configured goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args)
			if err != nil {
				return err
			}

			engine := compare.NewEngine()
			comparison, err := engine.Compare(cmd.Context(), compare.Input{
				Debts:   cfg.Debts,
				Funding: cfg.Funding,
				Goal:    cfg.Goal,
				Income:  cfg.Income,
				Bills:   cfg.Bills,
			})
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				jf := &compare.JSONFormatter{Pretty: true}
				out, err := jf.Format(comparison)
				if err != nil {
					return err
				}
				fmt.Println(out)
			case "csv":
				cf := &compare.CSVFormatter{}
				out, err := cf.Format(comparison)
				if err != nil {
					return err
				}
				fmt.Print(out)
			default:
				tf := &compare.TableFormatter{}
				fmt.Print(tf.Format(comparison))
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "table", "Output format: table, json, or csv")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input-file]",
		Short: "Export the payoff report through the report service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args)
			if err != nil {
				return err
			}

			url, _ := cmd.Flags().GetString("url")
			outPath, _ := cmd.Flags().GetString("out")

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			exporter := report.NewExporter(url)
			artifact, err := exporter.Export(ctx, cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, artifact, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			now := time.Now().UTC()
			cfg.LastExportAt = &now
			if statePath != "" {
				if err := saveSnapshot(cfg); err != nil {
					return err
				}
			}

			fmt.Printf("Report written to %s (%d bytes)\n", outPath, len(artifact))
			return nil
		},
	}
	cmd.Flags().String("url", "", "Report service URL")
	cmd.Flags().StringP("out", "o", "payoff-report.pdf", "Output file for the report artifact")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "SQLite database for persisting inputs between runs")
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(exportCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
