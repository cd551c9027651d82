package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/growthkit/mrrcalc/internal/calculation"
	"github.com/growthkit/mrrcalc/internal/compare"
	"github.com/growthkit/mrrcalc/internal/config"
	"github.com/growthkit/mrrcalc/internal/domain"
	"github.com/growthkit/mrrcalc/internal/goalseek"
	"github.com/growthkit/mrrcalc/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mrrcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "mrrcalc",
	Short: "MRR Growth Calculator CLI",
	Long:  "Month-by-month MRR projection and growth lever analysis for subscription businesses",
}

// loadConfiguration builds the working configuration: the config file when
// one is given, built-in defaults otherwise, with any lever flags layered on
// top as overrides.
func loadConfiguration(cmd *cobra.Command) *config.Configuration {
	configFile, _ := cmd.Flags().GetString("config")

	var configData *config.Configuration
	if configFile != "" {
		parser := config.NewInputParser()
		var err error
		configData, err = parser.LoadFromFile(configFile)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		configData = config.DefaultConfiguration()
	}

	applyLeverFlags(cmd, configData)
	return configData
}

// applyLeverFlags layers --churn, --arpu and --activation onto the loaded
// overrides. A flag left at its default is ignored.
func applyLeverFlags(cmd *cobra.Command, configData *config.Configuration) {
	flagLevers := []struct {
		flag string
		id   domain.LeverID
	}{
		{"churn", domain.LeverRetention},
		{"arpu", domain.LeverMonetization},
		{"activation", domain.LeverActivation},
	}

	for _, fl := range flagLevers {
		if !cmd.Flags().Changed(fl.flag) {
			continue
		}
		raw, _ := cmd.Flags().GetFloat64(fl.flag)
		configData.Overrides = configData.Overrides.WithLever(fl.id, decimal.NewFromFloat(raw))
	}
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

// horizonPoints trims the standard display milestones to the configured
// horizon.
func horizonPoints(horizon int) []int {
	points := make([]int, 0, 8)
	for _, m := range domain.HorizonPoints() {
		if m <= horizon {
			points = append(points, m)
		}
	}
	if len(points) == 0 || points[len(points)-1] != horizon {
		points = append(points, horizon)
	}
	return points
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project MRR month by month for the baseline and the current scenario",
	Run: func(cmd *cobra.Command, args []string) {
		configData := loadConfiguration(cmd)
		engine := newEngine(cmd)

		points := horizonPoints(configData.HorizonMonths)
		baseline := engine.ProjectSeries(configData.Assumptions, domain.Overrides{}, points)
		scenario := engine.ProjectSeries(configData.Assumptions, configData.Overrides, points)

		outputFormat, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)
		if err := rg.ProjectionReport(baseline, scenario, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Show the independent month-12 MRR impact of each growth lever",
	Long: `Show how much each lever moves month-12 MRR, measured one lever at
a time against the untouched baseline. Current overrides and suggested
targets are reported side by side.

Use --sweep to trace a single lever across its whole range instead:

  mrrcalc impact --sweep retention --steps 10
`,
	Run: func(cmd *cobra.Command, args []string) {
		configData := loadConfiguration(cmd)
		engine := newEngine(cmd)
		outputFormat, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)

		sweepLever, _ := cmd.Flags().GetString("sweep")
		if sweepLever != "" {
			id := domain.LeverID(sweepLever)
			if _, ok := domain.LeverByID(id); !ok {
				log.Fatalf("unknown lever: %s (valid: retention, monetization, activation)", sweepLever)
			}
			steps, _ := cmd.Flags().GetInt("steps")
			points := engine.SweepLever(configData.Assumptions, id, steps)
			if err := rg.SweepReport(id, points, outputFormat); err != nil {
				log.Fatal(err)
			}
			return
		}

		current := engine.CurrentImpacts(configData.Assumptions, configData.Overrides)
		target := engine.TargetImpacts(configData.Assumptions)
		if err := rg.ImpactReport(current, target, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Summarize the current scenario in one ranked insight",
	Run: func(cmd *cobra.Command, args []string) {
		configData := loadConfiguration(cmd)
		engine := newEngine(cmd)

		insight := engine.RankedInsight(configData.Assumptions, configData.Overrides)

		outputFormat, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)
		if err := rg.InsightReport(insight, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Rank the growth initiatives by remaining unrealized upside",
	Run: func(cmd *cobra.Command, args []string) {
		configData := loadConfiguration(cmd)
		engine := newEngine(cmd)

		plan := engine.PrioritizePlan(configData.Assumptions, configData.Overrides)

		outputFormat, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)
		if err := rg.PlanReport(plan, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var seekCmd = &cobra.Command{
	Use:   "seek [lever] [target-mrr]",
	Short: "Find the lever value that reaches a target month-12 MRR",
	Long: `Binary-search a single lever for the value that hits the given
month-12 MRR, holding every other override in place.

Examples:
  mrrcalc seek monetization 1262453
  mrrcalc seek retention 975000 --config growth.yaml
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		configData := loadConfiguration(cmd)
		engine := newEngine(cmd)

		target, err := decimal.NewFromString(args[1])
		if err != nil {
			log.Fatalf("invalid target MRR %q: %v", args[1], err)
		}

		solver := goalseek.NewDefaultSolver(engine)
		result, err := solver.Seek(context.Background(), goalseek.SeekRequest{
			Assumptions: configData.Assumptions,
			Overrides:   configData.Overrides,
			Lever:       domain.LeverID(args[0]),
			TargetMRR:   target,
		})
		if err != nil {
			log.Fatalf("Goal seek failed: %v", err)
		}

		fmt.Print(goalseek.FormatResult(result))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the baseline, the current scenario, and each lever at target",
	Run: func(cmd *cobra.Command, args []string) {
		configData := loadConfiguration(cmd)
		engine := newEngine(cmd)

		compareEngine := compare.NewCompareEngine(engine)
		comparisonSet := compareEngine.Compare(configData.Assumptions, configData.Overrides)
		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			comparisonSet.ConfigPath = configFile
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(comparisonSet))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		_, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file (built-in defaults if omitted)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")
	rootCmd.PersistentFlags().Float64("churn", 0, "Override monthly churn rate, percent")
	rootCmd.PersistentFlags().Float64("arpu", 0, "Override ARPU, thousands per month")
	rootCmd.PersistentFlags().Float64("activation", 0, "Override activation rate, percent")

	projectCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	impactCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	impactCmd.Flags().String("sweep", "", "Sweep a single lever across its range (retention, monetization, activation)")
	impactCmd.Flags().Int("steps", 8, "Number of sweep steps")
	insightCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	planCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(impactCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(seekCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
