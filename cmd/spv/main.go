package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/rgehrsitz/spv/internal/calculation"
	"github.com/rgehrsitz/spv/internal/config"
	"github.com/rgehrsitz/spv/internal/domain"
	"github.com/rgehrsitz/spv/internal/health"
	"github.com/rgehrsitz/spv/internal/output"
	"github.com/spf13/cobra"
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

// defaults holds values read from the environment before any command runs
var defaults = &config.Defaults{}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spv %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "spv",
	Short: "Settlement payment valuation CLI",
	Long:  "Values structured-settlement payment streams and produces present-value cash offers",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		d, err := config.LoadDefaults(envFile)
		if err != nil {
			return err
		}
		defaults = d
		return nil
	},
	SilenceUsage: true,
}

// newEngine builds an engine from --tables, SPV_PRICING_TABLES or the built-in tables
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	tablesPath, _ := cmd.Flags().GetString("tables")
	if tablesPath == "" {
		tablesPath = defaults.PricingTablesPath
	}

	tables := domain.DefaultPricingTables()
	if tablesPath != "" {
		loaded, err := config.NewInputParser().LoadPricingTablesFile(tablesPath)
		if err != nil {
			return nil, err
		}
		tables = *loaded
	}

	engine := calculation.NewEngine(tables)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine, nil
}

// loadValidRequest reads a request file, applies CLI overrides and validates it
func loadValidRequest(cmd *cobra.Command, path string) (config.ValidRequest, error) {
	raw, err := loadRawRequest(cmd, path)
	if err != nil {
		return config.ValidRequest{}, err
	}

	valid, err := config.NewValidator().Validate(*raw)
	if err != nil {
		return config.ValidRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	return valid, nil
}

// loadRawRequest reads a request file and applies the --base-rate and
// --profile overrides without validating
func loadRawRequest(cmd *cobra.Command, path string) (*domain.RawRequest, error) {
	raw, err := config.NewInputParser().LoadRequestFile(path)
	if err != nil {
		return nil, err
	}

	if baseRate, _ := cmd.Flags().GetString("base-rate"); baseRate != "" {
		raw.BaseRate = baseRate
	} else if raw.BaseRate == "" && defaults.BaseRate != nil {
		raw.BaseRate = defaults.BaseRate.String()
	}

	if profilePath, _ := cmd.Flags().GetString("profile"); profilePath != "" {
		profile, err := config.NewInputParser().LoadHealthProfileFile(profilePath)
		if err != nil {
			return nil, err
		}
		raw.IsLifeContingent = true
		raw.LCPKeys = raw.LCPKeys[:0]
		for _, k := range health.Map(*profile).Sorted() {
			raw.LCPKeys = append(raw.LCPKeys, string(k))
		}
	}
	return raw, nil
}

// outputFormat returns the --format flag, or SPV_FORMAT when the flag was not
// given and the command can render that format, or fallback.
func outputFormat(cmd *cobra.Command, fallback string, supported func(string) bool) string {
	format, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") && defaults.Format != "" && supported(defaults.Format) {
		return defaults.Format
	}
	if format == "" {
		return fallback
	}
	return format
}

func reportFormat(name string) bool {
	return output.GetFormatterByName(name) != nil
}

func scheduleFormat(name string) bool {
	switch name {
	case "console", "csv", "json":
		return true
	}
	return false
}

var valueCmd = &cobra.Command{
	Use:   "value [request-file...]",
	Short: "Value one or more settlement requests",
	Long: `Value settlement payment streams and print the resulting offers.

Guaranteed requests produce a min/max range. Life-contingent requests, or any
request combined with --profile, produce a single profile-adjusted value.

Examples:
  spv value request.yaml
  spv value request.yaml --profile health.yaml --format json
  spv value a.yaml b.yaml c.yaml --concurrency 4 --format csv
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		format := outputFormat(cmd, "console", reportFormat)
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("unknown output format %q (valid: %v)", format, output.FormatNames())
		}

		reqs := make([]config.ValidRequest, 0, len(args))
		for _, path := range args {
			valid, err := loadValidRequest(cmd, path)
			if err != nil {
				return err
			}
			reqs = append(reqs, valid)
		}

		concurrency, _ := cmd.Flags().GetInt("concurrency")
		valuations, err := engine.ValueBatch(cmd.Context(), reqs, concurrency)
		if err != nil {
			return err
		}

		now := time.Now()
		reports := make([]*output.Report, len(valuations))
		for i, v := range valuations {
			reports[i] = output.NewReport(v, args[i], now)
		}

		data, err := formatter.Format(reports)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [request-file]",
	Short: "Validate a request file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadValidRequest(cmd, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Request file %s is valid\n", args[0])
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [request-file]",
	Short: "Print the dated cash flows of a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		valid, err := loadValidRequest(cmd, args[0])
		if err != nil {
			return err
		}
		entries := calculation.ScheduleFor(valid.Request()).Entries()

		var data []byte
		switch format := outputFormat(cmd, "console", scheduleFormat); format {
		case "csv":
			data, err = output.FormatScheduleCSV(entries)
		case "json":
			data, err = output.MarshalJSON(entries)
		case "console", "":
			data = []byte(output.RenderSchedule(entries))
		default:
			return fmt.Errorf("unknown output format %q (valid: console, csv, json)", format)
		}
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var healthKeysCmd = &cobra.Command{
	Use:   "health-keys [profile-file]",
	Short: "Print the risk adjustment keys for a health profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := config.NewInputParser().LoadHealthProfileFile(args[0])
		if err != nil {
			return err
		}
		keys := health.Map(*profile).Sorted()
		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(no risk adjustments)")
			return nil
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file with SPV_* defaults (ignored if missing)")

	valueCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, markdown, html)")
	valueCmd.Flags().String("tables", "", "Pricing tables YAML file (default: $SPV_PRICING_TABLES or built-in tables)")
	valueCmd.Flags().String("profile", "", "Health profile YAML file; prices the request as life-contingent")
	valueCmd.Flags().String("base-rate", "", "Override the request's base rate")
	valueCmd.Flags().Int("concurrency", calculation.DefaultBatchConcurrency, "Maximum requests valued in parallel")
	valueCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	validateCmd.Flags().String("base-rate", "", "Override the request's base rate")
	validateCmd.Flags().String("profile", "", "Health profile YAML file")

	scheduleCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")

	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(healthKeysCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
