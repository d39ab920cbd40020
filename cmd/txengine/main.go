package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/iho/txengine/internal/adapter/csv"
	"github.com/iho/txengine/internal/adapter/repository/memory"
	"github.com/iho/txengine/internal/infrastructure/config"
	"github.com/iho/txengine/internal/infrastructure/idgen"
	"github.com/iho/txengine/internal/infrastructure/logger"
	"github.com/iho/txengine/internal/infrastructure/metrics"
	"github.com/iho/txengine/internal/usecase"
)

var version = "dev"

type options struct {
	configFile  string
	logLevel    string
	logFormat   string
	metricsFile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "txengine [flags] <transactions.csv>",
		Short:        "Process a CSV stream of client transactions",
		Long:         `Applies deposits, withdrawals, disputes, resolves and chargebacks from a CSV file and prints the resulting client accounts as CSV.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error, disabled)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format (json, console)")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open transactions: %w", err)
	}
	defer file.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	engine := usecase.NewEngine(memory.NewAccountRepository(), memory.NewRecordRepository())
	batch := usecase.NewBatchUseCase(engine, m, idgen.NewULIDGenerator(), log)

	if _, err := batch.Process(csv.NewReader(file)); err != nil {
		return err
	}

	if err := csv.NewWriter(cmd.OutOrStdout()).WriteAccounts(engine.Accounts()); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, registry); err != nil {
			log.Error().Err(err).Str("path", cfg.MetricsFile).Msg("failed to write metrics file")
		}
	}

	return nil
}
