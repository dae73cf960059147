package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/soopatree/balloon/internal/cli"
	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "balloon",
		Short: "🎈 Donation log statistics for streaming exports",
		Long: `balloon reads a streaming platform's donation export (CSV), ranks donors
by total balloons, tallies roulette outcomes per donor, and writes both
views back out as spreadsheet-friendly files.`,
		PersistentPreRunE: initConfig,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/balloon/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	// Input and filter flags shared by every command that reads an export
	flags.String("shape", "donor", "record shape (donor, dated)")
	flags.String("encoding", "auto", "input encoding (auto, utf-8, euc-kr)")
	flags.String("preset", "", "date preset (all, 1day, 7days, 30days, 90days, 365days, custom)")
	flags.String("start", "", "custom range start (YYYY-MM-DD)")
	flags.String("end", "", "custom range end (YYYY-MM-DD)")
	flags.String("min", "", "minimum balloons per donation")
	flags.String("max", "", "maximum balloons per donation")
	flags.Bool("keep-order", true, "keep a manual column order across filter changes")
	flags.Bool("progress", false, "show a progress bar while reading the export")

	// Bind flags to viper
	bindings := map[string]string{
		config.KeyLogLevel:        "log-level",
		config.KeyLogFormat:       "log-format",
		config.KeyShape:           "shape",
		config.KeyEncoding:        "encoding",
		config.KeyPreset:          "preset",
		config.KeyStart:           "start",
		config.KeyEnd:             "end",
		config.KeyMin:             "min",
		config.KeyMax:             "max",
		config.KeyKeepManualOrder: "keep-order",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	// Add commands
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func reportError(err error) {
	common.LogError(err, "Command failed", common.Fields{"fatal": common.IsFatal(err)})
	fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
}

func initConfig(_ *cobra.Command, _ []string) error {
	config.SetDefaults(viper.GetViper())

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/balloon", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. BALLOON_FILTER_MIN
	viper.SetEnvPrefix("BALLOON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := common.SetupLogger(viper.GetString(config.KeyLogLevel), viper.GetString(config.KeyLogFormat)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "balloon %s\n", version)
		},
	}
}
