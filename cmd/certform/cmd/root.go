package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-certform/internal/config"
	"github.com/goliatone/go-certform/internal/logger"
)

var (
	cfgFile  string
	envFile  string
	logLevel string

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "certform",
	Short: "Barangay Certification form with a live certificate preview",
	Long: `certform serves the Barangay Certification form in the browser, fills it
from the terminal and renders the certificate as HTML or plain text.

Settings come from CERTFORM_* environment variables, an optional .env file
and an optional config file; flags override both.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	options := []config.Option{}
	if cfgFile != "" {
		options = append(options, config.WithConfigFile(cfgFile))
	}
	if envFile != "" {
		options = append(options, config.WithEnvFile(envFile))
	}
	if logLevel != "" {
		options = append(options, config.WithOverride(config.KeyLogLevel, logLevel))
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			options = append(options, config.WithOverride(key, f.Value.String()))
		}
	}

	var err error
	cfg, err = config.Load(options...)
	if err != nil {
		return err
	}
	log = logger.New(cfg.Env, logger.WithLevel(cfg.Log.Level), logger.WithWriter(os.Stderr))
	return nil
}

// flagKeys maps command flags to the config keys they override.
var flagKeys = map[string]string{
	"addr":        config.KeyServerAddress,
	"session-ttl": config.KeySessionTTL,
	"qr":          config.KeyPreviewQR,
	"barangay":    config.KeyBarangay,
	"city":        config.KeyCity,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load instead of ./.env")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("barangay", "", "barangay printed on the certificate")
	rootCmd.PersistentFlags().String("city", "", "city printed on the certificate")

	rootCmd.AddCommand(serveCmd, fillCmd, previewCmd, formCmd, lintCmd, versionCmd)
}
