// Package cmd implements the pagesnap command line using Cobra.
// Flags, PAGESNAP_* environment variables and an optional YAML config
// file are merged through Viper.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/pagesnap/core/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "pagesnap",
	Short: "pagesnap — save web pages as self-contained Markdown",
	Long: `pagesnap loads up to five URLs in headless Chrome, extracts the readable
content of each page and writes it as a Markdown document with a title,
source line, table of contents, tables and an optional screenshot.

Examples:
  pagesnap
  pagesnap --urls reading.txt --outdir archive --scroll --screenshot
  pagesnap --wait 5000 --pdf --export-data`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	def := pipeline.DefaultConfig()
	flags := rootCmd.Flags()
	flags.String("urls", def.URLsFile, "newline-delimited URL list")
	flags.String("outdir", def.OutputDir, "output directory")
	flags.Int("wait", def.WaitMillis, "extra milliseconds to wait after network idle")
	flags.Bool("scroll", false, "auto-scroll to trigger lazy-loaded content")
	flags.Bool("screenshot", false, "save a full-page screenshot")
	flags.Bool("pdf", false, "also write a PDF of each document")
	flags.Bool("export-data", false, "also write extracted data to data/<name>.yaml")
	flags.Bool("verbose", false, "debug logging")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pagesnap.yaml or ~/.config/pagesnap/pagesnap.yaml)")

	_ = viper.BindPFlags(flags)
	// Config keys use underscores, like user_agent.
	_ = viper.BindPFlag("export_data", flags.Lookup("export-data"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pagesnap")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pagesnap"))
		}
	}

	viper.SetEnvPrefix("PAGESNAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("user_agent")
	_ = viper.BindEnv("chrome_path")

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the run configuration from viper.
func loadConfig() (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the command's logger on stderr.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "pagesnap",
		ReportTimestamp: true,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
