package cmd

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/tally/internal/config"
	"github.com/rail44/tally/internal/log"
)

// version is stamped by the build; "dev" otherwise
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Word-command calculator for the terminal",
	Long: `Tally evaluates word commands like "sum 1 2 3" or "divide 10 4" and
answers in plain sentences. Evaluate a single command with eval, pipe
lines through it for batch processing, or start an interactive session
with repl.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches upward for tally.toml)")
	rootCmd.PersistentFlags().Bool("plain", false, "plain line output, no interactive UI")
	rootCmd.PersistentFlags().String("log-level", "", "log level: error, warn, info or debug")
	rootCmd.PersistentFlags().String("prompt", "", "prompt shown in the interactive session")

	viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("prompt", rootCmd.PersistentFlags().Lookup("prompt"))

	viper.SetEnvPrefix("TALLY")
	viper.AutomaticEnv()
}

// loadConfig resolves the effective configuration: flags and TALLY_* env
// variables win over tally.toml, which wins over built-in defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(".", cfgFile)
	if err != nil {
		return nil, err
	}

	if viper.GetBool("plain") {
		cfg.Plain = true
	}
	if level := viper.GetString("log_level"); level != "" {
		cfg.LogLevel = level
	}
	if prompt := viper.GetString("prompt"); prompt != "" {
		cfg.Prompt = prompt
	}

	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", cfg.LogLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
