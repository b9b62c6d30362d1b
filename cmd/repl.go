package cmd

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rail44/tally/internal/app"
	"github.com/rail44/tally/internal/log"
	"github.com/rail44/tally/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator session",
	Long: `Repl opens a prompt that evaluates one command per line and keeps the
answers in the terminal history. The up and down arrows recall earlier
lines; ctrl+d ends the session.

When stdin is not a terminal, or --plain is set, the session degrades
to the same line-for-line processing as eval so piping still works.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		setupLogging(cfg)

		if cfg.Plain || !term.IsTerminal(int(os.Stdin.Fd())) {
			log.Debug("terminal UI disabled, using plain session")
			tallyApp := app.NewApp()
			if err := tallyApp.Run(cmd.Context(), os.Stdin, os.Stdout); err != nil {
				log.Error("session failed", slog.String("error", err.Error()))
				os.Exit(1)
			}
			return
		}

		if err := ui.NewProgram(cfg.Prompt).Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
