package cmd

import (
	"fmt"
	"os"
	"strings"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rail44/tally/internal/app"
	"github.com/rail44/tally/internal/log"
)

var evalCmd = &cobra.Command{
	Use:   "eval [command words...]",
	Short: "Evaluate one command or a stream of lines",
	Long: `Eval joins its arguments into a single command line, evaluates it and
prints the answer:

  tally eval sum 1 2 3
  tally eval min 4 -3

Everything after the first command word is operand text, so negative
numbers need no escaping; flags go before the command words. With no
arguments eval reads command lines from standard input until EOF and
prints one answer per line. Failed commands answer with an error
sentence on stdout like any other result; the exit status only reports
real input or output problems.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		setupLogging(cfg)

		tallyApp := app.NewApp()

		if len(args) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), tallyApp.Process(strings.Join(args, " ")))
			return
		}

		if err := tallyApp.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			log.Error("stream processing failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func init() {
	// Operands may be negative; flag parsing must stop at the first
	// command word so tokens like -3 stay operand text
	evalCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(evalCmd)
}
