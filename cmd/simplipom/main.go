package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/simplipom/config"
)

func main() {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:          "simplipom",
		Short:        "Rewrite a pom.xml into a minimal publishable descriptor",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbose, path)
			return config.LoadEnv(".env")
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more (repeat for more detail)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write the log to this file instead of stderr")

	rootCmd.AddCommand(newSimplifyCmd())
	rootCmd.AddCommand(newCreatePOMFileCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newModeCmd())
	rootCmd.AddCommand(newProjectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
