package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clementus360/habit-dashboard/config"
)

const Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Personal dashboard for the tasks due today",
	Long:          "Serves a login-gated page listing today's Habitica tasks, with one-click completion.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to a TOML config file")

	rootCmd.AddCommand(
		newServeCmd(),
		newTokenCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}
