package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/httpfmt/internal/app"
	"github.com/oshokin/httpfmt/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration file management commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			force, _ := cmd.Flags().GetBool("force")

			if err := app.ExecuteConfigInitCommand(cmd.Context(), configPath(args), force); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to write configuration: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configSetCmd = &cobra.Command{
		Use:   "set key value",
		Short: "Set one value in the configuration file",
		Long: `Set one value in the configuration file, keeping its comments and layout.

Example:
httpfmt config set record_level debug`,
		Args: cobra.ExactArgs(2), //nolint:mnd // Key and value.
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.ExecuteConfigSetCommand(cmd.Context(), configFilenameFromFlag, args[0], args[1]); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to set configuration value: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file.")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)

	rootCmd.AddCommand(configCmd)
}

func configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return configFilenameFromFlag
}
