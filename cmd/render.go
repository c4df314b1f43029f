package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/httpfmt/internal/app"
	"github.com/oshokin/httpfmt/internal/config"
	"github.com/oshokin/httpfmt/internal/logger"
	"github.com/oshokin/httpfmt/internal/utils"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var renderCmd = &cobra.Command{
	Use:   "render [flags] {files}",
	Short: "Render raw HTTP messages stored in files.",
	Long: `Render reads HTTP/1.x requests and responses from files and emits one record per message.

A file may hold several messages separated by blank lines, for example a request followed by its response.
Messages of one file share an exchange id.`,
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, paths []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		paths, err := withPathsFromFile(cmd.Flags(), paths)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to read the file list: %v", err)
		}

		if len(paths) == 0 {
			logger.Fatal(cmd.Context(), "No files to render")
		}

		if err = app.ExecuteRenderCommand(cmd.Context(), appConfig, paths); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to render: %v", err)
		}
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	addRecordFlags(renderCmd.Flags())

	renderCmd.Flags().StringP(
		"from-file",
		"f",
		"",
		"file with one message path per line; lines starting with '#' are skipped.")

	rootCmd.AddCommand(renderCmd)
}

// addRecordFlags defines the flags shared by the commands that emit records.
func addRecordFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output",
		"o",
		"",
		"directory to write records to (the path will be created if it doesn't exist).")

	flags.StringP(
		"level",
		"l",
		"",
		"level of the emitted records: debug, info, warn or error.")

	flags.Bool(
		"no-sanitize",
		false,
		"keep credentials, session cookies and URI passwords in the records.")

	flags.String(
		"max-body-size",
		"",
		"largest captured body, for example: 64KB, 1MB; 0 means unlimited.")
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("level"); flag != nil && flag.Changed {
		cfg.RecordLevel, _ = flags.GetString("level")
	}

	if flag := flags.Lookup("no-sanitize"); flag != nil && flag.Changed {
		noSanitize, _ := flags.GetBool("no-sanitize")
		cfg.Sanitize = !noSanitize
	}

	if flag := flags.Lookup("max-body-size"); flag != nil && flag.Changed {
		cfg.MaxBodySize, _ = flags.GetString("max-body-size")
	}

	return config.ValidateConfig(cfg)
}

func withPathsFromFile(flags *pflag.FlagSet, paths []string) ([]string, error) {
	listFile, _ := flags.GetString("from-file")
	if listFile == "" {
		return paths, nil
	}

	listed, err := utils.ReadUniqueLinesFromFile(listFile)
	if err != nil {
		return nil, err
	}

	return append(paths, listed...), nil
}
