package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/httpfmt/internal/app"
	"github.com/oshokin/httpfmt/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var fetchCmd = &cobra.Command{
	Use:   "fetch [flags] URL",
	Short: "Send a request and record the exchange.",
	Long: `Fetch sends one HTTP request and emits the request and the response as records.

Example:
httpfmt fetch -X POST -H "Content-Type: application/json" -d '{"name":"bob"}' https://example.com/users`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		if err := bindFlagsToConfig(flags, appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		method, _ := flags.GetString("request")
		headers, _ := flags.GetStringArray("header")
		data, _ := flags.GetString("data")

		opts := app.FetchOptions{
			Method:  method,
			URL:     args[0],
			Headers: headers,
			Data:    data,
		}

		if err := app.ExecuteFetchCommand(cmd.Context(), appConfig, opts); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to fetch: %v", err)
		}
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	flags := fetchCmd.Flags()

	addRecordFlags(flags)

	flags.StringP("request", "X", "", "HTTP method (default is GET).")
	flags.StringArrayP("header", "H", nil, "request header as 'Name: value'; may be repeated.")
	flags.StringP("data", "d", "", "request body.")

	rootCmd.AddCommand(fetchCmd)
}
