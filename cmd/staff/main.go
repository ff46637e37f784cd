// Command staff runs the staff roster API and its offline tools.
//
// @title                       Staff API
// @version                     1.0
// @description                 Roster of employees, engineers and managers with salaries, premiums and currency conversion.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and a JWT.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/practicum/employee-model/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	logLevel  string
	logPretty bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "staff",
		Short:         "Staff roster service and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Init(logger.Options{
				Level:   opts.logLevel,
				Pretty:  opts.logPretty,
				Output:  cmd.ErrOrStderr(),
				Service: "staff",
			})
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "minimum log level: trace, debug, info, warn, error")
	root.PersistentFlags().BoolVar(&opts.logPretty, "log-pretty", false, "human-friendly console logs")

	root.AddCommand(newServeCmd(), newConvertCmd(), newRosterCmd())
	return root
}
