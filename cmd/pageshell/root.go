package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pageshell/internal/logger"
)

type rootFlags struct {
	verbose    bool
	logFormat  string
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pageshell",
		Short:         "pageshell renders a styled page shell as HTML or in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logger.FormatConsole, "Log output format (console or json)")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a page configuration file")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
