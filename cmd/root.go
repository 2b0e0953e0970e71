package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	serve := newServeCmd(version)

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Keep a small reading list in the browser or the terminal",
		Long: `Bookshelf keeps a list of books with their author, page count and
whether you have read them.

The list is edited through a form and a table, either served as a web page
(the default) or drawn in the terminal.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: serve.RunE,
	}
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(newTUICmd(version))

	return cmd
}
