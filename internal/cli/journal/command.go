package journal

import (
	"github.com/Behyna/sms-services/templateconsole/internal/cli/app"
	"github.com/spf13/cobra"
)

var limit int

func NewCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Read the template lifecycle journal",
	}

	history := &cobra.Command{
		Use:   "history <template-id>",
		Short: "Show recorded lifecycle events for a template, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			journal, err := a.Journal(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := journal.History(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			if a.JSON() {
				return app.PrintJSON(cmd.OutOrStdout(), entries)
			}
			return app.PrintJournal(cmd.OutOrStdout(), entries)
		}),
	}
	history.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of entries")

	cmd.AddCommand(history)

	return cmd
}
