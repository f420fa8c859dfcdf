package main

import (
	"fmt"
	"os"

	"github.com/Behyna/sms-services/templateconsole/internal/cli/app"
	"github.com/Behyna/sms-services/templateconsole/internal/cli/journal"
	"github.com/Behyna/sms-services/templateconsole/internal/cli/messages"
	"github.com/Behyna/sms-services/templateconsole/internal/cli/templates"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	opts := &app.Options{}

	rootCmd := &cobra.Command{
		Use:   "templatectl",
		Short: "Manage message templates from the terminal",
		Long: `templatectl drives the template backend under a chosen role. Marketers create
and edit templates and send test messages; managers review, approve and reject them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config", "./config", "Directory holding config.yml")
	flags.StringVar(&opts.Role, "role", "", "Act as MARKETER or MANAGER, overriding session.default_role")
	flags.StringVar(&opts.User, "user", "", "User id sent to the backend, overriding session.default_user")
	flags.StringVarP(&opts.Output, "output", "o", app.OutputTable, "Output format: table or json")

	rootCmd.AddCommand(
		templates.NewCommand(opts),
		messages.NewCommand(opts),
		journal.NewCommand(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", service.Message(err))
		os.Exit(1)
	}
}
