package templates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Behyna/sms-services/templateconsole/internal/cli/app"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/spf13/cobra"
)

var (
	keyword  string
	status   int
	channel  int
	sourceID string
	page     int
	pageSize int

	name          string
	signName      string
	source        string
	targetChannel int
	subject       string
	content       string
	relTemplateID string
)

func NewCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "tpl"},
		Short:   "Browse and manage message templates",
	}

	cmd.AddCommand(
		newListCommand(opts),
		newPendingCommand(opts),
		newGetCommand(opts),
		newCreateCommand(opts),
		newUpdateCommand(opts),
		newApproveCommand(opts),
		newRejectCommand(opts),
		newDeleteCommand(opts),
		newBatchApproveCommand(opts),
	)

	return cmd
}

func newListCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		RunE: app.Run(opts, func(cmd *cobra.Command, _ []string, a *app.App) error {
			result, err := a.Templates.ListTemplates(cmd.Context(), a.Principal, listQuery())
			if err != nil {
				return err
			}
			return printPage(cmd, a, result)
		}),
	}

	addListFlags(cmd)
	cmd.Flags().IntVar(&status, "status", 0, "Filter by status: 1 pending, 2 approved, 3 rejected")

	return cmd
}

func newPendingCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List templates awaiting review",
		Args:  cobra.NoArgs,
		RunE: app.Run(opts, func(cmd *cobra.Command, _ []string, a *app.App) error {
			result, err := a.Templates.ListPendingTemplates(cmd.Context(), a.Principal, listQuery())
			if err != nil {
				return err
			}
			return printPage(cmd, a, result)
		}),
	}

	addListFlags(cmd)

	return cmd
}

func newGetCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <template-id>",
		Short: "Show one template",
		Args:  cobra.ExactArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			t, err := a.Templates.GetTemplate(cmd.Context(), a.Principal, args[0])
			if err != nil {
				return err
			}
			return printTemplate(cmd, a, t)
		}),
	}
}

func newCreateCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a template; it starts out pending review",
		Args:  cobra.NoArgs,
		RunE: app.Run(opts, func(cmd *cobra.Command, _ []string, a *app.App) error {
			t, err := a.Templates.CreateTemplate(cmd.Context(), a.Principal, service.CreateTemplateCommand{
				Name:          name,
				SignName:      signName,
				SourceID:      source,
				Channel:       model.Channel(targetChannel),
				Subject:       subject,
				Content:       content,
				RelTemplateID: relTemplateID,
			})
			if err != nil {
				return err
			}
			return printTemplate(cmd, a, t)
		}),
	}

	addContentFlags(cmd)

	return cmd
}

func newUpdateCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <template-id>",
		Short: "Change the given fields of a template",
		Args:  cobra.ExactArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			t, err := a.Templates.UpdateTemplate(cmd.Context(), a.Principal, updateCommand(cmd, args[0]))
			if err != nil {
				return err
			}
			return printTemplate(cmd, a, t)
		}),
	}

	addContentFlags(cmd)
	cmd.Flags().IntVar(&status, "status", 0, "New status, reviewers only")

	return cmd
}

func newApproveCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <template-id>",
		Short: "Approve a pending template",
		Args:  cobra.ExactArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			t, err := a.Templates.ApproveTemplate(cmd.Context(), a.Principal, args[0])
			if err != nil {
				return err
			}
			return printTemplate(cmd, a, t)
		}),
	}
}

func newRejectCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <template-id>",
		Short: "Reject a pending template",
		Args:  cobra.ExactArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			t, err := a.Templates.RejectTemplate(cmd.Context(), a.Principal, args[0])
			if err != nil {
				return err
			}
			return printTemplate(cmd, a, t)
		}),
	}
}

func newDeleteCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template-id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			if err := a.Templates.DeleteTemplate(cmd.Context(), a.Principal, args[0]); err != nil {
				return err
			}
			if a.JSON() {
				return app.PrintJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		}),
	}
}

func newBatchApproveCommand(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch-approve <template-id>...",
		Short: "Approve several templates in order, stopping at the first failure",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			result, err := a.Templates.BatchApprove(cmd.Context(), a.Principal, args)
			if a.JSON() {
				if printErr := app.PrintJSON(cmd.OutOrStdout(), result); printErr != nil {
					return printErr
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "approved: %s\n", joinOrDash(result.Approved))
			if len(result.Skipped) > 0 {
				fmt.Fprintf(out, "skipped:  %s\n", strings.Join(result.Skipped, ", "))
			}

			var batchErr *service.BatchError
			if errors.As(err, &batchErr) {
				fmt.Fprintf(out, "failed:   %s\n", batchErr.TemplateID)
				fmt.Fprintf(out, "not run:  %s\n", joinOrDash(result.Remaining))
			}
			return err
		}),
	}
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Match against template name")
	cmd.Flags().IntVar(&channel, "channel", 0, "Filter by channel: 1 email, 2 SMS")
	cmd.Flags().StringVar(&sourceID, "source", "", "Filter by source id")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Page size, 0 for the configured default")
}

func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().StringVar(&signName, "sign-name", "", "Signature shown with SMS messages")
	cmd.Flags().StringVar(&source, "source", "", "Source id")
	cmd.Flags().IntVar(&targetChannel, "channel", int(model.ChannelSMS), "Channel: 1 email, 2 SMS")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject line")
	cmd.Flags().StringVar(&content, "content", "", "Template body")
	cmd.Flags().StringVar(&relTemplateID, "rel-template", "", "Related template id")
}

func listQuery() service.ListTemplatesQuery {
	return service.ListTemplatesQuery{
		Keyword:  keyword,
		Status:   model.TemplateStatus(status),
		Channel:  model.Channel(channel),
		SourceID: sourceID,
		Page:     page,
		PageSize: pageSize,
	}
}

// updateCommand only sets the fields whose flags were given.
func updateCommand(cmd *cobra.Command, templateID string) service.UpdateTemplateCommand {
	update := service.UpdateTemplateCommand{TemplateID: templateID}
	flags := cmd.Flags()

	if flags.Changed("name") {
		update.Name = &name
	}
	if flags.Changed("sign-name") {
		update.SignName = &signName
	}
	if flags.Changed("source") {
		update.SourceID = &source
	}
	if flags.Changed("channel") {
		c := model.Channel(targetChannel)
		update.Channel = &c
	}
	if flags.Changed("subject") {
		update.Subject = &subject
	}
	if flags.Changed("content") {
		update.Content = &content
	}
	if flags.Changed("rel-template") {
		update.RelTemplateID = &relTemplateID
	}
	if flags.Changed("status") {
		s := model.TemplateStatus(status)
		update.Status = &s
	}

	return update
}

func printPage(cmd *cobra.Command, a *app.App, result model.Page[model.Template]) error {
	if a.JSON() {
		return app.PrintJSON(cmd.OutOrStdout(), result)
	}
	return app.PrintTemplates(cmd.OutOrStdout(), result)
}

func printTemplate(cmd *cobra.Command, a *app.App, t model.Template) error {
	if a.JSON() {
		return app.PrintJSON(cmd.OutOrStdout(), t)
	}
	return app.PrintTemplate(cmd.OutOrStdout(), t)
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}
