package messages

import (
	"fmt"

	"github.com/Behyna/sms-services/templateconsole/internal/cli/app"
	"github.com/Behyna/sms-services/templateconsole/internal/model"
	"github.com/Behyna/sms-services/templateconsole/internal/service"
	"github.com/spf13/cobra"
)

var (
	channel      int
	to           string
	subject      string
	priority     int
	templateData string

	msgID      string
	templateID string
	status     int
	page       int
	pageSize   int
)

func NewCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message", "msg"},
		Short:   "Send test messages and inspect send records",
	}

	cmd.AddCommand(newSendTestCommand(opts), newRecordsCommand(opts))

	return cmd
}

func newSendTestCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-test <template-id>",
		Short: "Send a test message rendered from a template",
		Args:  cobra.ExactArgs(1),
		RunE: app.Run(opts, func(cmd *cobra.Command, args []string, a *app.App) error {
			result, err := a.Messages.SendTest(cmd.Context(), a.Principal, service.SendTestCommand{
				TemplateID:   args[0],
				Channel:      model.Channel(channel),
				To:           to,
				Subject:      subject,
				Priority:     priority,
				TemplateData: templateData,
			})
			if err != nil {
				return err
			}

			if a.JSON() {
				return app.PrintJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sent %s (%s)\nfollow with: messages records --msg-id %s\n",
				result.MsgID, result.Status, result.MsgID)
			return err
		}),
	}

	cmd.Flags().IntVar(&channel, "channel", int(model.ChannelSMS), "Channel: 1 email, 2 SMS")
	cmd.Flags().StringVar(&to, "to", "", "Recipient phone number or email address")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject line")
	cmd.Flags().IntVar(&priority, "priority", 2, "Priority: 1 high, 2 normal, 3 low")
	cmd.Flags().StringVar(&templateData, "data", "", "Substitution values, a JSON object or plain text")

	return cmd
}

func newRecordsCommand(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Search message send records",
		Args:  cobra.NoArgs,
		RunE: app.Run(opts, func(cmd *cobra.Command, _ []string, a *app.App) error {
			result, err := a.Messages.SearchRecords(cmd.Context(), a.Principal, service.SearchRecordsQuery{
				MsgID:      msgID,
				TemplateID: templateID,
				Status:     model.RecordStatus(status),
				Page:       page,
				PageSize:   pageSize,
			})
			if err != nil {
				return err
			}

			if a.JSON() {
				return app.PrintJSON(cmd.OutOrStdout(), result)
			}
			return app.PrintRecords(cmd.OutOrStdout(), result.Page)
		}),
	}

	cmd.Flags().StringVar(&msgID, "msg-id", "", "Exact message id; other filters are ignored when set")
	cmd.Flags().StringVar(&templateID, "template", "", "Filter by template id")
	cmd.Flags().IntVar(&status, "status", 0, "Filter by status: 1 pending, 2 success, 3 failed")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Page size, 0 for the configured default")

	return cmd
}
