package app

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Behyna/sms-services/templateconsole/internal/model"
)

func PrintTemplates(w io.Writer, page model.Page[model.Template]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEMPLATE ID\tNAME\tCHANNEL\tSTATUS\tCREATOR\tMODIFIED")
	for _, t := range page.List {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.TemplateID, t.Name, t.Channel, t.Status, dash(t.Creator), dash(t.ModifyTime))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "page %d/%d, %d total\n", page.Page, page.TotalPages(), page.Total)
	return err
}

func PrintTemplate(w io.Writer, t model.Template) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"Template ID", t.TemplateID},
		{"Name", t.Name},
		{"Sign name", dash(t.SignName)},
		{"Source", t.SourceID},
		{"Channel", t.Channel.String()},
		{"Status", t.Status.String()},
		{"Subject", t.Subject},
		{"Creator", dash(t.Creator)},
		{"Created", dash(t.CreateTime)},
		{"Modified", dash(t.ModifyTime)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", t.Content)
	return err
}

func PrintRecords(w io.Writer, page model.Page[model.MessageRecord]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MSG ID\tTEMPLATE ID\tCHANNEL\tTO\tSTATUS\tRETRIES\tCREATED")
	for _, r := range page.List {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.MsgID, r.TemplateID, r.Channel, r.To, r.Status, r.RetryCount, dash(r.CreateTime))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "page %d/%d, %d total\n", page.Page, page.TotalPages(), page.Total)
	return err
}

func PrintJournal(w io.Writer, entries []model.JournalEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tACTION\tFROM\tTO\tROLE\tUSER")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.OccurredAt.Format("2006-01-02 15:04:05"), e.Action,
			statusLabel(e.FromStatus), statusLabel(e.ToStatus), e.Role, dash(e.UserID))
	}
	return tw.Flush()
}

func statusLabel(status int) string {
	if status == 0 {
		return "-"
	}
	return model.TemplateStatus(status).String()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
