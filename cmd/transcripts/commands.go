package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"support-desk-backend/internal/archive"
	"support-desk-backend/internal/model"
)

type archiveRunner func(run func(cmd *cobra.Command, a archive.Archiver, args []string) error) func(*cobra.Command, []string) error

func newListCmd(withArchive archiveRunner) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived transcripts, newest first",
		Args:  cobra.NoArgs,
		RunE: withArchive(func(cmd *cobra.Command, a archive.Archiver, args []string) error {
			items, err := a.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeList(cmd, items)
		}),
	}

	cmd.Flags().IntVar(&limit, "limit", 25, "maximum number of transcripts")
	return cmd
}

func newShowCmd(withArchive archiveRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "show <conversationId>",
		Short: "Print one transcript as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: withArchive(func(cmd *cobra.Command, a archive.Archiver, args []string) error {
			t, err := a.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(t)
		}),
	}
}

func writeList(cmd *cobra.Command, items []model.TranscriptItem) error {
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no transcripts")
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONVERSATION\tARCHIVED\tCUSTOMER\tMESSAGES\tSUBJECT")
	for _, t := range items {
		customer := "-"
		if t.Customer != nil {
			customer = t.Customer.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			t.ConversationID,
			t.ArchivedAt.Format(time.RFC3339),
			customer,
			len(t.Messages),
			t.Conversation.Subject,
		)
	}
	return tw.Flush()
}
