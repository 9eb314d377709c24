// Command transcripts prints conversation transcripts archived in DynamoDB.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"support-desk-backend/internal/archive"
	"support-desk-backend/internal/config"
	"support-desk-backend/internal/database"
)

type openArchive func(ctx context.Context, table string) (archive.Archiver, error)

func dynamoArchive(ctx context.Context, table string) (archive.Archiver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if table == "" {
		table = cfg.TranscriptsTable
	}
	if table == "" {
		return nil, errors.New("no table: pass --table or set TRANSCRIPTS_TABLE")
	}
	db, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}
	return archive.NewDynamoArchiver(db, table), nil
}

func newRootCmd(open openArchive) *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:           "transcripts",
		Short:         "Inspect archived support conversations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&table, "table", "", "DynamoDB table (defaults to TRANSCRIPTS_TABLE)")

	withArchive := func(run func(cmd *cobra.Command, a archive.Archiver, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context(), table)
			if err != nil {
				return err
			}
			return run(cmd, a, args)
		}
	}

	cmd.AddCommand(newListCmd(withArchive))
	cmd.AddCommand(newShowCmd(withArchive))
	return cmd
}

func execute(cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd(dynamoArchive)))
}
