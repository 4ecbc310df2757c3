package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/passaudit/passaudit/internal/config"
	"github.com/passaudit/passaudit/internal/database"
	"github.com/passaudit/passaudit/internal/model"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command lists past audits stored in the local database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past audits from the history database",
		Long: `History lists audit records from the local database.

Records contain only a password fingerprint and the measured metrics;
the audited passwords themselves are never stored. Repeated audits of
the same password share a fingerprint, so trends for one password can
be followed with --fingerprint.

Examples:
  # Show the 20 most recent audits
  passaudit history

  # Show the 5 most recent audits as JSON
  passaudit history --limit 5 --json

  # Show audits of one password by its fingerprint prefix
  passaudit history --fingerprint 9f86d081`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of records to list")
	cmd.Flags().StringP("fingerprint", "f", "",
		"List only audits whose fingerprint starts with this prefix")
	cmd.Flags().BoolP("json", "j", false,
		"Output records as JSON")
	cmd.Flags().String("db-dir", "",
		"Directory for the history database (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit <= 0 {
		return fmt.Errorf("invalid limit %d: must be positive", limit)
	}

	fingerprint, err := cmd.Flags().GetString("fingerprint")
	if err != nil {
		return err
	}

	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	// Opening read-only: history must not create an empty database
	// just to report that there is no history.
	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no audit history found (run 'passaudit check' first): %w", err)
	}
	defer db.Close()

	// Filtering happens in the query, not over a page of recent
	// records, so the limit bounds matching rows and old audits of one
	// password stay findable.
	ctx := context.Background()
	var records []*model.AuditRecord
	if fingerprint != "" {
		records, err = db.AuditsForFingerprint(ctx, fingerprint, limit)
	} else {
		records, err = db.RecentAudits(ctx, limit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	printHistoryTable(out, records)
	return nil
}

// printHistoryTable prints audit records as an aligned text table.
func printHistoryTable(out io.Writer, records []*model.AuditRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No audit records found.")
		return
	}

	fmt.Fprintf(out, "%-6s %-12s %-6s %-9s %-7s %-10s %-9s %s\n",
		"ID", "FINGERPRINT", "SCORE", "ENTROPY", "LENGTH", "STRENGTH", "SOURCE", "AUDITED AT")

	for _, r := range records {
		fp := r.Fingerprint
		if len(fp) > 12 {
			fp = fp[:12]
		}
		fmt.Fprintf(out, "%-6d %-12s %-6d %-9.1f %-7d %-10s %-9s %s\n",
			r.ID,
			fp,
			r.Score,
			r.EntropyBits,
			r.Length,
			r.Strength,
			r.Source,
			r.AuditedAt.Local().Format("2006-01-02 15:04:05"),
		)
	}
}
