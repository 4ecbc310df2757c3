package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/passaudit/passaudit/internal/analyzer"
	"github.com/passaudit/passaudit/internal/config"
	"github.com/passaudit/passaudit/internal/database"
	"github.com/passaudit/passaudit/internal/input"
	"github.com/passaudit/passaudit/internal/log"
	"github.com/passaudit/passaudit/internal/model"
	"github.com/passaudit/passaudit/internal/report"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password...]",
		Short: "Audit the strength of one or more passwords",
		Long: `Check analyzes passwords and reports a strength score, an entropy
estimate, and pattern warnings.

The analysis detects:
- Common passwords (membership on well-known weak-password lists)
- Keyboard sequences (qwer, asdf, and their reverses)
- Numeric and alphabetic sequences (1234, 4321, abcd)
- Repeated character runs (aaa)
- Structural weaknesses (short length, single character class)

With no arguments, the password is read from a hidden prompt (or from
standard input when piped). Audits are recorded in the local history
database as fingerprints only.

Examples:
  # Audit interactively (input hidden)
  passaudit check

  # Audit passwords passed as arguments
  passaudit check 'Kumari@2025!'

  # Audit a file with one password per line, eight at a time
  passaudit check --list passwords.txt --batch 8

  # Output a Markdown report to a file
  passaudit check --markdown --output audit.md 'Kumari@2025!'

  # Use a custom policy file
  passaudit check -c mypolicy.yaml 'Kumari@2025!'

Policy file (.passaudit) example:
  minLength: 12
  bannedWords:
    - acmecorp
    - wonderwidget`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Input flags
	cmd.Flags().StringP("list", "l", "",
		"Audit passwords from a file, one per line")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses for list files")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Policy file path (default: .passaudit in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("show-password", false,
		"Print the audited password verbatim instead of masked")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not record this audit in the history database")
	cmd.Flags().String("db-dir", "",
		"Directory for the history database (default: XDG data directory)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with password sanitization
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Passwords = args
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.ListFile, err = cmd.Flags().GetString("list")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the policy file.
	// If user explicitly specified a policy file path, error if not found.
	// If no path specified, silently use an empty policy if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Policy, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load policy file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("policy file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Policy = &config.File{}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.ShowPassword, err = cmd.Flags().GetBool("show-password")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	return cfg, nil
}

// runCheck executes the audit.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Open database connection if saving is enabled
	var db *database.AuditDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	a := newAnalyzer(cfg)

	if cfg.ListFile != "" {
		return runBatchCheck(ctx, cfg, a, db, logger)
	}

	passwords := cfg.Passwords
	source := model.SourceArgument

	// No arguments: read from a hidden prompt, or from stdin when piped.
	if len(passwords) == 0 {
		source = model.SourcePrompt
		if !input.StdinIsTerminal() {
			source = model.SourceStdin
		}

		password, err := input.PromptHidden(os.Stderr, "Enter a password to check (input hidden): ")
		if err != nil {
			return err
		}
		passwords = []string{password}
	}

	for _, password := range passwords {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result := a.Analyze(password)
		auditReport := newAuditReport(cfg, password, source, result)

		if err := outputReport(cfg, auditReport); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		if err := saveAudit(ctx, db, password, auditReport, logger); err != nil {
			logger.Error("failed to save audit", "error", err)
		}
	}

	return nil
}

// runBatchCheck audits a list file concurrently.
func runBatchCheck(ctx context.Context, cfg *config.Config, a *analyzer.Analyzer, db *database.AuditDB, logger *slog.Logger) error {
	passwords, err := input.ReadListFile(cfg.ListFile)
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		return errors.New("list file contains no passwords")
	}

	fmt.Fprintf(os.Stderr, "Auditing %d passwords (concurrency: %d)...\n",
		len(passwords), cfg.BatchSize)

	bp := analyzer.NewBatchProcessor(a,
		analyzer.WithConcurrency(cfg.BatchSize),
		analyzer.WithBatchLogger(logger),
	)

	// Callbacks are serialized by the batch processor, so writing
	// reports and saving audits here needs no extra locking.
	var outputErr error
	err = bp.ProcessBatchWithCallback(ctx, passwords, func(result *model.AnalysisResult, index int) {
		auditReport := newAuditReport(cfg, passwords[index], model.SourceList, result)

		if err := outputReport(cfg, auditReport); err != nil && outputErr == nil {
			outputErr = fmt.Errorf("failed to write report: %w", err)
		}

		if err := saveAudit(ctx, db, passwords[index], auditReport, logger); err != nil {
			logger.Error("failed to save audit", "index", index, "error", err)
		}
	})
	if err != nil {
		return err
	}
	return outputErr
}

// newAnalyzer builds the analyzer from the loaded policy.
func newAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	var opts []analyzer.Option
	if cfg.Policy != nil {
		opts = append(opts,
			analyzer.WithMinLength(cfg.Policy.EffectiveMinLength()),
			analyzer.WithPolicyBannedWords(cfg.Policy.BannedWords),
		)
	}
	return analyzer.New(opts...)
}

// newAuditReport wraps a result for rendering, masking the password
// unless --show-password was given.
func newAuditReport(cfg *config.Config, password, source string, result *model.AnalysisResult) *model.AuditReport {
	mask := model.MaskPassword(password)
	if cfg.ShowPassword {
		mask = password
	}
	return model.NewAuditReport(mask, source, result)
}

// outputReport outputs the audit report in the requested format.
func outputReport(cfg *config.Config, auditReport *model.AuditReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Append so batch runs collect all reports in one file.
		// 0600 because reports may carry the password mask and, in
		// verbose mode, matched substrings.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	writer := newReportWriter(cfg, output)
	_, err := writer.Write(auditReport)
	return err
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, output *os.File) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// saveAudit fingerprints the password and records the audit.
// If db is nil, this function is a no-op.
func saveAudit(ctx context.Context, db *database.AuditDB, password string, auditReport *model.AuditReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	record := model.NewAuditRecord(analyzer.Fingerprint(password), auditReport)
	if err := db.SaveAudit(ctx, record); err != nil {
		return fmt.Errorf("failed to save audit record: %w", err)
	}

	logger.Info("audit saved",
		"id", record.ID,
		"score", record.Score,
		"strength", record.Strength,
	)
	return nil
}
