package main

import (
	"fmt"
	"os"

	"github.com/passaudit/passaudit/internal/analyzer"
	"github.com/passaudit/passaudit/internal/generator"
	"github.com/passaudit/passaudit/internal/model"
	"github.com/passaudit/passaudit/internal/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password and audit it",
		Long: `Generate produces a random password using a cryptographically secure
random source and immediately audits it, so the printed report shows
what the analyzer thinks of the generated value.

The password is printed verbatim: a generated password the user cannot
read is useless. Generated passwords are not recorded in the history
database.

Examples:
  # Generate a 16-character password from all character classes
  passaudit generate

  # Generate a 24-character password without symbols
  passaudit generate --length 24 --no-symbols

  # Generate three candidates
  passaudit generate --count 3`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().IntP("length", "n", generator.DefaultLength,
		"Length of the generated password")
	cmd.Flags().IntP("count", "k", 1,
		"Number of passwords to generate")
	cmd.Flags().Bool("no-upper", false, "Exclude uppercase letters")
	cmd.Flags().Bool("no-digits", false, "Exclude digits")
	cmd.Flags().Bool("no-symbols", false, "Exclude symbols")
	cmd.Flags().BoolP("json", "j", false, "Output JSON reports")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return err
	}

	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}

	gen, err := buildGenerator(cmd)
	if err != nil {
		return err
	}

	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	var writer report.Writer
	if jsonOut {
		writer = report.NewJSONWriter(os.Stdout, report.WithPrettyPrint())
	} else {
		writer = report.NewSimpleWriter(os.Stdout, report.WithVerbose(getVerboseFlag(cmd)))
	}

	a := analyzer.New()
	for i := 0; i < count; i++ {
		password, err := gen.Generate(length)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		result := a.Analyze(password)
		// The generated password is shown verbatim on purpose.
		auditReport := model.NewAuditReport(password, model.SourceGenerated, result)
		if _, err := writer.Write(auditReport); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

// buildGenerator assembles generator options from flags.
func buildGenerator(cmd *cobra.Command) (*generator.Generator, error) {
	var opts []generator.Option

	noUpper, err := cmd.Flags().GetBool("no-upper")
	if err != nil {
		return nil, err
	}
	if noUpper {
		opts = append(opts, generator.WithoutUpper())
	}

	noDigits, err := cmd.Flags().GetBool("no-digits")
	if err != nil {
		return nil, err
	}
	if noDigits {
		opts = append(opts, generator.WithoutDigits())
	}

	noSymbols, err := cmd.Flags().GetBool("no-symbols")
	if err != nil {
		return nil, err
	}
	if noSymbols {
		opts = append(opts, generator.WithoutSymbols())
	}

	return generator.New(opts...), nil
}
