package controllers

import (
	"context"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/jakartamigrate/internal/domain/commands"
	"github.com/rios0rios0/jakartamigrate/internal/domain/entities"
)

const separatorWidth = 60

// MigrateController handles the root command with a directory argument.
type MigrateController struct {
	command commands.Migrate
}

// NewMigrateController creates a new MigrateController.
func NewMigrateController(command commands.Migrate) *MigrateController {
	return &MigrateController{command: command}
}

// GetBind returns the Cobra command metadata for the migrate controller.
func (it *MigrateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "jakartamigrate [directory]",
		Short: "Migrate a Java EE / JBoss EAP 7 project to Jakarta EE / EAP 8",
		Long: `Recursively rewrite a project from Java EE to Jakarta EE.

Migration types:
  java   Rewrite javax.* imports, packages and references to jakarta.*
  pom    Migrate pom.xml dependencies from JBoss EAP 7 to EAP 8
  all    Apply all migrations (default)

Examples:
  jakartamigrate ./project --dry-run
  jakartamigrate ./project --type pom --diff
  jakartamigrate ./project --config jakartamigrate.yaml --jobs 4`,
	}
}

// AddFlags adds the migration flags to the given Cobra command.
func (it *MigrateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", string(entities.MigrationAll), "Type of migration to perform (java, pom, all)")
	cmd.Flags().Bool("no-backup", false, "Do not create .bak files before overwriting")
	cmd.Flags().Bool("diff", false, "Print a unified diff for every modified file")
	cmd.Flags().Int("jobs", 1, "Number of files to migrate concurrently")
	cmd.Flags().String("inventory", "", "Write a CycloneDX inventory of the migrated dependencies to this file")
	cmd.Flags().Bool("require-clean", false, "Refuse to modify a git work tree with uncommitted changes")
}

// Execute runs the migration over the directory argument.
func (it *MigrateController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	noBackup, _ := cmd.Flags().GetBool("no-backup")
	migrationType, _ := cmd.Flags().GetString("type")
	showDiff, _ := cmd.Flags().GetBool("diff")
	jobs, _ := cmd.Flags().GetInt("jobs")
	inventoryPath, _ := cmd.Flags().GetString("inventory")
	requireClean, _ := cmd.Flags().GetBool("require-clean")

	opts := commands.MigrateOptions{
		Directory:     args[0],
		Type:          entities.MigrationType(migrationType),
		DryRun:        boolFlag(cmd, "dry-run", settings.DryRun),
		Backup:        settings.Backup && !noBackup,
		Verbose:       boolFlag(cmd, "verbose", settings.Verbose),
		ShowDiff:      showDiff,
		Jobs:          jobs,
		InventoryPath: inventoryPath,
		RequireClean:  requireClean,
	}
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	out := cmd.OutOrStdout()
	dryRunPrefix := ""
	if opts.DryRun {
		dryRunPrefix = "DRY RUN: "
	}
	fmt.Fprintf(out, "%sProcessing directory: %s\n", dryRunPrefix, opts.Directory)
	fmt.Fprintf(out, "Migration types: %s\n", migrationType)
	fmt.Fprintln(out, strings.Repeat("-", separatorWidth))

	summary, runErr := it.command.Execute(context.Background(), settings, opts)
	if summary != nil {
		printSummary(out, summary, opts)
	}
	if runErr != nil {
		return fmt.Errorf("migration failed: %w", runErr)
	}
	return nil
}

func printSummary(out io.Writer, summary *entities.Summary, opts commands.MigrateOptions) {
	if opts.ShowDiff {
		for _, result := range summary.Results {
			if result.Diff != "" {
				fmt.Fprint(out, result.Diff)
			}
		}
	}

	wouldBe := ""
	if opts.DryRun {
		wouldBe = "would be "
	}

	fmt.Fprintln(out, strings.Repeat("-", separatorWidth))
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  Total files processed: %d\n", summary.TotalFiles)
	fmt.Fprintf(out, "  Files %smodified: %d\n", wouldBe, summary.ModifiedFiles)
	fmt.Fprintf(out, "  Total replacements: %d\n", summary.TotalReplacements)

	if summary.FilesWithErrors > 0 {
		fmt.Fprintf(out, "  Files with errors: %d\n", summary.FilesWithErrors)
		for _, fileErrors := range summary.Errors {
			for _, msg := range fileErrors.Errors {
				fmt.Fprintf(out, "    %s: %s\n", fileErrors.File, msg)
			}
		}
	}

	if len(summary.ByType) > 0 {
		fmt.Fprintln(out, "\n  By file type:")
		for _, ext := range summary.Extensions() {
			stats := summary.ByType[ext]
			fmt.Fprintf(out, "    %s: %d/%d files, %d replacements\n",
				ext, stats.Modified, stats.Count, stats.Replacements)
		}
	}

	if opts.DryRun {
		fmt.Fprintln(out, "\nThis was a dry run. No files were actually modified.")
		fmt.Fprintln(out, "Remove --dry-run flag to perform actual migration.")
	}
}
