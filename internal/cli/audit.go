package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/cmdshadow/cmdshadow/internal/audit"
	"github.com/cmdshadow/cmdshadow/internal/classify"
	"github.com/cmdshadow/cmdshadow/internal/config"
	"github.com/cmdshadow/cmdshadow/internal/confusable"
	"github.com/cmdshadow/cmdshadow/internal/critical"
	"github.com/cmdshadow/cmdshadow/internal/facts"
	"github.com/cmdshadow/cmdshadow/internal/logger"
	"github.com/cmdshadow/cmdshadow/internal/report"

	"github.com/spf13/cobra"
)

// Usage exit codes. Status exit codes 0-5 come from the classifier.
const (
	exitUsageNoTarget = 64 // no command name and no group flag
	exitUsageTooMany  = 65 // more than one bare command name
	exitUsageConflict = 64 // bare command combined with a group flag
)

var (
	auditAll      bool
	auditCritical bool
	auditJSON     bool
	auditStrict   bool
)

var auditCmd = &cobra.Command{
	Use:   "audit [command]",
	Short: "Classify how the shell resolves commands and flag overrides",
	Long: `Audit command resolution against the configured environment snapshot.

  cmdshadow audit rm              # classify one command; exit code = status
  cmdshadow audit --critical      # audit the critical command set
  cmdshadow audit --all           # audit every builtin and keyword
  cmdshadow audit --critical --strict   # exit code = worst status seen

Statuses: 0 builtin, 1 function-override, 2 alias-override, 3 external,
4 unknown, 5 whitelisted-override.`,
	RunE: auditCommand,
}

func init() {
	auditCmd.Flags().BoolVar(&auditAll, "all", false, "Audit every shell builtin and keyword")
	auditCmd.Flags().BoolVar(&auditCritical, "critical", false, "Audit the resolved critical command set")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Emit the report as JSON")
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "Exit with the worst status seen (group audits)")
	auditCmd.MarkFlagsMutuallyExclusive("all", "critical")
	rootCmd.AddCommand(auditCmd)
}

func auditCommand(cmd *cobra.Command, args []string) error {
	group := auditAll || auditCritical
	switch {
	case len(args) > 1:
		fmt.Fprintln(os.Stderr, "audit: at most one command name may be given")
		exitCode = exitUsageTooMany
		return nil
	case len(args) == 1 && group:
		fmt.Fprintln(os.Stderr, "audit: a command name cannot be combined with --all or --critical")
		exitCode = exitUsageConflict
		return nil
	case len(args) == 0 && !group:
		fmt.Fprintln(os.Stderr, "audit: give a command name, or --all, or --critical")
		exitCode = exitUsageNoTarget
		return nil
	}

	cfg, err := config.Load(auditFilePath, logFilePath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	directives, err := config.LoadDirectives(cfg.AuditPath)
	if err != nil {
		return fmt.Errorf("failed to read directive file: %w", err)
	}

	snap := newSnapshot(cfg)
	warnConfusableAliases(snap)

	runner := &audit.Runner{
		Provider:  snap,
		Whitelist: classify.NewWhitelist(directives.Whitelist),
		Workers:   cfg.Settings.Workers,
	}

	var rep audit.Report
	switch {
	case auditAll:
		rep = runner.Run("all-builtins", facts.AllBuiltins())
	case auditCritical:
		set := critical.Resolve(critical.Defaults(), directives.Additions, directives.Removals)
		rep = runner.Run("critical", set)
	default:
		rep = runner.Run("single", args)
	}

	if auditJSON {
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		report.WriteTable(os.Stdout, rep, useColor(cfg))
	}

	logReport(cfg.LogPath, rep)

	if !group {
		exitCode = int(rep.Results[0].Status)
	} else if auditStrict {
		exitCode = int(rep.Worst)
	}
	return nil
}

// newSnapshot builds the immutable per-run snapshot: PATH directories,
// builtin and keyword tables, aliases and functions harvested from the
// configured rc files.
func newSnapshot(cfg *config.Config) *facts.Snapshot {
	pathEnv := cfg.Settings.Path
	if pathEnv == "" {
		pathEnv = os.Getenv("PATH")
	}

	snap := facts.NewSnapshot(pathEnv)
	snap.HarvestRC(cfg.Settings.RCFiles...)
	return snap
}

// warnConfusableAliases flags alias names that render like other
// commands through Unicode tricks. The classifier works per name, so a
// visual collision between two distinct names can only surface here.
func warnConfusableAliases(snap *facts.Snapshot) {
	names := make([]string, 0, len(snap.Aliases))
	for name := range snap.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, w := range confusable.CheckNames(names) {
		fmt.Fprintf(os.Stderr, "warning: alias %q contains %s: %s\n", w.Name, w.Codepoint, w.Reason)
	}
}

func useColor(cfg *config.Config) bool {
	mode := colorMode
	if mode == "" {
		mode = cfg.Settings.Color
	}
	return report.UseColor(mode)
}

// logReport appends the run to the JSONL log. Logging is best effort:
// a broken log file must not fail the audit itself.
func logReport(path string, rep audit.Report) {
	runLog, err := logger.New(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
		return
	}
	defer func() {
		_ = runLog.Close()
	}()
	if err := runLog.LogReport(rep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
	}
}
