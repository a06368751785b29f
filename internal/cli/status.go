package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/cmdshadow/cmdshadow/internal/config"
	"github.com/cmdshadow/cmdshadow/internal/critical"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cmdshadow configuration — directive file, settings, run log",
	Long: `Check the cmdshadow setup: where the directive and settings files live,
what the resolved critical set looks like, and whether a run log exists.

  cmdshadow status`,
	RunE: statusCommand,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(auditFilePath, logFilePath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println("  cmdshadow Status")
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	binPath, err := os.Executable()
	if err != nil {
		binPath = "unknown"
	}
	fmt.Printf("  Binary:    %s (%s)\n", binPath, Version)
	fmt.Printf("  Config:    %s\n", cfg.ConfigDir)
	fmt.Println()

	fmt.Println("─── Configuration ─────────────────────────────────────")
	checkFile("Directive file", cfg.AuditPath)
	checkFile("Settings file", cfg.SettingsPath)
	fmt.Println()

	fmt.Println("─── Critical Set ──────────────────────────────────────")
	directives, err := config.LoadDirectives(cfg.AuditPath)
	if err != nil {
		return fmt.Errorf("failed to read directive file: %w", err)
	}
	set := critical.Resolve(critical.Defaults(), directives.Additions, directives.Removals)
	fmt.Printf("  %d command(s): %s\n", len(set), strings.Join(set, ", "))
	if len(directives.Whitelist) > 0 {
		fmt.Printf("  Whitelisted: %s\n", strings.Join(directives.Whitelist, ", "))
	}
	fmt.Println()

	fmt.Println("─── Run Log ───────────────────────────────────────────")
	checkRunLog(cfg.LogPath)
	fmt.Println()

	return nil
}

func checkFile(name, path string) {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("  ✅ %s: %s\n", name, path)
	} else {
		fmt.Printf("  ⬚  %s: using built-in defaults (no file at %s)\n", name, path)
	}
}

func checkRunLog(path string) {
	records, err := readRunLog(path)
	if err != nil {
		fmt.Printf("  ⚠  Run log unreadable: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Printf("  ⬚  No runs recorded yet (%s)\n", path)
		return
	}
	fmt.Printf("  ✅ %d record(s) in %s\n", len(records), path)
	fmt.Printf("     Last run: %s\n", formatTimestamp(records[len(records)-1].Timestamp))
}
