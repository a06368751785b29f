package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cmdshadow/cmdshadow/internal/config"
	"github.com/cmdshadow/cmdshadow/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logFilterStatus string
	logFilterGroup  string
	logLast         int
	logSummary      bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and filter the audit run log",
	Long: `View past audit runs recorded in the JSONL run log.

Examples:
  cmdshadow log                           # Show all records
  cmdshadow log --last 20                 # Show last 20 records
  cmdshadow log --status alias-override   # Show only alias overrides
  cmdshadow log --group critical          # Show only critical-set runs
  cmdshadow log --summary                 # Show summary statistics`,
	RunE: logCommand,
}

func init() {
	logCmd.Flags().StringVar(&logFilterStatus, "status", "", "Filter by status label (builtin, alias-override, ...)")
	logCmd.Flags().StringVar(&logFilterGroup, "group", "", "Filter by audit group (single, critical, all-builtins)")
	logCmd.Flags().IntVar(&logLast, "last", 0, "Show last N records")
	logCmd.Flags().BoolVar(&logSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(logCmd)
}

func logCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(auditFilePath, logFilePath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	records, err := readRunLog(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to read run log: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No run log records found.")
		return nil
	}

	filtered := filterRecords(records)

	if logLast > 0 && logLast < len(filtered) {
		filtered = filtered[len(filtered)-logLast:]
	}

	if logSummary {
		printSummary(records)
		return nil
	}

	printRecords(filtered)
	return nil
}

func readRunLog(path string) ([]logger.RunRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var records []logger.RunRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var rec logger.RunRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue // skip malformed lines
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

func filterRecords(records []logger.RunRecord) []logger.RunRecord {
	if logFilterStatus == "" && logFilterGroup == "" {
		return records
	}

	var filtered []logger.RunRecord
	for _, rec := range records {
		if logFilterStatus != "" && !strings.EqualFold(rec.StatusLabel, logFilterStatus) {
			continue
		}
		if logFilterGroup != "" && !strings.EqualFold(rec.Group, logFilterGroup) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func printRecords(records []logger.RunRecord) {
	for _, rec := range records {
		fmt.Printf("%s  [%s]  %-20s %s\n", formatTimestamp(rec.Timestamp), rec.Group, rec.Command, rec.StatusLabel)
		if rec.Detail != "" {
			fmt.Printf("     %s\n", rec.Detail)
		}
	}
}

func printSummary(records []logger.RunRecord) {
	counts := map[string]int{}
	overrides := []logger.RunRecord{}

	for _, rec := range records {
		counts[rec.StatusLabel]++
		if rec.StatusLabel == "alias-override" || rec.StatusLabel == "function-override" {
			overrides = append(overrides, rec)
		}
	}

	fmt.Println("═══════════════════════════════════════════")
	fmt.Println("  cmdshadow Run Log Summary")
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("  Total records:        %d\n", len(records))
	fmt.Printf("  builtin:              %d\n", counts["builtin"])
	fmt.Printf("  function-override:    %d\n", counts["function-override"])
	fmt.Printf("  alias-override:       %d\n", counts["alias-override"])
	fmt.Printf("  external:             %d\n", counts["external"])
	fmt.Printf("  unknown:              %d\n", counts["unknown"])
	fmt.Printf("  whitelisted-override: %d\n", counts["whitelisted-override"])
	fmt.Println("═══════════════════════════════════════════")

	if len(records) > 0 {
		fmt.Printf("  First record:         %s\n", formatTimestamp(records[0].Timestamp))
		fmt.Printf("  Last record:          %s\n", formatTimestamp(records[len(records)-1].Timestamp))
	}

	if len(overrides) > 0 {
		fmt.Println()
		fmt.Println("  Recent overrides:")
		limit := len(overrides)
		if limit > 10 {
			limit = 10
		}
		for _, rec := range overrides[len(overrides)-limit:] {
			fmt.Printf("    %s %s (%s)\n", formatTimestamp(rec.Timestamp), rec.Command, rec.StatusLabel)
		}
	}

	fmt.Println()
}

func formatTimestamp(ts string) string {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return parsed.Local().Format("2006-01-02 15:04:05")
}
