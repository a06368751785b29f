package cli

import (
	"github.com/spf13/cobra"
)

var (
	auditFilePath string
	logFilePath   string
	colorMode     string
)

// exitCode is set by commands that map results to process exit codes
// (audit's single-command and strict modes). Zero otherwise.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "cmdshadow",
	Short: "cmdshadow - audit which resolution mechanism wins for shell commands",
	Long: `cmdshadow inspects a snapshot of a shell environment (aliases, functions,
builtins, keywords, PATH) and reports, for each audited command name, what
the shell would actually invoke. Critical commands shadowed by aliases or
functions are flagged so an admin can spot hijacked names like rm or sudo.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&auditFilePath, "config", "", "Path to audit directive file (default: ~/.cmdshadow/audit.conf)")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log", "", "Path to run log file (default: ~/.cmdshadow/runs.jsonl)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Color output: auto, always or never (default: from config.yaml)")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}
