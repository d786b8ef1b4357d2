// Package main provides the meetmind CLI entry point.
// meetmind analyzes meeting transcripts and maintains a semantic
// document index.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetmind/cmd"
	"github.com/otherjamesbrown/meetmind/pkg/buildinfo"
)

// Global flags.
var (
	outputFormat string
	debug        bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "meetmind",
	Short: "Meeting transcript analytics",
	Long: `meetmind analyzes meeting transcripts and maintains a semantic
document index.

Transcripts (.vtt captions or plain "Speaker: text" lines) are parsed
into per-participant statistics, sentiment scores, engagement windows,
action items with assignees, and detected dates. Documents can be
chunked, embedded, and searched through the persistent vector index.

COMMON WORKFLOWS:
  Analyze a meeting:   meetmind analyze ./standup.vtt --title "Standup"
  Index documents:     meetmind index add ./notes.md
  Semantic search:     meetmind index search "rollout plan"
  Manage directory:    meetmind participant add --name "Alice Chen"

Run 'meetmind <command> --help' for subcommands, flags, and examples.`,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		// Bridge global flags to the config env overlay so every
		// command's config load sees them.
		if outputFormat != "" {
			os.Setenv("MEETMIND_OUTPUT_FORMAT", outputFormat)
		}
		if debug {
			os.Setenv("MEETMIND_DEBUG", "1")
		}
	},
}

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(c *cobra.Command, args []string) {
		fmt.Printf("meetmind %s\n", buildinfo.String())
		fmt.Printf("go: %s\n", buildinfo.Get().GoVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output-format", "", "Default output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cmd.NewAnalyzeCommand(nil))
	rootCmd.AddCommand(cmd.NewIndexCommand(nil))
	rootCmd.AddCommand(cmd.NewParticipantCommand(nil))
	rootCmd.AddCommand(cmd.NewMeetingsCommand(nil))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
