package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetmind/config"
)

// MeetingsCommandDeps holds the dependencies for meetings commands.
type MeetingsCommandDeps struct {
	LoadConfig func() (*config.CLIConfig, error)
	Output     io.Writer
}

// DefaultMeetingsDeps returns the default dependencies for production use.
func DefaultMeetingsDeps() *MeetingsCommandDeps {
	return &MeetingsCommandDeps{
		LoadConfig: config.LoadConfig,
		Output:     os.Stdout,
	}
}

// NewMeetingsCommand creates the root meetings command.
func NewMeetingsCommand(deps *MeetingsCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultMeetingsDeps()
	}

	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Browse saved meeting analyses",
		Long: `Browse meeting analyses persisted with 'analyze --save'.

Requires configured storage (storage.postgres_dsn or MEETMIND_POSTGRES_DSN).`,
	}

	cmd.AddCommand(newMeetingsListCommand(deps))
	cmd.AddCommand(newMeetingsShowCommand(deps))

	return cmd
}

func newMeetingsListCommand(deps *MeetingsCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingsList(cmd.Context(), deps)
		},
	}
}

func runMeetingsList(ctx context.Context, deps *MeetingsCommandDeps) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	repo, closer, err := openRepository(ctx, cfg, newCLILogger(cfg))
	if err != nil {
		return err
	}
	defer closer()

	summaries, err := repo.ListAnalyses(ctx)
	if err != nil {
		return err
	}

	if cfg.OutputFormat == config.OutputFormatJSON {
		return outputJSON(deps.Output, summaries)
	}
	if cfg.OutputFormat == config.OutputFormatYAML {
		return outputYAML(deps.Output, summaries)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Output, "No saved analyses.")
		return nil
	}
	for _, s := range summaries {
		fmt.Fprintf(deps.Output, "%s  %-30s %s  (%d participants, %d action items)\n",
			s.MeetingID, s.Title, s.Date, s.Participants, s.ActionItems)
	}
	return nil
}

func newMeetingsShowCommand(deps *MeetingsCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <meeting-id>",
		Short: "Show one saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingsShow(cmd.Context(), deps, args[0])
		},
	}
}

func runMeetingsShow(ctx context.Context, deps *MeetingsCommandDeps, meetingID string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	repo, closer, err := openRepository(ctx, cfg, newCLILogger(cfg))
	if err != nil {
		return err
	}
	defer closer()

	analysis, err := repo.GetAnalysis(ctx, meetingID)
	if err != nil {
		return err
	}

	switch cfg.OutputFormat {
	case config.OutputFormatYAML:
		return outputYAML(deps.Output, analysis)
	case config.OutputFormatJSON:
		return outputJSON(deps.Output, analysis)
	default:
		return outputAnalysisText(deps.Output, analysis)
	}
}
