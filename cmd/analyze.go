package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetmind/config"
	"github.com/otherjamesbrown/meetmind/pkg/pipeline"
)

// AnalyzeCommandDeps holds the dependencies for the analyze command.
type AnalyzeCommandDeps struct {
	LoadConfig func() (*config.CLIConfig, error)
	Output     io.Writer
}

// DefaultAnalyzeDeps returns the default dependencies for production use.
func DefaultAnalyzeDeps() *AnalyzeCommandDeps {
	return &AnalyzeCommandDeps{
		LoadConfig: config.LoadConfig,
		Output:     os.Stdout,
	}
}

// Analyze command flags.
var (
	analyzeTitle  string
	analyzeDate   string
	analyzeSave   bool
	analyzeOutput string
)

// NewAnalyzeCommand creates the 'analyze' command.
func NewAnalyzeCommand(deps *AnalyzeCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultAnalyzeDeps()
	}

	cmd := &cobra.Command{
		Use:   "analyze <transcript>",
		Short: "Analyze a meeting transcript",
		Long: `Analyze a meeting transcript and report participants, sentiment,
engagement, action items, and detected dates.

Supports:
  - WebVTT (.vtt) caption transcripts
  - Plain text transcripts with "Speaker: text" lines

Examples:
  # Analyze a VTT transcript
  meetmind analyze ./standup.vtt --title "Daily Standup"

  # Analyze plain text and emit JSON
  meetmind analyze ./notes.txt --output json

  # Persist the analysis (requires configured storage)
  meetmind analyze ./sync.vtt --title "Weekly Sync" --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), deps, args[0])
		},
	}

	cmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "Meeting title (defaults to the file name)")
	cmd.Flags().StringVar(&analyzeDate, "date", "", "Meeting date (ISO-8601); defaults to the analysis time")
	cmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis to configured storage")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output format: text, json, or yaml")

	return cmd
}

func runAnalyze(ctx context.Context, deps *AnalyzeCommandDeps, path string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if analyzeOutput != "" {
		cfg.OutputFormat = config.OutputFormat(analyzeOutput)
		if !cfg.OutputFormat.IsValid() {
			return fmt.Errorf("invalid output format %q", analyzeOutput)
		}
	}

	logger := newCLILogger(cfg)

	title := analyzeTitle
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithWindowing(cfg.Analysis.WindowUtterances, cfg.Analysis.WindowMinutes),
	}
	if cfg.Analysis.MaxTextLength > 0 {
		opts = append(opts, pipeline.WithMaxTextLength(cfg.Analysis.MaxTextLength))
	}
	analyzer := pipeline.New(opts...)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()

	analysis, err := analyzer.Analyze(ctx, pipeline.Meeting{
		Title:    title,
		Date:     analyzeDate,
		Filename: filepath.Base(path),
	}, f)
	if err != nil {
		return err
	}

	if analyzeSave {
		repo, closer, err := openRepository(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closer()
		if err := repo.SaveAnalysis(ctx, analysis); err != nil {
			return err
		}
		fmt.Fprintf(deps.Output, "Saved analysis %s\n", analysis.MeetingID)
	}

	switch cfg.OutputFormat {
	case config.OutputFormatJSON:
		return outputJSON(deps.Output, analysis)
	case config.OutputFormatYAML:
		return outputYAML(deps.Output, analysis)
	default:
		return outputAnalysisText(deps.Output, analysis)
	}
}

// outputAnalysisText renders the analysis as human-readable sections.
func outputAnalysisText(w io.Writer, a *pipeline.Analysis) error {
	fmt.Fprintf(w, "Meeting: %s\n", a.Title)
	fmt.Fprintf(w, "Date:    %s\n", a.Date)
	fmt.Fprintf(w, "ID:      %s\n", a.MeetingID)
	fmt.Fprintf(w, "Utterances: %d\n", len(a.Utterances))

	fmt.Fprintf(w, "\nParticipants (%d):\n", len(a.Participants))
	for _, p := range a.Participants {
		line := fmt.Sprintf("  %-20s %4d statements, %5d words", p.Name, p.SpeakingCount, p.TotalWords)
		if s, ok := a.ParticipantSentiment[p.Name]; ok {
			line += fmt.Sprintf(", sentiment %+.1f (%s)", s.Score, s.Classification)
		}
		fmt.Fprintln(w, line)
	}

	if len(a.ActionItems) > 0 {
		fmt.Fprintf(w, "\nAction items (%d):\n", len(a.ActionItems))
		for _, item := range a.ActionItems {
			fmt.Fprintf(w, "  - %s (assigned to: %s)\n",
				item.ExtractedAction, strings.Join(item.AssignedTo, ", "))
		}
	}

	if len(a.DetectedDates) > 0 {
		fmt.Fprintf(w, "\nDetected dates: %s\n", strings.Join(a.DetectedDates, ", "))
	}

	if len(a.Engagement) > 0 {
		fmt.Fprintf(w, "\nEngagement:\n")
		for _, win := range a.Engagement {
			fmt.Fprintf(w, "  %-12s score %5.1f, %d speakers, %d words\n",
				win.Label, win.Engagement, win.SpeakerCount, win.WordCount)
		}
	}

	if len(a.Notifications) > 0 {
		fmt.Fprintf(w, "\nNotifications:\n")
		for _, n := range a.Notifications {
			fmt.Fprintf(w, "  %s: %s sentiment (%.1f)\n", n.Participant, n.Kind, n.Score)
		}
	}

	return nil
}
