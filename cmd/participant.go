package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetmind/config"
	"github.com/otherjamesbrown/meetmind/pkg/participants"
)

// ParticipantCommandDeps holds the dependencies for participant commands.
type ParticipantCommandDeps struct {
	LoadConfig func() (*config.CLIConfig, error)
	Output     io.Writer
}

// DefaultParticipantDeps returns the default dependencies for production use.
func DefaultParticipantDeps() *ParticipantCommandDeps {
	return &ParticipantCommandDeps{
		LoadConfig: config.LoadConfig,
		Output:     os.Stdout,
	}
}

// Participant command flags.
var (
	participantName  string
	participantRole  string
	participantEmail string
)

// NewParticipantCommand creates the root participant command.
func NewParticipantCommand(deps *ParticipantCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultParticipantDeps()
	}

	cmd := &cobra.Command{
		Use:   "participant",
		Short: "Manage the participant directory",
		Long: `Manage the participant directory used to enrich meeting analyses.

Requires configured storage (storage.postgres_dsn or MEETMIND_POSTGRES_DSN).`,
	}

	cmd.AddCommand(newParticipantAddCommand(deps))
	cmd.AddCommand(newParticipantListCommand(deps))
	cmd.AddCommand(newParticipantShowCommand(deps))

	return cmd
}

func newParticipantAddCommand(deps *ParticipantCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a participant",
		Long: `Register a participant by name, with an optional role and email.

Registering an existing name updates its role and email; blank values
keep what is already stored. The email is stored as given, without
validation.

Examples:
  meetmind participant add --name "Alice Chen" --role "Engineer" --email alice@example.com
  meetmind participant add --name "Bob Park"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParticipantAdd(cmd.Context(), deps)
		},
	}

	cmd.Flags().StringVarP(&participantName, "name", "n", "", "Participant name (required)")
	cmd.Flags().StringVarP(&participantRole, "role", "r", "", "Participant role")
	cmd.Flags().StringVarP(&participantEmail, "email", "e", "", "Participant email")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runParticipantAdd(ctx context.Context, deps *ParticipantCommandDeps) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	repo, closer, err := openRepository(ctx, cfg, newCLILogger(cfg))
	if err != nil {
		return err
	}
	defer closer()

	p := &participants.Participant{
		Name:  participantName,
		Role:  participantRole,
		Email: participantEmail,
	}
	if err := repo.RegisterParticipant(ctx, p); err != nil {
		return err
	}

	fmt.Fprintf(deps.Output, "Registered %s\n", p.Name)
	return nil
}

func newParticipantListCommand(deps *ParticipantCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParticipantList(cmd.Context(), deps)
		},
	}
}

func runParticipantList(ctx context.Context, deps *ParticipantCommandDeps) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	repo, closer, err := openRepository(ctx, cfg, newCLILogger(cfg))
	if err != nil {
		return err
	}
	defer closer()

	people, err := repo.ListParticipants(ctx)
	if err != nil {
		return err
	}

	if cfg.OutputFormat == config.OutputFormatJSON {
		return outputJSON(deps.Output, people)
	}
	if cfg.OutputFormat == config.OutputFormatYAML {
		return outputYAML(deps.Output, people)
	}

	if len(people) == 0 {
		fmt.Fprintln(deps.Output, "No participants registered.")
		return nil
	}
	for _, p := range people {
		fmt.Fprintf(deps.Output, "%-25s %-20s %s\n", p.Name, p.Role, p.Email)
	}
	return nil
}

func newParticipantShowCommand(deps *ParticipantCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParticipantShow(cmd.Context(), deps, args[0])
		},
	}
}

func runParticipantShow(ctx context.Context, deps *ParticipantCommandDeps, name string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	repo, closer, err := openRepository(ctx, cfg, newCLILogger(cfg))
	if err != nil {
		return err
	}
	defer closer()

	p, err := repo.GetParticipant(ctx, name)
	if err != nil {
		return err
	}

	if cfg.OutputFormat == config.OutputFormatJSON {
		return outputJSON(deps.Output, p)
	}
	if cfg.OutputFormat == config.OutputFormatYAML {
		return outputYAML(deps.Output, p)
	}

	fmt.Fprintf(deps.Output, "Name:  %s\n", p.Name)
	fmt.Fprintf(deps.Output, "Role:  %s\n", p.Role)
	fmt.Fprintf(deps.Output, "Email: %s\n", p.Email)
	return nil
}
