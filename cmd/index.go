package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetmind/config"
	"github.com/otherjamesbrown/meetmind/pkg/docs"
	"github.com/otherjamesbrown/meetmind/pkg/embedding"
	"github.com/otherjamesbrown/meetmind/pkg/vectorindex"
)

// IndexCommandDeps holds the dependencies for index commands.
type IndexCommandDeps struct {
	LoadConfig func() (*config.CLIConfig, error)
	Output     io.Writer
}

// DefaultIndexDeps returns the default dependencies for production use.
func DefaultIndexDeps() *IndexCommandDeps {
	return &IndexCommandDeps{
		LoadConfig: config.LoadConfig,
		Output:     os.Stdout,
	}
}

// Index command flags.
var (
	indexTopK   int
	indexOutput string
)

// NewIndexCommand creates the root index command with all subcommands.
func NewIndexCommand(deps *IndexCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultIndexDeps()
	}

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage the document vector index",
		Long: `Manage the persistent vector index used for semantic document search.

Documents are chunked, embedded, and stored on disk. The index survives
restarts; its location is set by index.dir in the config file or
MEETMIND_INDEX_DIR.`,
	}

	cmd.PersistentFlags().StringVarP(&indexOutput, "output", "o", "", "Output format: text, json, or yaml")

	cmd.AddCommand(newIndexAddCommand(deps))
	cmd.AddCommand(newIndexSearchCommand(deps))
	cmd.AddCommand(newIndexStatsCommand(deps))

	return cmd
}

func newIndexAddCommand(deps *IndexCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Chunk, embed, and index a document",
		Long: `Extract text from a document, split it into overlapping chunks,
embed each chunk, and add the chunks to the vector index.

Supported formats: .txt, .md

Examples:
  meetmind index add ./notes/roadmap.md
  meetmind index add ./transcript.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexAdd(cmd.Context(), deps, args[0])
		},
	}
}

func runIndexAdd(ctx context.Context, deps *IndexCommandDeps, path string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	text, err := docs.ExtractText(path)
	if err != nil {
		return err
	}

	chunks := docs.Chunk(text, cfg.Index.ChunkSize, cfg.Index.ChunkOverlap)
	if len(chunks) == 0 {
		return fmt.Errorf("document %s contains no text", path)
	}

	provider := embedding.NewHashing(cfg.Index.Dimension)
	vectors, err := provider.Embed(ctx, chunks)
	if err != nil {
		return fmt.Errorf("embedding chunks: %w", err)
	}

	filename := filepath.Base(path)
	fileType := strings.TrimPrefix(filepath.Ext(path), ".")
	uploadDate := time.Now().UTC().Format(time.RFC3339)

	meta := make([]vectorindex.ChunkMetadata, len(chunks))
	for i, chunk := range chunks {
		meta[i] = vectorindex.ChunkMetadata{
			ID:          uuid.NewString(),
			Filename:    filename,
			FileType:    fileType,
			UploadDate:  uploadDate,
			ChunkID:     i,
			TextPreview: docs.Preview(chunk, 200),
		}
	}

	idx, err := vectorindex.Open(cfg.Index.Dir, cfg.Index.Dimension)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}

	if err := idx.Add(vectors, meta); err != nil {
		return fmt.Errorf("indexing %s: %w", filename, err)
	}

	fmt.Fprintf(deps.Output, "Indexed %s: %d chunks (%d vectors total)\n",
		filename, len(chunks), idx.Count())
	return nil
}

func newIndexSearchCommand(deps *IndexCommandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the vector index",
		Long: `Embed the query and return the nearest indexed chunks by L2 distance.

Examples:
  meetmind index search "quarterly budget"
  meetmind index search "rollout plan" --top-k 10 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexSearch(cmd.Context(), deps, args[0])
		},
	}

	cmd.Flags().IntVarP(&indexTopK, "top-k", "k", 5, "Number of results to return")

	return cmd
}

func runIndexSearch(ctx context.Context, deps *IndexCommandDeps, query string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	provider := embedding.NewHashing(cfg.Index.Dimension)
	vectors, err := provider.Embed(ctx, []string{query})
	if err != nil {
		return fmt.Errorf("embedding query: %w", err)
	}

	idx, err := vectorindex.Open(cfg.Index.Dir, cfg.Index.Dimension)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}

	results, err := idx.Search(vectors[0], indexTopK)
	if err != nil {
		return err
	}

	format, err := outputFormatFor(cfg)
	if err != nil {
		return err
	}
	switch format {
	case config.OutputFormatJSON:
		return outputJSON(deps.Output, results)
	case config.OutputFormatYAML:
		return outputYAML(deps.Output, results)
	default:
		if len(results) == 0 {
			fmt.Fprintln(deps.Output, "No results.")
			return nil
		}
		for i, r := range results {
			fmt.Fprintf(deps.Output, "%d. %s (chunk %d, distance %.4f)\n   %s\n",
				i+1, r.Filename, r.ChunkID, r.Distance, r.TextPreview)
		}
		return nil
	}
}

func newIndexStatsCommand(deps *IndexCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show vector index statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexStats(cmd.Context(), deps)
		},
	}
}

// indexStats is the stats output shape.
type indexStats struct {
	Dir       string         `json:"dir" yaml:"dir"`
	Dimension int            `json:"dimension" yaml:"dimension"`
	Vectors   int            `json:"vectors" yaml:"vectors"`
	Documents map[string]int `json:"documents" yaml:"documents"`
}

func runIndexStats(_ context.Context, deps *IndexCommandDeps) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	idx, err := vectorindex.Open(cfg.Index.Dir, cfg.Index.Dimension)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}

	stats := indexStats{
		Dir:       cfg.Index.Dir,
		Dimension: idx.Dimension(),
		Vectors:   idx.Count(),
		Documents: make(map[string]int),
	}
	for _, m := range idx.Metadata() {
		stats.Documents[m.Filename]++
	}

	format, err := outputFormatFor(cfg)
	if err != nil {
		return err
	}
	switch format {
	case config.OutputFormatJSON:
		return outputJSON(deps.Output, stats)
	case config.OutputFormatYAML:
		return outputYAML(deps.Output, stats)
	default:
		fmt.Fprintf(deps.Output, "Index:     %s\n", stats.Dir)
		fmt.Fprintf(deps.Output, "Dimension: %d\n", stats.Dimension)
		fmt.Fprintf(deps.Output, "Vectors:   %d\n", stats.Vectors)
		if len(stats.Documents) > 0 {
			fmt.Fprintln(deps.Output, "Documents:")
			for name, count := range stats.Documents {
				fmt.Fprintf(deps.Output, "  %s: %d chunks\n", name, count)
			}
		}
		return nil
	}
}

// outputFormatFor resolves the per-command output override against the
// configured default.
func outputFormatFor(cfg *config.CLIConfig) (config.OutputFormat, error) {
	if indexOutput == "" {
		return cfg.OutputFormat, nil
	}
	format := config.OutputFormat(indexOutput)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format %q", indexOutput)
	}
	return format, nil
}
