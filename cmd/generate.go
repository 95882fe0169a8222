package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/netranshi-tripathi/sentiment-analyser/internal/generate"
	"github.com/netranshi-tripathi/sentiment-analyser/internal/perplexity"
	"github.com/netranshi-tripathi/sentiment-analyser/internal/sentiment"
	"github.com/spf13/cobra"
)

var (
	overrideSentiment string
	lengthTier        string
	temperature       float64
	generateJSON      bool
	verbose           bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate a passage whose tone matches the topic's sentiment",
	Long: `Classify the sentiment of a topic prompt, then generate a longer passage
of text carrying that tone.

The detected sentiment can be overridden with --sentiment. Length tiers map
to target word ranges: short (100-200), medium (300-500), long (500-800).

Required environment variables:
  PERPLEXITY_API_KEY   - Perplexity API key for text generation

Examples:
  sentiment-analyser generate "renewable energy adoption"
  sentiment-analyser generate "climate change" --sentiment neutral --length long
  sentiment-analyser generate "weekend plans" --temperature 0.9 --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&overrideSentiment, "sentiment", "", "Override the detected sentiment: positive, negative, or neutral")
	generateCmd.Flags().StringVar(&lengthTier, "length", "medium", "Passage length tier: short, medium, or long")
	generateCmd.Flags().Float64Var(&temperature, "temperature", 0.7, "Creativity, 0.0-1.0")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the passage as JSON")
	generateCmd.Flags().BoolVar(&verbose, "verbose", false, "Show classification details and progress")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := args[0]
	ctx := context.Background()

	label, err := resolveSentiment(ctx, topic)
	if err != nil {
		return err
	}

	client, err := perplexity.NewClient(os.Getenv("PERPLEXITY_API_KEY"))
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if verbose {
		fmt.Println(progressStyle.Render("→ Generating passage..."))
	}

	gen := generate.NewGenerator(client)
	passage, err := gen.Generate(ctx, generate.Request{
		Sentiment:   label,
		Topic:       topic,
		Length:      generate.Length(lengthTier),
		Temperature: temperature,
	})
	if err != nil {
		return err
	}

	if generateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(passage)
	}

	printPassage(passage)
	return nil
}

// resolveSentiment returns the manual override when given, otherwise runs the
// classifier on the topic.
func resolveSentiment(ctx context.Context, topic string) (sentiment.Label, error) {
	if overrideSentiment != "" {
		switch label := sentiment.Label(overrideSentiment); label {
		case sentiment.Positive, sentiment.Negative, sentiment.Neutral:
			if verbose {
				fmt.Println(progressStyle.Render("→ Using manual sentiment override: " + overrideSentiment))
			}
			return label, nil
		default:
			return "", fmt.Errorf("invalid --sentiment %q: must be positive, negative, or neutral", overrideSentiment)
		}
	}

	if verbose {
		fmt.Println(progressStyle.Render("→ Classifying topic sentiment..."))
	}
	result := buildAnalyzer().Analyze(ctx, topic)
	if verbose {
		printResult(result)
	}
	return result.Label, nil
}

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

func printPassage(passage *generate.Passage) {
	fmt.Println()
	fmt.Printf("%s %s\n", headerStyle.Render("Generated passage"),
		sentimentStyle(passage.Sentiment).Render("["+string(passage.Sentiment)+"]"))
	fmt.Println()
	fmt.Println(passage.Text)
	fmt.Println()
	fmt.Println(metaStyle.Render(fmt.Sprintf("%d words · %s · model %s", passage.WordCount, passage.Length, passage.Model)))

	if len(passage.Citations) > 0 {
		fmt.Println()
		fmt.Println(metaStyle.Render("Citations:"))
		for _, c := range passage.Citations {
			fmt.Println(metaStyle.Render("  - " + c))
		}
	}
}
