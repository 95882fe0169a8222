package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/netranshi-tripathi/sentiment-analyser/internal/sentiment"
	"github.com/spf13/cobra"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Classify the sentiment of a text",
	Long: `Classify a text as positive, negative, or neutral.

The result includes a confidence score and the policy path that produced it
(local model, keyword-based neutral detection, remote API, or a degraded
default when everything else failed).

Environment variables:
  HF_INFERENCE_URL     - local sentiment inference endpoint (optional)
  HF_API_TOKEN         - bearer token for the inference endpoint (optional)
  PERPLEXITY_API_KEY   - Perplexity API key, used when the local model is unavailable

Examples:
  sentiment-analyser analyze "This is absolutely wonderful and amazing!"
  sentiment-analyser analyze "How does photosynthesis work?" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analyzer := buildAnalyzer()
	result := analyzer.Analyze(context.Background(), args[0])

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

// Sentiment palette: green for positive, red for negative, grey for neutral.
var (
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")).Bold(true)
	neutralStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

func sentimentStyle(label sentiment.Label) lipgloss.Style {
	switch label {
	case sentiment.Positive:
		return positiveStyle
	case sentiment.Negative:
		return negativeStyle
	default:
		return neutralStyle
	}
}

func printResult(result sentiment.Result) {
	style := sentimentStyle(result.Label)
	fmt.Printf("%s %s (%.2f%%)\n",
		labelStyle.Render("Sentiment:"),
		style.Render(string(result.Label)),
		result.Confidence*100)
	fmt.Printf("%s %s\n", labelStyle.Render("Method:"), result.Method)
	if result.Source.Degraded() {
		fmt.Println(labelStyle.Render("(degraded result: classification services were unreachable)"))
	}
}
