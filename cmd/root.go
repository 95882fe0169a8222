package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/netranshi-tripathi/sentiment-analyser/internal/hf"
	"github.com/netranshi-tripathi/sentiment-analyser/internal/sentiment"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sentiment-analyser",
	Short: "Sentiment-aligned text generation",
	Long: `Sentiment-analyser classifies the emotional sentiment of a topic prompt
and generates a longer passage of text whose tone matches it.

Classification layers a local statistical model, a keyword-based neutral
detector, and a remote LLM fallback, so it always produces a label.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildAnalyzer negotiates the classification capabilities once: the local
// inference endpoint if configured and reachable, the Perplexity API otherwise.
func buildAnalyzer() *sentiment.Analyzer {
	remote := sentiment.NewPerplexityClassifier(os.Getenv("PERPLEXITY_API_KEY"))

	local, err := hf.NewClient(os.Getenv("HF_INFERENCE_URL"), os.Getenv("HF_API_TOKEN"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: local sentiment model unavailable, using Perplexity API (%v)\n", err)
		return sentiment.NewAnalyzer(nil, remote)
	}
	return sentiment.NewAnalyzer(local, remote)
}
