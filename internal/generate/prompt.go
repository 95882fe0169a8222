// Package generate produces sentiment-aligned prose for a topic by composing
// a tone-conditioned prompt and sending it to the Perplexity chat API.
package generate

import (
	"fmt"
	"strings"

	"github.com/netranshi-tripathi/sentiment-analyser/internal/sentiment"
)

// Length selects the target size of the generated passage.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

var lengthWordRanges = map[Length]string{
	LengthShort:  "100-200 words",
	LengthMedium: "300-500 words",
	LengthLong:   "500-800 words",
}

var lengthMaxTokens = map[Length]int{
	LengthShort:  300,
	LengthMedium: 600,
	LengthLong:   1000,
}

var sentimentInstructions = map[sentiment.Label]string{
	sentiment.Positive: "Write in an optimistic, uplifting, and encouraging tone. " +
		"Highlight positive aspects, benefits, and hopeful perspectives.",
	sentiment.Negative: "Write in a critical, cautionary, or pessimistic tone. " +
		"Focus on challenges, drawbacks, and concerning aspects.",
	sentiment.Neutral: "Write in an objective, balanced, and informative tone. " +
		"Present facts without emotional bias.",
}

// WordRange returns the target word-count range for a length tier. Unknown
// tiers fall back to medium.
func (l Length) WordRange() string {
	if r, ok := lengthWordRanges[l]; ok {
		return r
	}
	return lengthWordRanges[LengthMedium]
}

// MaxTokens returns the token budget for a length tier. Unknown tiers fall
// back to medium.
func (l Length) MaxTokens() int {
	if n, ok := lengthMaxTokens[l]; ok {
		return n
	}
	return lengthMaxTokens[LengthMedium]
}

// ComposePrompt builds the sentiment-conditioned generation prompt. Unknown
// sentiments get the neutral instruction.
func ComposePrompt(label sentiment.Label, topic string, length Length) string {
	instruction, ok := sentimentInstructions[label]
	if !ok {
		instruction = sentimentInstructions[sentiment.Neutral]
	}

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Write a well-structured %s paragraph or essay of approximately %s ", label, length.WordRange()))
	b.WriteString(fmt.Sprintf("about the following topic:\n\n%s\n\n", strings.TrimSpace(topic)))
	b.WriteString(fmt.Sprintf("Ensure the content is coherent, engaging, and maintains the %s sentiment throughout.", label))
	return b.String()
}
