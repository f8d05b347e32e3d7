package domain

import (
	"fmt"
	"strings"
)

// BlogGeneratorInput is the form collected by the blog generator input step.
type BlogGeneratorInput struct {
	Topic          string `json:"topic"`
	Tone           string `json:"tone"`
	TargetAudience string `json:"targetAudience"`
}

type BlogGeneratorOutput struct {
	Article   string `json:"article"`
	WordCount uint64 `json:"wordCount"`
}

// GeneratedContent is persisted by the backend per caller.
type GeneratedContent struct {
	AppID     string              `json:"appId"`
	Input     BlogGeneratorInput  `json:"input"`
	Output    BlogGeneratorOutput `json:"output"`
	Timestamp int64               `json:"timestamp"`
}

var toneOpenings = map[string]string{
	"professional":   "In today's landscape,",
	"casual":         "Let's be honest:",
	"friendly":       "Hey there!",
	"authoritative":  "The evidence is clear:",
	"conversational": "You've probably wondered about this.",
	"inspirational":  "Every great journey starts with a single idea.",
}

// ComposeArticle renders the blog article for the collected input.
func ComposeArticle(in BlogGeneratorInput) BlogGeneratorOutput {
	opening, ok := toneOpenings[in.Tone]
	if !ok {
		opening = toneOpenings["professional"]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", in.Topic)
	fmt.Fprintf(&b, "%s %s matters more than ever for %s.\n\n", opening, in.Topic, in.TargetAudience)
	fmt.Fprintf(&b, "## Why %s\n\n", in.Topic)
	fmt.Fprintf(&b, "For %s, understanding %s is the difference between keeping up and leading. "+
		"This article walks through the essentials and the practical steps you can take this week.\n\n", in.TargetAudience, in.Topic)
	b.WriteString("## Key Takeaways\n\n")
	fmt.Fprintf(&b, "- Start small: pick one area of %s and measure the result.\n", in.Topic)
	b.WriteString("- Share what you learn with your audience to build trust.\n")
	b.WriteString("- Revisit your approach every month and keep what works.\n\n")
	b.WriteString("## Conclusion\n\n")
	fmt.Fprintf(&b, "%s is not a one-time project. Keep experimenting, and your %s will notice.\n", in.Topic, in.TargetAudience)

	article := b.String()
	return BlogGeneratorOutput{Article: article, WordCount: uint64(len(strings.Fields(article)))}
}
