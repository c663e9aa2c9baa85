// Package review turns blunt reviewer comments into an empathetic Markdown report.
package review

import (
	"context"

	"github.com/jeremyhunt/empathetic-reviewer/config"
	"github.com/jeremyhunt/empathetic-reviewer/openai"
)

// PEP8Link is appended to every why-text
const PEP8Link = "https://peps.python.org/pep-0008/"

// codeLanguage tags every fenced code block in prompts and reports
const codeLanguage = "python"

// Result is the rewrite of a single comment
type Result struct {
	// Positive is the kind rephrasing of the comment
	Positive string
	// Why explains the reasoning, always ending with PEP8Link
	Why string
	// Code is the suggested improvement
	Code string
}

// Strategy produces rewrites and the closing summary.
// A non-nil error is fatal to the run; recoverable remote failures never surface here.
type Strategy interface {
	Rewrite(ctx context.Context, code, comment string) (Result, error)
	Summarize(ctx context.Context) (string, error)
}

// NewStrategy picks the remote strategy when an API key is configured, otherwise the fallback
func NewStrategy(cfg *config.Config) Strategy {
	if !cfg.HasOpenAIKey() {
		return Fallback{}
	}
	return NewRemote(openai.NewClient(cfg.OpenAIAPIKey, cfg.Model, cfg.BaseURL))
}

func withReference(why string) string {
	return why + " See: " + PEP8Link
}
