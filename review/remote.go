package review

import (
	"context"
	"fmt"

	"github.com/jeremyhunt/empathetic-reviewer/logger"
	"github.com/jeremyhunt/empathetic-reviewer/openai"
)

// Completer sends one chat completion request
type Completer interface {
	Complete(ctx context.Context, req openai.CompletionRequest) (string, error)
}

// Remote rewrites comments with a language model. Recognized API failures
// (rate limit, authentication, API error) fall back to the canned rewrites
// without retrying; any other error is returned.
type Remote struct {
	client   Completer
	fallback Fallback
}

// NewRemote creates a remote strategy backed by client
func NewRemote(client Completer) *Remote {
	return &Remote{client: client}
}

// Rewrite asks the model for a positive rephrasing, the why, and improved code
func (r *Remote) Rewrite(ctx context.Context, code, comment string) (Result, error) {
	text, err := r.client.Complete(ctx, openai.CompletionRequest{
		System:      rewriteSystemPrompt,
		User:        rewriteUserPrompt(code, comment),
		Temperature: rewriteTemperature,
	})
	if err != nil {
		if openai.IsRemoteFailure(err) {
			logger.Verbose("  remote rewrite unavailable, using fallback: %v", err)
			return r.fallback.Rewrite(ctx, code, comment)
		}
		return Result{}, fmt.Errorf("error rewriting comment %q: %w", comment, err)
	}

	return ParseResponse(text, code), nil
}

// Summarize asks the model for a short encouraging summary
func (r *Remote) Summarize(ctx context.Context) (string, error) {
	text, err := r.client.Complete(ctx, openai.CompletionRequest{
		System:      summarySystemPrompt,
		User:        summaryUserPrompt,
		Temperature: summaryTemperature,
	})
	if err != nil {
		if openai.IsRemoteFailure(err) {
			logger.Verbose("  remote summary unavailable, using fallback: %v", err)
			return r.fallback.Summarize(ctx)
		}
		return "", fmt.Errorf("error generating summary: %w", err)
	}

	return text, nil
}
