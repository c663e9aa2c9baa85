// Package openai wraps the OpenAI chat completion API for the review rewriter.
package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/jeremyhunt/empathetic-reviewer/logger"
	"github.com/jeremyhunt/empathetic-reviewer/tokens"
)

// CompletionRequest is a single system + user exchange
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
}

// Client represents an OpenAI API client
type Client struct {
	api          *goopenai.Client
	model        string
	tokenCounter *tokens.Counter
}

// NewClient creates a new OpenAI client. An empty baseURL keeps the library default endpoint.
func NewClient(apiKey, model, baseURL string) *Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		api:          goopenai.NewClientWithConfig(cfg),
		model:        model,
		tokenCounter: tokens.NewCounter(),
	}
}

// Complete sends one chat completion request and returns the trimmed text of the first choice.
// Recognized API failures are returned as *RemoteFailure; anything else is a plain wrapped error.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := []goopenai.ChatCompletionMessage{
		{Role: goopenai.ChatMessageRoleSystem, Content: req.System},
		{Role: goopenai.ChatMessageRoleUser, Content: req.User},
	}

	if logger.IsDebugEnabled() {
		c.logPromptSize(messages)
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *Client) logPromptSize(messages []goopenai.ChatCompletionMessage) {
	count, err := c.tokenCounter.CountMessages(messages, c.model)
	if err != nil {
		logger.Debug("could not count prompt tokens: %v", err)
		return
	}
	logger.Debug("sending %d-token prompt to %s", count, c.model)
}
