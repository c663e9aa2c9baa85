// Package tokens estimates prompt sizes for chat completion requests.
package tokens

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
)

// fallbackEncoding is used for models tiktoken does not know by name
const fallbackEncoding = "cl100k_base"

// Counter counts tokens in text and chat messages. Encoders are cached per model.
type Counter struct {
	encoders map[string]*tiktoken.Tiktoken
	mutex    sync.RWMutex
}

// NewCounter creates a new token counter
func NewCounter() *Counter {
	return &Counter{
		encoders: make(map[string]*tiktoken.Tiktoken),
	}
}

// CountText counts the number of tokens in a plain text string for a specific model
func (c *Counter) CountText(text string, model string) (int, error) {
	encoder, err := c.encoderFor(model)
	if err != nil {
		return 0, err
	}
	return len(encoder.Encode(text, nil, nil)), nil
}

// CountMessages counts the tokens a chat completion request will consume, following
// OpenAI's accounting: a fixed overhead per message, per name and per reply.
func (c *Counter) CountMessages(messages []openai.ChatCompletionMessage, model string) (int, error) {
	encoder, err := c.encoderFor(model)
	if err != nil {
		return 0, err
	}

	tokensPerMessage, tokensPerName := 3, 1
	if strings.HasPrefix(model, "gpt-3.5-turbo-0301") {
		tokensPerMessage, tokensPerName = 4, -1
	}

	numTokens := 0
	for _, message := range messages {
		numTokens += tokensPerMessage
		numTokens += len(encoder.Encode(message.Content, nil, nil))
		numTokens += len(encoder.Encode(message.Role, nil, nil))
		if message.Name != "" {
			numTokens += len(encoder.Encode(message.Name, nil, nil))
			numTokens += tokensPerName
		}
	}

	// Every reply is primed with <|start|>assistant<|message|>
	numTokens += 3
	return numTokens, nil
}

// encoderFor returns a cached tiktoken encoder for the model
func (c *Counter) encoderFor(model string) (*tiktoken.Tiktoken, error) {
	c.mutex.RLock()
	encoder, ok := c.encoders[model]
	c.mutex.RUnlock()
	if ok {
		return encoder, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if encoder, ok := c.encoders[model]; ok {
		return encoder, nil
	}

	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoder, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, fmt.Errorf("failed to get encoding for model %s: %w", model, err)
		}
	}

	c.encoders[model] = encoder
	return encoder, nil
}
