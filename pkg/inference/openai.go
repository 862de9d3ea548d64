package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"cardsmith/pkg/schema"
)

// Provider describes an OpenAI-compatible chat endpoint.
type Provider struct {
	BaseURL string
	Model   string
}

// Providers are the OpenAI-compatible backends that can generate card stats.
// An empty BaseURL keeps the SDK default.
var Providers = map[string]Provider{
	"openai":   {Model: "gpt-4o-mini"},
	"grok":     {BaseURL: "https://api.x.ai/v1", Model: "grok-4-fast-reasoning"},
	"kimi":     {BaseURL: "https://api.kimi.com/coding/v1", Model: "kimi-for-coding"},
	"moonshot": {BaseURL: "https://api.moonshot.ai/v1", Model: "kimi-k2-5"},
}

// OpenAIInferencer implements Inferencer using OpenAI's official Go SDK.
type OpenAIInferencer struct {
	client *openai.Client
	model  string
}

// NewOpenAIInferencer creates a new inferencer for any OpenAI-compatible API.
// SDK retries are disabled; a failed call is reported once to the caller.
func NewOpenAIInferencer(apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAIInferencer {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIInferencer{
		client: &client,
		model:  model,
	}
}

// Infer sends the prompt as a single user message and requests a strict
// CardStats object.
func (o *OpenAIInferencer) Infer(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Role: "user",
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		ResponseFormat: schema.StatsResponseFormat(),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai inference error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", errors.New("empty completion content")
	}

	return content, nil
}
