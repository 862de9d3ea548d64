package inference

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"cardsmith/pkg/schema"
)

const (
	DefaultGeminiTextModel  = "gemini-2.0-flash"
	DefaultGeminiImageModel = "gemini-2.0-flash-preview-image-generation"
)

// ErrNoImage is returned when a response carries no inline image data.
var ErrNoImage = errors.New("no image data in response")

// NewGeminiClient creates the process-wide Gemini API client.
// An empty baseURL keeps the SDK default endpoint.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions.BaseURL = baseURL
	}
	return genai.NewClient(ctx, config)
}

type GeminiInferencer struct {
	client *genai.Client
	model  string
}

// NewGeminiInferencer wraps a shared client for text generation.
func NewGeminiInferencer(client *genai.Client, model string) *GeminiInferencer {
	if model == "" {
		model = DefaultGeminiTextModel
	}
	return &GeminiInferencer{
		client: client,
		model:  model,
	}
}

// Infer sends the prompt to the Gemini text model and returns the output.
func (o *GeminiInferencer) Infer(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := o.client.Models.GenerateContent(ctx, o.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", errors.New("no candidates returned")
	}

	text := result.Text()
	if text == "" {
		if reason := result.Candidates[0].FinishReason; reason != "" && reason != genai.FinishReasonStop {
			return "", fmt.Errorf("empty completion content (finish reason: %s)", reason)
		}
		return "", errors.New("empty completion content")
	}
	return text, nil
}

type GeminiIllustrator struct {
	client *genai.Client
	model  string
}

// NewGeminiIllustrator wraps a shared client for image generation.
func NewGeminiIllustrator(client *genai.Client, model string) *GeminiIllustrator {
	if model == "" {
		model = DefaultGeminiImageModel
	}
	return &GeminiIllustrator{
		client: client,
		model:  model,
	}
}

// Illustrate asks the image model for text and image output and returns the first image.
func (o *GeminiIllustrator) Illustrate(ctx context.Context, prompt string) (*schema.CardArtwork, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityText), string(genai.ModalityImage)},
	}

	result, err := o.client.Models.GenerateContent(ctx, o.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}
	return FirstImage(result)
}

// FirstImage returns the first part of the first candidate that carries inline
// data. Parts are scanned in the order the provider returned them.
func FirstImage(resp *genai.GenerateContentResponse) (*schema.CardArtwork, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, errors.New("no candidates returned")
	}

	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		// empty blobs are skipped so a later part can still supply the image
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			return &schema.CardArtwork{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			}, nil
		}
	}

	// Safety filters and similar blocks end without an image.
	if reason := candidate.FinishReason; reason != "" && reason != genai.FinishReasonUnspecified && reason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w (finish reason: %s)", ErrNoImage, reason)
	}
	return nil, ErrNoImage
}
