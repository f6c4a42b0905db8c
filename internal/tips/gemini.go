package tips

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

const (
	DefaultModel   = "gemini-3-flash-preview"
	DefaultTimeout = 15 * time.Second
)

const promptTemplate = `You are a calm, minimalist productivity assistant.
The user is currently in the %q phase of a Pomodoro timer.
Provide a single, short (under 20 words), soothing, and actionable mindfulness tip or productivity quote relevant to this phase.
Do not use emojis. Keep the tone premium and serene.`

// GeminiConfig configures the Gemini tip provider.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// Options are appended to the client options, e.g. a custom endpoint.
	Options []option.ClientOption
}

// GeminiProvider asks the Gemini API for a tip.
type GeminiProvider struct {
	config GeminiConfig
	logger *slog.Logger
}

// NewGeminiProvider creates a provider. An empty API key is valid: every
// fetch then returns FallbackNoCredential without touching the network.
func NewGeminiProvider(config GeminiConfig, logger *slog.Logger) *GeminiProvider {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiProvider{config: config, logger: logger}
}

// Fetch returns a trimmed tip, or a fallback on any failure.
func (provider *GeminiProvider) Fetch(ctx context.Context, tipContext string) string {
	if provider.config.APIKey == "" {
		return FallbackNoCredential
	}

	text, err := provider.generate(ctx, tipContext)
	if err != nil {
		provider.logger.Warn("fetch tip failed", "context", tipContext, "error", err)
		return FallbackFailure
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackEmpty
	}
	return text
}

// Prompt returns the instruction sent for a context label.
func Prompt(tipContext string) string {
	return fmt.Sprintf(promptTemplate, tipContext)
}

func (provider *GeminiProvider) generate(ctx context.Context, tipContext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, provider.config.Timeout)
	defer cancel()

	options := append([]option.ClientOption{option.WithAPIKey(provider.config.APIKey)}, provider.config.Options...)
	service, err := generativelanguage.NewService(ctx, options...)
	if err != nil {
		return "", fmt.Errorf("create gemini service: %w", err)
	}

	request := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: Prompt(tipContext)}},
		}},
	}
	response, err := service.Models.GenerateContent(modelName(provider.config.Model), request).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return responseText(response), nil
}

func modelName(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}

func responseText(response *generativelanguage.GenerateContentResponse) string {
	if response == nil {
		return ""
	}
	for _, candidate := range response.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var builder strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil {
				builder.WriteString(part.Text)
			}
		}
		if builder.Len() > 0 {
			return builder.String()
		}
	}
	return ""
}
