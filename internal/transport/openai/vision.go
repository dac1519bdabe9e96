package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/slidegenie/slidematch/internal/domain"
	"github.com/slidegenie/slidematch/internal/metrics"
)

// describePrompt asks the model for everything the matcher scores on:
// subject, visual elements, matching keywords, likely slide section,
// and visible technical terms.
const describePrompt = "Analyze this image in detail for presentation use. Provide: " +
	"1) Main subject/topic and scientific/technical elements, " +
	"2) Key visual elements and data shown, " +
	"3) Relevant keywords for content matching, " +
	"4) Potential slide context (intro, methods, results, conclusion), " +
	"5) Technical terms and concepts visible. " +
	"Be specific and technical when appropriate."

// Vision is an image description provider using a vision-capable chat
// model over the OpenAI-compatible API.
type Vision struct {
	client    *openai.Client
	model     string
	maxTokens int
	provider  string
	logger    *zap.Logger
}

// VisionConfig holds the vision provider settings.
type VisionConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Provider  string
	Logger    *zap.Logger
}

// NewVision creates an OpenAI-compatible vision description provider.
func NewVision(cfg *VisionConfig) *Vision {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Vision{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		provider:  cfg.Provider,
		logger:    cfg.Logger,
	}
}

// DescribeImage implements domain.VisionDescriber. The image is sent
// base64-encoded as an inline data URL; the response text is returned
// verbatim within the configured token budget.
func (v *Vision) DescribeImage(ctx context.Context, image []byte, name string) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	req := openai.ChatCompletionRequest{
		Model:     v.model,
		MaxTokens: v.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: describePrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + encoded,
						},
					},
				},
			},
		},
	}

	start := time.Now()

	resp, err := v.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.VisionRequestsTotal.WithLabelValues(v.provider, v.model, "error").Inc()
		metrics.VisionErrorsTotal.WithLabelValues(v.provider, v.model, "api_error").Inc()
		return "", parseAPIError(err, domain.ErrVisionProviderError, "vision")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		metrics.VisionRequestsTotal.WithLabelValues(v.provider, v.model, "error").Inc()
		metrics.VisionErrorsTotal.WithLabelValues(v.provider, v.model, "empty_response").Inc()
		return "", fmt.Errorf("empty vision response: %w", domain.ErrVisionProviderError)
	}

	metrics.VisionRequestsTotal.WithLabelValues(v.provider, v.model, "success").Inc()
	metrics.VisionRequestDuration.WithLabelValues(v.provider, v.model).Observe(duration.Seconds())

	v.logger.Debug("Vision analysis complete",
		zap.String("image", name),
		zap.Duration("duration", duration),
	)

	return resp.Choices[0].Message.Content, nil
}
