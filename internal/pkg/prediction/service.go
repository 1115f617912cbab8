// Package prediction transforms validated material inputs into typed
// predictions by delegating to an external text-completion provider, or
// to canned representative data when no credential is configured.
package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/env"
	"github.com/matsci-ai/matsci/internal/pkg/schema"
	"github.com/matsci-ai/matsci/pkg/logger"
)

// DefaultModel is used when OPENAI_MODEL is not set.
const DefaultModel = "gpt-5"

// providerTimeout bounds the single attempt against the provider. No
// retries: one call per request.
const providerTimeout = 30 * time.Second

const maxResponseTokens = 2048

// Service is the prediction contract: one operation per prediction type.
type Service interface {
	PredictComposition(ctx context.Context, input *schema.PropertySetInput) (*schema.CompositionPrediction, error)
	PredictProperties(ctx context.Context, input *schema.CompositionInput) (*schema.PropertyPrediction, error)
	PredictPlan(ctx context.Context, input *schema.PlanInput) (*schema.PlanPrediction, error)
	// Model identifies which model produced the outputs, recorded on
	// every stored prediction.
	Model() string
}

// NewFromEnv builds the provider-backed service when OPENAI_API_KEY is
// set and the offline fallback otherwise. Fallback mode is a supported
// configuration, not an error.
func NewFromEnv() Service {
	apiKey := env.GetEnv("OPENAI_API_KEY", "")
	if apiKey == "" {
		logger.Get().Infow("no AI provider credential configured, using fallback predictions")
		return NewFallback()
	}
	model := env.GetEnv("OPENAI_MODEL", DefaultModel)
	return NewOpenAI(apiKey, model)
}

type openAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a provider-backed service.
func NewOpenAI(apiKey, model string) Service {
	return &openAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *openAIService) Model() string { return s.model }

func (s *openAIService) PredictComposition(ctx context.Context, input *schema.PropertySetInput) (*schema.CompositionPrediction, error) {
	raw, err := s.complete(ctx, compositionSystemMessage, compositionPrompt(input))
	if err != nil {
		return nil, err
	}
	var out schema.CompositionPrediction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, apperror.Wrap(apperror.KindUpstreamShape, "provider returned malformed composition prediction", err)
	}
	if verr := out.Validate(); verr != nil {
		return nil, shapeMismatch("composition prediction", verr)
	}
	return &out, nil
}

func (s *openAIService) PredictProperties(ctx context.Context, input *schema.CompositionInput) (*schema.PropertyPrediction, error) {
	raw, err := s.complete(ctx, propertiesSystemMessage, propertiesPrompt(input))
	if err != nil {
		return nil, err
	}
	var out schema.PropertyPrediction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, apperror.Wrap(apperror.KindUpstreamShape, "provider returned malformed property prediction", err)
	}
	if verr := out.Validate(); verr != nil {
		return nil, shapeMismatch("property prediction", verr)
	}
	return &out, nil
}

func (s *openAIService) PredictPlan(ctx context.Context, input *schema.PlanInput) (*schema.PlanPrediction, error) {
	raw, err := s.complete(ctx, planSystemMessage, planPrompt(input))
	if err != nil {
		return nil, err
	}
	var out schema.PlanPrediction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, apperror.Wrap(apperror.KindUpstreamShape, "provider returned malformed material plan", err)
	}
	if verr := out.Validate(); verr != nil {
		return nil, shapeMismatch("material plan", verr)
	}
	return &out, nil
}

// complete performs the single bounded provider call in forced-JSON mode
// and returns the raw response text.
func (s *openAIService) complete(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens: maxResponseTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperror.Wrap(apperror.KindUpstreamTimeout, "provider call timed out", err)
		}
		return "", apperror.Wrap(apperror.KindUpstream, "provider call failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", apperror.New(apperror.KindUpstream, "provider returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// shapeMismatch wraps a re-validation failure of provider output. The
// malformed value is never persisted.
func shapeMismatch(what string, verr *apperror.Error) *apperror.Error {
	return apperror.Wrap(apperror.KindUpstreamShape,
		fmt.Sprintf("provider %s failed schema validation", what), verr)
}
