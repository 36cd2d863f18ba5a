package oracle

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"intakeflow/internal/config"
)

// openAIProvider speaks the OpenAI chat-completion API. Groq and
// OpenRouter expose the same shape, so pointing BaseURL at either works
// unchanged.
type openAIProvider struct {
	client *openai.Client
	models config.OracleModels
}

func newOpenAIProvider(cfg *config.OracleConfig) *openAIProvider {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	return &openAIProvider{
		client: openai.NewClientWithConfig(oc),
		models: cfg.Models,
	}
}

func (p *openAIProvider) Classify(ctx context.Context, system, user string) (string, error) {
	return p.complete(ctx, p.models.Classify, system, user, 0.0, 0)
}

func (p *openAIProvider) Suggest(ctx context.Context, system, user string) (string, error) {
	return p.complete(ctx, p.models.Suggest, system, user, 0.7, 50)
}

func (p *openAIProvider) Generate(ctx context.Context, system, user string) (string, error) {
	return p.complete(ctx, p.models.Summary, system, user, 0.2, 1500)
}

func (p *openAIProvider) complete(ctx context.Context, model, system, user string, temperature float32, maxTokens int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
