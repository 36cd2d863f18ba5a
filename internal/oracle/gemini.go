package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"intakeflow/internal/config"
)

// geminiProvider calls the Gemini generateContent API directly. Gemini has
// no separate system role in this API version; the system prompt is folded
// into the request text.
type geminiProvider struct {
	cfg    *config.OracleConfig
	client *http.Client
}

func newGeminiProvider(cfg *config.OracleConfig) *geminiProvider {
	return &geminiProvider{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

func (p *geminiProvider) Classify(ctx context.Context, system, user string) (string, error) {
	return p.call(ctx, p.cfg.Models.Classify, system+"\n\n"+user, 0.0)
}

func (p *geminiProvider) Suggest(ctx context.Context, system, user string) (string, error) {
	return p.call(ctx, p.cfg.Models.Suggest, system+"\n\n"+user, 0.7)
}

func (p *geminiProvider) Generate(ctx context.Context, system, user string) (string, error) {
	return p.call(ctx, p.cfg.Models.Summary, system+"\n\n"+user, 0.2)
}

func (p *geminiProvider) call(ctx context.Context, modelName, prompt string, temperature float64) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": temperature,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", p.cfg.ModelEndpoint(modelName), p.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
