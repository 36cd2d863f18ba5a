package config

import "os"

// OracleModels defines which model handles each oracle task
type OracleModels struct {
	// Classify is for category prediction (needs to be fast)
	Classify string `json:"classify"`

	// Suggest is for answer autocomplete (fast, low token budget)
	Suggest string `json:"suggest"`

	// Summary is for clinical summary generation (quality over speed)
	Summary string `json:"summary"`
}

// OracleConfig holds all language-model oracle configuration
type OracleConfig struct {
	Provider  string       `json:"provider"` // "openai" or "gemini"
	APIKey    string       `json:"-"`        // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    OracleModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultOracleConfig returns the default oracle configuration. The
// openai provider speaks the OpenAI chat API shape, which also covers
// Groq and OpenRouter deployments via ORACLE_BASE_URL.
func DefaultOracleConfig() *OracleConfig {
	provider := getEnv("ORACLE_PROVIDER", "openai")

	baseURL := os.Getenv("ORACLE_BASE_URL")
	if baseURL == "" {
		switch provider {
		case "gemini":
			baseURL = "https://generativelanguage.googleapis.com/v1beta/models"
		default:
			baseURL = "https://api.groq.com/openai/v1"
		}
	}

	return &OracleConfig{
		Provider: provider,
		APIKey:   os.Getenv("ORACLE_API_KEY"),
		BaseURL:  baseURL,
		Models: OracleModels{
			Classify: getEnv("ORACLE_MODEL_CLASSIFY", "llama-3.1-8b-instant"),
			Suggest:  getEnv("ORACLE_MODEL_SUGGEST", "llama-3.1-8b-instant"),
			Summary:  getEnv("ORACLE_MODEL_SUMMARY", "llama-3.3-70b-versatile"),
		},
		TimeoutMS: 10000, // single attempt, no retries
	}
}

// IsEnabled returns true if the oracle API is configured
func (c *OracleConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full generateContent endpoint for a Gemini model
func (c *OracleConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}
