package config

import "os"

// AIConfig holds configuration for the corpus question-answering model.
// Only the ask feature talks to a generative model; facet evaluation is
// heuristic and never leaves the process.
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	AskModel  string `json:"askModel"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:    os.Getenv("GEMINI_API_KEY"),
		BaseURL:   "https://generativelanguage.googleapis.com/v1beta/models",
		AskModel:  getEnvOrDefault("GEMINI_MODEL_ASK", "gemini-2.0-flash"),
		TimeoutMS: 10000,
	}
}

// IsEnabled returns true if the AI API is configured. When it is not, the
// ask service answers from retrieved context alone.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model.
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
