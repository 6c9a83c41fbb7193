package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"intent-relay/internal/adapter/client"
	"intent-relay/internal/domain/entity"
)

type Config struct {
	// Server
	Port       string `env:"PORT,default=8787" validate:"required,numeric"`
	Env        string `env:"ENV,default=development"`
	AppVersion string `env:"APP_VERSION,default=dev"`
	LogLevel   string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`

	// Relay
	Profile      string        `env:"RELAY_PROFILE,default=professor" validate:"profile"`
	Provider     string        `env:"MODEL_PROVIDER,default=azure" validate:"provider"`
	ModelTimeout time.Duration `env:"MODEL_TIMEOUT,default=25s" validate:"gt=0"`
	ChatModel    string        `env:"CHAT_MODEL"`

	// Azure OpenAI / OpenAI
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	EndpointURL    string `env:"ENDPOINT_URL"`
	DeploymentName string `env:"DEPLOYMENT_NAME"`
	APIVersion     string `env:"API_VERSION"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`

	// Gemini
	GeminiAPIKey        string `env:"GEMINI_API_KEY"`
	GoogleCloudProject  string `env:"GOOGLE_CLOUD_PROJECT"`
	GoogleCloudLocation string `env:"GOOGLE_CLOUD_LOCATION"`
}

// LoadEnvFile merges a .env file into the process environment. Existing variables win.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// Load decodes the process environment into a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if _, err := env.UnmarshalFromEnviron(cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	c.Profile = strings.ToLower(strings.TrimSpace(c.Profile))
	c.EndpointURL = NormalizeEndpoint(c.EndpointURL)
}

func (c *Config) Validate() error {
	v := validator.New()
	_ = v.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
		return lo.Contains(client.Providers, fl.Field().String())
	})
	_ = v.RegisterValidation("profile", func(fl validator.FieldLevel) bool {
		_, err := entity.LookupProfile(fl.Field().String())
		return err == nil
	})
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NormalizeEndpoint appends the trailing slash the deployment URL is built against.
func NormalizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasSuffix(raw, "/") {
		return raw
	}
	return raw + "/"
}

// Missing names the backend settings the selected provider needs but doesn't have.
func (c *Config) Missing() []string {
	var missing []string
	need := func(key, val string) {
		if val == "" {
			missing = append(missing, key)
		}
	}
	switch c.Provider {
	case client.ProviderAzure:
		need("OPENAI_API_KEY", c.OpenAIAPIKey)
		need("ENDPOINT_URL", c.EndpointURL)
		need("DEPLOYMENT_NAME", c.DeploymentName)
		need("API_VERSION", c.APIVersion)
	case client.ProviderOpenAI:
		need("OPENAI_API_KEY", c.OpenAIAPIKey)
	case client.ProviderGemini:
		if c.GeminiAPIKey == "" {
			need("GOOGLE_CLOUD_PROJECT", c.GoogleCloudProject)
			need("GOOGLE_CLOUD_LOCATION", c.GoogleCloudLocation)
			if len(missing) > 0 {
				missing = append([]string{"GEMINI_API_KEY"}, missing...)
			}
		}
	}
	return missing
}

// ModelName is CHAT_MODEL, or the provider's own default where the profile's would not apply.
func (c *Config) ModelName() string {
	if c.ChatModel != "" {
		return c.ChatModel
	}
	if c.Provider == client.ProviderGemini {
		return "gemini-2.5-flash"
	}
	return ""
}

func (c *Config) ClientSettings() client.Settings {
	return client.Settings{
		Azure: client.AzureConfig{
			APIKey:     c.OpenAIAPIKey,
			Endpoint:   c.EndpointURL,
			Deployment: c.DeploymentName,
			APIVersion: c.APIVersion,
		},
		OpenAI: client.OpenAIConfig{
			APIKey:  c.OpenAIAPIKey,
			BaseURL: c.OpenAIBaseURL,
			Model:   c.ChatModel,
		},
		Gemini: client.GeminiConfig{
			APIKey:   c.GeminiAPIKey,
			Project:  c.GoogleCloudProject,
			Location: c.GoogleCloudLocation,
		},
	}
}
