package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentProviderName = "LITTERLENS_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "LITTERLENS_AGENT_BASE_URL"
	EnvAgentToken        = "LITTERLENS_AGENT_TOKEN"
	EnvAgentDeployment   = "LITTERLENS_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "LITTERLENS_AGENT_API_VERSION"
	EnvAgentAuthType     = "LITTERLENS_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "LITTERLENS_AGENT_MODEL_NAME"

	// EnvOpenAIKey is read when EnvAgentToken is unset.
	EnvOpenAIKey = "OPENAI_API_KEY"
)

// Agent defaults target the OpenAI chat completions API, which the ollama
// provider speaks.
const (
	DefaultAgentName     = "litterlens"
	DefaultAgentProvider = "ollama"
	DefaultAgentBaseURL  = "https://api.openai.com"
	DefaultAgentModel    = "gpt-4o-mini"
)

// FinalizeAgent applies the three-phase finalize pattern to a go-agents
// AgentConfig: go-agents defaults with litterlens overrides, environment
// variables, then validation. A missing token is valid.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Name = DefaultAgentName
	if defaults.Provider == nil {
		defaults.Provider = &gaconfig.ProviderConfig{}
	}
	defaults.Provider.Name = DefaultAgentProvider
	defaults.Provider.BaseURL = DefaultAgentBaseURL
	if defaults.Model == nil {
		defaults.Model = &gaconfig.ModelConfig{}
	}
	defaults.Model.Name = DefaultAgentModel

	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(key string, envVars ...string) {
		for _, envVar := range envVars {
			if v := os.Getenv(envVar); v != "" {
				c.Provider.Options[key] = v
				return
			}
		}
	}

	setOption("token", EnvAgentToken, EnvOpenAIKey)
	setOption("deployment", EnvAgentDeployment)
	setOption("api_version", EnvAgentAPIVersion)
	setOption("auth_type", EnvAgentAuthType)
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider base_url required")
	}
	if c.Model == nil || c.Model.Name == "" {
		return fmt.Errorf("model name required")
	}
	return nil
}
