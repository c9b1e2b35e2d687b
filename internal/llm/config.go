package llm

import (
	"fmt"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Config selects one provider and how to reach it.
type Config struct {
	Provider string // gemini, openai, anthropic or openrouter
	APIKey   string
	Model    string
	BaseURL  string // empty uses the SDK default

	// Timeout bounds one generation including retries.
	Timeout time.Duration
	Retry   RetryPolicy
}

type backend struct {
	name    string
	keyEnv  string // standard variable probed when no provider is named
	model   string
	baseURL string
}

// backends in discovery order.
var backends = []backend{
	{name: "gemini", keyEnv: "GEMINI_API_KEY", model: "gemini-2.5-flash"},
	{name: "openai", keyEnv: "OPENAI_API_KEY", model: "gpt-4o-mini"},
	{name: "anthropic", keyEnv: "ANTHROPIC_API_KEY", model: "claude-haiku-4-5"},
	{name: "openrouter", keyEnv: "OPENROUTER_API_KEY", model: "google/gemini-2.5-flash",
		baseURL: "https://openrouter.ai/api/v1"},
}

// envVar names a provider-scoped setting, e.g. SPRECHEN_GEMINI_MODEL.
func (b backend) envVar(setting string) string {
	return "SPRECHEN_" + strings.ToUpper(b.name) + "_" + setting
}

// LoadConfig resolves the provider from the environment. getenv is
// usually os.Getenv.
//
// SPRECHEN_LLM_PROVIDER picks a provider explicitly; its key comes from
// SPRECHEN_<PROVIDER>_API_KEY or the provider's standard variable.
// Without it the standard key variables are probed in the order gemini,
// openai, anthropic, openrouter.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{Timeout: defaultTimeout, Retry: DefaultRetryPolicy()}
	if t := getenv("SPRECHEN_LLM_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SPRECHEN_LLM_TIMEOUT %q", t)
		}
		cfg.Timeout = d
	}

	name := getenv("SPRECHEN_LLM_PROVIDER")
	var b backend
	if name != "" {
		var ok bool
		if b, ok = findBackend(name); !ok {
			return cfg, fmt.Errorf("unknown LLM provider %q", name)
		}
		cfg.APIKey = firstSet(getenv(b.envVar("API_KEY")), getenv(b.keyEnv))
		if cfg.APIKey == "" {
			return cfg, fmt.Errorf("provider %s needs %s or %s", b.name, b.envVar("API_KEY"), b.keyEnv)
		}
	} else {
		for _, candidate := range backends {
			if key := getenv(candidate.keyEnv); key != "" {
				b, cfg.APIKey = candidate, key
				break
			}
		}
		if cfg.APIKey == "" {
			return cfg, fmt.Errorf("no LLM provider configured: set SPRECHEN_LLM_PROVIDER or one of %s", keyEnvList())
		}
	}

	cfg.Provider = b.name
	cfg.Model = firstSet(getenv(b.envVar("MODEL")), b.model)
	cfg.BaseURL = firstSet(getenv(b.envVar("BASE_URL")), b.baseURL)
	return cfg, nil
}

func findBackend(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

func keyEnvList() string {
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.keyEnv
	}
	return strings.Join(names, ", ")
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
