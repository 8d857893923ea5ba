package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Completion backend
	Ollama OllamaConfig

	// Routing engine
	Router   RouterConfig
	Registry RegistryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OllamaConfig configures the completion service client.
type OllamaConfig struct {
	Host    string
	Model   string // classifier model, kept small for latency
	Timeout time.Duration
}

// RouterConfig holds the routing policy knobs. The confidence threshold and
// selection precedence were tuned empirically, so they live in config rather
// than code.
type RouterConfig struct {
	ConfidenceThreshold float64
	ClassifyTimeout     time.Duration
	DefaultModel        string
	CacheEnabled        bool
	CacheTTL            time.Duration
	CacheSize           int
	RateLimitPerMin     int
}

// RegistryConfig lists the models deployed and reachable by the dispatcher.
type RegistryConfig struct {
	Models []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Ollama
	cfg.Ollama.Host = viper.GetString("ollama.host")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	cfg.Ollama.Timeout = viper.GetDuration("ollama.timeout")
	if host := viper.GetString("ollama_host"); host != "" {
		cfg.Ollama.Host = host
	}

	// Router policy
	cfg.Router.ConfidenceThreshold = viper.GetFloat64("router.confidence_threshold")
	cfg.Router.ClassifyTimeout = viper.GetDuration("router.classify_timeout")
	cfg.Router.DefaultModel = viper.GetString("router.default_model")
	cfg.Router.CacheEnabled = viper.GetBool("router.cache_enabled")
	cfg.Router.CacheTTL = viper.GetDuration("router.cache_ttl")
	cfg.Router.CacheSize = viper.GetInt("router.cache_size")
	cfg.Router.RateLimitPerMin = viper.GetInt("router.rate_limit_per_min")
	if model := viper.GetString("default_model"); model != "" {
		cfg.Router.DefaultModel = model
	}

	// Capability registry
	cfg.Registry.Models = viper.GetStringSlice("registry.models")
	if rawModels := viper.GetString("registry_models"); rawModels != "" {
		var models []string
		for _, m := range strings.Split(rawModels, ",") {
			m = strings.TrimSpace(m)
			if m != "" {
				models = append(models, m)
			}
		}
		cfg.Registry.Models = models
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Router.ConfidenceThreshold < 0 || c.Router.ConfidenceThreshold > 1 {
		return fmt.Errorf("router.confidence_threshold must be in [0,1], got %f", c.Router.ConfidenceThreshold)
	}
	if c.Router.DefaultModel == "" {
		return fmt.Errorf("router.default_model is required")
	}
	if len(c.Registry.Models) == 0 {
		return fmt.Errorf("registry.models must not be empty")
	}
	for _, m := range c.Registry.Models {
		if m == c.Router.DefaultModel {
			return nil
		}
	}
	return fmt.Errorf("router.default_model %q is not in registry.models", c.Router.DefaultModel)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Ollama defaults
	viper.SetDefault("ollama.host", "http://localhost:11434")
	viper.SetDefault("ollama.model", "gemma3:1b")
	viper.SetDefault("ollama.timeout", "120s")

	// Router policy defaults
	viper.SetDefault("router.confidence_threshold", 0.6)
	viper.SetDefault("router.classify_timeout", "5s")
	viper.SetDefault("router.default_model", "phi4:14b")
	viper.SetDefault("router.cache_enabled", true)
	viper.SetDefault("router.cache_ttl", "300s")
	viper.SetDefault("router.cache_size", 512)
	viper.SetDefault("router.rate_limit_per_min", 60)

	// Models deployed on the local Ollama host
	viper.SetDefault("registry.models", []string{
		"gemma3:1b",
		"gemma3:4b",
		"qwen2.5-coder:3b",
		"qwen2.5-coder:7b",
		"qwen2.5:14b",
		"phi4:14b",
		"llama3.2-vision:11b",
		"minicpm-v:8b",
		"deepseek-coder-v2:16b",
	})
}
