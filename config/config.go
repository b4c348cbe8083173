package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant relay specifics
	OpenAI OpenAIConfig
	Chat   ChatConfig
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

// OpenAIConfig configures the Assistants API client and the run poll loop.
type OpenAIConfig struct {
	APIKey          string
	AssistantID     string
	BaseURL         string
	PollMaxAttempts int
	PollInitialWait time.Duration
}

// ChatConfig configures the chat HTTP surface and the conversation log.
type ChatConfig struct {
	AllowedOrigins   []string
	RateLimitPerMin  int
	ConversationFile string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI Assistants API
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.AssistantID = viper.GetString("openai.assistant_id")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	if assistantID := viper.GetString("openai_assistant_id"); assistantID != "" {
		cfg.OpenAI.AssistantID = assistantID
	}

	cfg.OpenAI.PollMaxAttempts = viper.GetInt("openai.poll_max_attempts")
	pollWait, err := time.ParseDuration(viper.GetString("openai.poll_initial_wait"))
	if err != nil {
		return nil, fmt.Errorf("invalid openai.poll_initial_wait: %w", err)
	}
	cfg.OpenAI.PollInitialWait = pollWait

	// Chat surface
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.ConversationFile = viper.GetString("chat.conversation_file")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("chat.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.Chat.AllowedOrigins = origins

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// OpenAI defaults: 1,2,4,8,16s schedule, ~31s worst case before giving up
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.poll_max_attempts", 5)
	viper.SetDefault("openai.poll_initial_wait", "1s")

	// Chat defaults
	viper.SetDefault("chat.rate_limit_per_min", 5)
	viper.SetDefault("chat.conversation_file", "conversations.json")
}
