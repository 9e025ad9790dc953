// Package config loads process configuration from an optional YAML file, a
// .env file and CONCIERGE_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hikarisalon/concierge/internal/faq"
	"github.com/hikarisalon/concierge/internal/llm"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Line    LineConfig    `mapstructure:"line"`
	KB      CorpusConfig  `mapstructure:"kb"`
	FAQ     FAQConfig     `mapstructure:"faq"`
	Answer  AnswerConfig  `mapstructure:"answer"`
	LLM     llm.Config    `mapstructure:"llm"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LineConfig carries the messaging platform credentials. An empty channel
// secret disables webhook signature checking, which is only acceptable in
// local development.
type LineConfig struct {
	ChannelSecret string `mapstructure:"channel_secret"`
	ChannelToken  string `mapstructure:"channel_token"`
}

type CorpusConfig struct {
	Path string `mapstructure:"path"`
}

type FAQConfig struct {
	Path      string  `mapstructure:"path"`
	Backend   string  `mapstructure:"backend"`
	Threshold float64 `mapstructure:"threshold"`
}

// AnswerConfig selects how matched FAQ entries become replies: "template"
// substitutes facts directly, "generate" phrases them through the LLM.
type AnswerConfig struct {
	Mode string `mapstructure:"mode"`
}

type LedgerConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. path may be empty, in which case only defaults,
// .env and environment variables apply. A missing config file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	// Best effort; system env wins over .env contents.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CONCIERGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("line.channel_secret", "")
	v.SetDefault("line.channel_token", "")
	v.SetDefault("kb.path", "data/kb.yaml")
	v.SetDefault("faq.path", "data/faq.yaml")
	v.SetDefault("faq.backend", faq.BackendTFIDF)
	v.SetDefault("faq.threshold", faq.DefaultThreshold)
	v.SetDefault("answer.mode", "template")
	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout_ms", 10000)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("ledger.path", "data/concierge.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func validate(cfg *Config) error {
	if cfg.Answer.Mode != "template" && cfg.Answer.Mode != "generate" {
		return fmt.Errorf("answer.mode must be template or generate, got %q", cfg.Answer.Mode)
	}
	if cfg.Answer.Mode == "generate" && !cfg.LLM.Enabled {
		return fmt.Errorf("answer.mode generate requires llm.enabled")
	}
	if cfg.LLM.Enabled && cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required when llm.enabled")
	}
	if cfg.FAQ.Backend != faq.BackendTFIDF && cfg.FAQ.Backend != faq.BackendKeyword {
		return fmt.Errorf("faq.backend must be %s or %s, got %q", faq.BackendTFIDF, faq.BackendKeyword, cfg.FAQ.Backend)
	}
	if cfg.FAQ.Threshold < 0 || cfg.FAQ.Threshold > 1 {
		return fmt.Errorf("faq.threshold must be within [0,1], got %g", cfg.FAQ.Threshold)
	}
	return nil
}
