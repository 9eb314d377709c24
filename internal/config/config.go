// Package config assembles the server configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"support-desk-backend/internal/env"
	"support-desk-backend/internal/store"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	DefaultListenAddr     = ":5000"
	DefaultReplyModel     = "gemini-2.5-flash"
	DefaultSentimentModel = "gemini-2.5-pro"
	DefaultCategoryModel  = "gemini-2.5-flash"
	DefaultAITimeout      = 20 * time.Second
)

var defaultOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

type Config struct {
	ListenAddr     string
	AllowedOrigins []string

	Gemini GeminiConfig

	SeedDemoData bool
	SeedFile     string

	ResponseTime string
	CSAT         float64

	RequestQueueSize    int
	RequestWorkers      int
	BackgroundQueueSize int
	BackgroundWorkers   int

	RedisURL  string
	RedisPass string

	AWS              AWSConfig
	TranscriptsTable string

	DigestCron string
}

type GeminiConfig struct {
	APIKey         string
	ReplyModel     string
	SentimentModel string
	CategoryModel  string
	Timeout        time.Duration
}

type AWSConfig struct {
	Region   string
	ID       string
	Secret   string
	Token    string
	Endpoint string
}

// ArchiveEnabled reports whether transcripts can be written to DynamoDB.
func (c Config) ArchiveEnabled() bool {
	return c.TranscriptsTable != ""
}

// Load reads an optional .env file, then builds and validates a Config from
// the process environment.
func Load() (Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (Config, error) {
	var errs []string
	collect := func(key string, err error) {
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}

	cfg := Config{
		ListenAddr:     normalizeAddr(env.GetOrDefault(env.Port, DefaultListenAddr)),
		AllowedOrigins: env.GetList(env.AllowedOrigins, defaultOrigins),
		Gemini: GeminiConfig{
			APIKey:         env.Get(env.GeminiAPIKey),
			ReplyModel:     env.GetOrDefault(env.GeminiReplyModel, DefaultReplyModel),
			SentimentModel: env.GetOrDefault(env.GeminiSentimentModel, DefaultSentimentModel),
			CategoryModel:  env.GetOrDefault(env.GeminiCategoryModel, DefaultCategoryModel),
		},
		SeedFile:     env.Get(env.SeedFile),
		ResponseTime: env.GetOrDefault(env.AnalyticsResponseTime, store.DefaultResponseTime),
		RedisURL:     env.Get(env.ChatRedisURL),
		RedisPass:    env.Get(env.ChatRedisPass),
		AWS: AWSConfig{
			Region:   env.GetOrDefault(env.AWSRegion, "eu-central-1"),
			ID:       env.Get(env.AWSID),
			Secret:   env.Get(env.AWSSecret),
			Token:    env.Get(env.AWSToken),
			Endpoint: env.Get(env.DynamoDBEndpoint),
		},
		TranscriptsTable: env.Get(env.TranscriptsTable),
		DigestCron:       strings.TrimSpace(env.Get(env.DigestCron)),
	}

	var err error
	cfg.Gemini.Timeout, err = env.GetDuration(env.AITimeout, DefaultAITimeout)
	collect(env.AITimeout, err)
	cfg.SeedDemoData, err = env.GetBool(env.SeedDemoData, true)
	collect(env.SeedDemoData, err)
	cfg.CSAT, err = env.GetFloat(env.AnalyticsCSAT, store.DefaultCSAT)
	collect(env.AnalyticsCSAT, err)
	cfg.RequestQueueSize, err = env.GetInt(env.RequestQueueSize, 64)
	collect(env.RequestQueueSize, err)
	cfg.RequestWorkers, err = env.GetInt(env.RequestWorkers, 16)
	collect(env.RequestWorkers, err)
	cfg.BackgroundQueueSize, err = env.GetInt(env.BackgroundQueueSize, 64)
	collect(env.BackgroundQueueSize, err)
	cfg.BackgroundWorkers, err = env.GetInt(env.BackgroundWorkers, 4)
	collect(env.BackgroundWorkers, err)

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: parse failed: %s", strings.Join(errs, "; "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []string
	if c.Gemini.Timeout <= 0 {
		errs = append(errs, "AI timeout must be positive")
	}
	if c.CSAT < 0 || c.CSAT > 5 {
		errs = append(errs, "csat must be between 0 and 5")
	}
	if c.RequestQueueSize <= 0 || c.RequestWorkers <= 0 {
		errs = append(errs, "request queue size and workers must be positive")
	}
	if c.BackgroundQueueSize <= 0 || c.BackgroundWorkers <= 0 {
		errs = append(errs, "background queue size and workers must be positive")
	}
	if c.DigestCron != "" {
		if _, err := cron.ParseStandard(c.DigestCron); err != nil {
			errs = append(errs, fmt.Sprintf("digest cron %q: %v", c.DigestCron, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// normalizeAddr accepts both "5000" and ":5000".
func normalizeAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
