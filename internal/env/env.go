package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	Port                  = "PORT"
	AllowedOrigins        = "ALLOWED_ORIGINS"
	GeminiAPIKey          = "GEMINI_API_KEY"
	GeminiReplyModel      = "GEMINI_REPLY_MODEL"
	GeminiSentimentModel  = "GEMINI_SENTIMENT_MODEL"
	GeminiCategoryModel   = "GEMINI_CATEGORY_MODEL"
	AITimeout             = "AI_TIMEOUT"
	SeedDemoData          = "SEED_DEMO_DATA"
	SeedFile              = "SEED_FILE"
	AnalyticsResponseTime = "ANALYTICS_RESPONSE_TIME"
	AnalyticsCSAT         = "ANALYTICS_CSAT"
	RequestQueueSize      = "REQUEST_QUEUE_SIZE"
	RequestWorkers        = "REQUEST_WORKERS"
	BackgroundQueueSize   = "BACKGROUND_QUEUE_SIZE"
	BackgroundWorkers     = "BACKGROUND_WORKERS"
	ChatRedisURL          = "CHAT_REDIS_URL"
	ChatRedisPass         = "CHAT_REDIS_PASS"
	AWSRegion             = "AWS_REGION"
	AWSID                 = "AWS_ID"
	AWSSecret             = "AWS_SECRET"
	AWSToken              = "AWS_TOKEN"
	DynamoDBEndpoint      = "DYNAMODB_ENDPOINT"
	TranscriptsTable      = "TRANSCRIPTS_TABLE"
	DigestCron            = "DIGEST_CRON"
)

func Get(key string) string {
	return os.Getenv(key)
}

func GetOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("env: required environment variable not set: " + key)
	}
	return val
}

// The typed getters below return an error only when the variable is set but
// cannot be parsed; an unset variable yields defaultVal.

func GetInt(key string, defaultVal int) (int, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(val)
}

func GetFloat(key string, defaultVal float64) (float64, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(val, 64)
}

func GetBool(key string, defaultVal bool) (bool, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseBool(val)
}

func GetDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(val)
}

// GetList splits a comma separated variable, dropping empty entries.
func GetList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if strings.TrimSpace(val) == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
