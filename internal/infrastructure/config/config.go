package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Cache       CacheConfig     `mapstructure:"cache"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Feedback    FeedbackConfig  `mapstructure:"feedback"`
	Scraper     ScraperConfig   `mapstructure:"scraper"`
	Vision      VisionConfig    `mapstructure:"vision"`
	Queue       QueueConfig     `mapstructure:"queue"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// 快取後端
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig 分析結果快取
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Backend string        `mapstructure:"backend"`
	MaxSize int           `mapstructure:"max_size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RedisConfig Redis 連線設定
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// FeedbackConfig 使用者回饋儲存
type FeedbackConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ScraperConfig 食譜抓取設定
type ScraperConfig struct {
	Timeout      time.Duration `mapstructure:"timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	RetryCount   int           `mapstructure:"retry_count"`
}

// 影像分析供應商
const (
	VisionProviderAnthropic  = "anthropic"
	VisionProviderOpenRouter = "openrouter"
)

// VisionConfig 廚房照片分析設定
type VisionConfig struct {
	Provider         string        `mapstructure:"provider"`
	AnthropicAPIKey  string        `mapstructure:"anthropic_api_key"`
	OpenRouterAPIKey string        `mapstructure:"openrouter_api_key"`
	Model            string        `mapstructure:"model"`
	MaxTokens        int           `mapstructure:"max_tokens"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxImageBytes    int64         `mapstructure:"max_image_bytes"`
}

// APIKey 目前供應商使用的金鑰
func (v VisionConfig) APIKey() string {
	if v.Provider == VisionProviderOpenRouter {
		return v.OpenRouterAPIKey
	}
	return v.AnthropicAPIKey
}

// QueueConfig 照片分析隊列
type QueueConfig struct {
	Workers int `mapstructure:"workers"`
	MaxSize int `mapstructure:"max_size"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件，不存在時只用環境變數與預設值
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	viper.Reset()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	bindings := map[string]string{
		"vision.anthropic_api_key":  "ANTHROPIC_API_KEY",
		"vision.openrouter_api_key": "OPENROUTER_API_KEY",
		"vision.provider":           "VISION_PROVIDER",
		"vision.model":              "VISION_MODEL",
		"vision.max_tokens":         "MODEL_MAX_TOKENS",
		"queue.workers":             "QUEUE_WORKERS",
		"cache.enabled":             "CACHE_ENABLED",
		"cache.backend":             "CACHE_BACKEND",
		"redis.addr":                "REDIS_ADDR",
		"redis.password":            "REDIS_PASSWORD",
		"feedback.path":             "FEEDBACK_DB_PATH",
		"server.port":               "PORT",
		"rate_limit.enabled":        "RATE_LIMIT_ENABLED",
		"rate_limit.requests":       "RATE_LIMIT_REQUESTS",
		"rate_limit.window":         "RATE_LIMIT_WINDOW",
		"dedup_window":              "DEDUP_WINDOW",
		"log_level":                 "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, "APP_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Cache.Backend = strings.ToLower(config.Cache.Backend)
	config.Vision.Provider = strings.ToLower(config.Vision.Provider)

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "cleanup-estimator")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "90s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.request_timeout", "60s")
	viper.SetDefault("server.max_body_bytes", 12<<20)

	// 快取設定：食譜分析結果保留 7 天
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", CacheBackendMemory)
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "168h")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.key_prefix", "cleanup:recipe:")

	viper.SetDefault("feedback.enabled", true)
	viper.SetDefault("feedback.path", "data/feedback.db")

	// 抓取設定
	viper.SetDefault("scraper.timeout", "10s")
	viper.SetDefault("scraper.user_agent", "Mozilla/5.0 (compatible; CleanupEstimator/1.0)")
	viper.SetDefault("scraper.max_body_bytes", 5<<20)
	viper.SetDefault("scraper.retry_count", 1)

	// 影像分析設定
	viper.SetDefault("vision.provider", VisionProviderAnthropic)
	viper.SetDefault("vision.model", "claude-sonnet-4-5")
	viper.SetDefault("vision.max_tokens", 2000)
	viper.SetDefault("vision.timeout", "60s")
	viper.SetDefault("vision.max_image_bytes", 10<<20) // 10MB

	// 隊列設定
	viper.SetDefault("queue.workers", 2)
	viper.SetDefault("queue.max_size", 20)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	viper.SetDefault("dedup_window", "1s")
	viper.SetDefault("log_level", "info")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}
	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid server max body bytes")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		switch config.Cache.Backend {
		case CacheBackendMemory:
			if config.Cache.MaxSize <= 0 {
				return fmt.Errorf("invalid cache max size")
			}
		case CacheBackendRedis:
			if config.Redis.Addr == "" {
				return fmt.Errorf("redis addr is required for redis cache backend")
			}
		default:
			return fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
	}

	if config.Feedback.Enabled && config.Feedback.Path == "" {
		return fmt.Errorf("feedback path is required")
	}

	if config.Scraper.Timeout <= 0 {
		return fmt.Errorf("invalid scraper timeout")
	}

	switch config.Vision.Provider {
	case VisionProviderAnthropic, VisionProviderOpenRouter:
	default:
		return fmt.Errorf("unknown vision provider %q", config.Vision.Provider)
	}
	if config.Vision.MaxImageBytes <= 0 {
		return fmt.Errorf("invalid vision max image bytes")
	}

	if config.Queue.Workers <= 0 || config.Queue.MaxSize <= 0 {
		return fmt.Errorf("invalid queue config")
	}

	if config.RateLimit.Enabled && (config.RateLimit.Requests <= 0 || config.RateLimit.Window <= 0) {
		return fmt.Errorf("invalid rate limit")
	}

	return nil
}
