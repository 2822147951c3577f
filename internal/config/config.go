package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	TwelveLabs TwelveLabsConfig `mapstructure:"twelvelabs"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Search     SearchConfig     `mapstructure:"search"`
	Zoom       ZoomConfig       `mapstructure:"zoom"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// StorageConfig configures the S3-compatible bucket that holds uploaded
// session videos.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	PublicURL string `mapstructure:"public_url"`
}

// TwelveLabsConfig configures the video-understanding service used for
// indexing, semantic search, and analysis.
type TwelveLabsConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// GeminiConfig configures the generative-text service used for query
// rewriting and quiz generation.
type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// SearchConfig holds the ranking parameters for semantic search. The
// confidence floor filters low-confidence matches before ranking; values
// <= 0 disable the filter for permissive recall.
type SearchConfig struct {
	IndexID         string   `mapstructure:"index_id"`
	Options         []string `mapstructure:"options"`
	GroupBy         string   `mapstructure:"group_by"`
	Operator        string   `mapstructure:"operator"`
	PageLimit       int      `mapstructure:"page_limit"`
	SortOption      string   `mapstructure:"sort_option"`
	ConfidenceFloor float64  `mapstructure:"confidence_floor"`
}

type ZoomConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AccountID    string `mapstructure:"account_id"`
	OAuthURL     string `mapstructure:"oauth_url"`
	APIURL       string `mapstructure:"api_url"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("storage.endpoint", "localhost:9000")
	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.bucket", "hackrice-2025")
	v.SetDefault("twelvelabs.base_url", "https://api.twelvelabs.io/v1.3")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("search.options", []string{"visual", "audio"})
	v.SetDefault("search.group_by", "video")
	v.SetDefault("search.operator", "or")
	v.SetDefault("search.page_limit", 5)
	v.SetDefault("search.sort_option", "score")
	v.SetDefault("search.confidence_floor", 0.0)
	v.SetDefault("zoom.oauth_url", "https://zoom.us")
	v.SetDefault("zoom.api_url", "https://api.zoom.us")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("storage.endpoint", "STORAGE_ENDPOINT")
	v.BindEnv("storage.access_key", "STORAGE_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "STORAGE_SECRET_KEY")
	v.BindEnv("storage.bucket", "STORAGE_BUCKET")
	v.BindEnv("storage.public_url", "STORAGE_PUBLIC_URL")
	v.BindEnv("twelvelabs.api_key", "TWELVELABS_API_KEY")
	v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	v.BindEnv("search.index_id", "MERANGO_INDEX")
	v.BindEnv("search.confidence_floor", "SEARCH_CONFIDENCE_FLOOR")
	v.BindEnv("zoom.client_id", "ZOOM_CLIENT_ID")
	v.BindEnv("zoom.client_secret", "ZOOM_CLIENT_SECRET")
	v.BindEnv("zoom.account_id", "ZOOM_ACCOUNT_ID")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
