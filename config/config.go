package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisChatCtxDB int    `mapstructure:"REDIS_CHAT_CTX_DB"`

	// Amadeus consolidator credentials.
	AmadeusAPIKey    string `mapstructure:"AMADEUS_API_KEY"`
	AmadeusAPISecret string `mapstructure:"AMADEUS_API_SECRET"`
	AmadeusUseTest   bool   `mapstructure:"AMADEUS_USE_TEST"`
	// Requests-per-minute ceiling agreed with the consolidator.
	AmadeusRateLimit int `mapstructure:"AMADEUS_RATE_LIMIT"`

	// Gemini API key for the Maestro orchestrator.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Stripe secret key.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// WhatsApp Business (Meta Graph API) configuration.
	WhatsAppAccessToken   string `mapstructure:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneNumberID string `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppVerifyToken   string `mapstructure:"WHATSAPP_VERIFY_TOKEN"`
	WhatsAppAppSecret     string `mapstructure:"WHATSAPP_APP_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values. API keys have no defaults; they must come
	// from the environment and are never committed.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CHAT_CTX_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AMADEUS_USE_TEST", true)
	viper.SetDefault("AMADEUS_RATE_LIMIT", 100)
	viper.SetDefault("WHATSAPP_VERIFY_TOKEN", "voyager_webhook")
	// Empty defaults register the keys with viper so AutomaticEnv can
	// populate them; real values only ever come from the environment.
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("AMADEUS_API_KEY", "")
	viper.SetDefault("AMADEUS_API_SECRET", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("WHATSAPP_ACCESS_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_APP_SECRET", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
