package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	DefaultLanguage   string `mapstructure:"DEFAULT_LANGUAGE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Firebase configuration. The service account key feeds the Admin SDK;
	// the web API key is required by the Identity Toolkit password verifier,
	// the same endpoint the web client SDK calls.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseWebAPIKey       string `mapstructure:"FIREBASE_WEB_API_KEY"`

	// Cloudinary unsigned-upload configuration.
	CloudinaryCloudName    string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryUploadPreset string `mapstructure:"CLOUDINARY_UPLOAD_PRESET"`
	CloudinaryFolder       string `mapstructure:"CLOUDINARY_FOLDER"`

	// Watson Assistant web-chat widget identifiers, handed to clients so they
	// can inject (and later remove) the embed script themselves.
	WatsonIntegrationID     string `mapstructure:"WATSON_INTEGRATION_ID"`
	WatsonRegion            string `mapstructure:"WATSON_REGION"`
	WatsonServiceInstanceID string `mapstructure:"WATSON_SERVICE_INSTANCE_ID"`
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

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DEFAULT_LANGUAGE", "ar")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "herafona")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "config/serviceAccountKey.json")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "dfxadnqle")
	viper.SetDefault("CLOUDINARY_UPLOAD_PRESET", "herafona_unsigned")
	viper.SetDefault("CLOUDINARY_FOLDER", "herafona/experiences")
	viper.SetDefault("WATSON_INTEGRATION_ID", "50276422-77bf-4014-9cce-677f24fe189b")
	viper.SetDefault("WATSON_REGION", "au-syd")
	viper.SetDefault("WATSON_SERVICE_INSTANCE_ID", "6c218397-7193-4adc-b31a-f6646cc4fe41")

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
