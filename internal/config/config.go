package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	S3          S3Config          `mapstructure:"s3"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Recognition RecognitionConfig `mapstructure:"recognition"`
	Program     ProgramConfig     `mapstructure:"program"`
	Premium     PremiumConfig     `mapstructure:"premium"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config points at the optional object-storage catalog. With an empty
// bucket name the service runs on the embedded catalog.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	CatalogKey      string `mapstructure:"catalog_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// RecognitionConfig is the explicit capabilities knob for the speech-driven
// session loop. Platform differences are expressed here, at startup;
// nothing downstream sniffs user agents.
type RecognitionConfig struct {
	Continuous      bool          `mapstructure:"continuous"`
	InterimResults  bool          `mapstructure:"interim_results"`
	MatchThreshold  int           `mapstructure:"match_threshold"`
	Language        string        `mapstructure:"language"`
	ListenTimeout   time.Duration `mapstructure:"listen_timeout"`
	NoSpeechRetries int           `mapstructure:"no_speech_retries"`
	RepCooldown     time.Duration `mapstructure:"rep_cooldown"`
}

// ProgramConfig tunes the program shape. The defaults are the product's
// fixed 30-day / 3-sessions / 3-reps structure.
type ProgramConfig struct {
	TargetReps int `mapstructure:"target_reps"`
}

// PremiumConfig tunes the simulated checkout.
type PremiumConfig struct {
	CheckoutDelay time.Duration `mapstructure:"checkout_delay"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: server.address -> SERVER_ADDRESS etc.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "manisera_default")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("s3.catalog_key", "catalog/affirmations.json")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("recognition.continuous", true)
	viper.SetDefault("recognition.interim_results", true)
	viper.SetDefault("recognition.match_threshold", 2)
	viper.SetDefault("recognition.language", "ro-RO")
	viper.SetDefault("recognition.listen_timeout", "30s")
	viper.SetDefault("recognition.no_speech_retries", 0)
	viper.SetDefault("recognition.rep_cooldown", "2s")
	viper.SetDefault("program.target_reps", 3)
	viper.SetDefault("premium.checkout_delay", "2s")

	// --- Read Config File ---
	err = viper.ReadInConfig()
	// If the config file is not found, continue on defaults/env vars.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
