package configs

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the process wide configuration. The first call loads
// .env.local / .env into the environment and then reads config.yaml.
func GetConfig() *Config {
	once.Do(func() {
		loadDotEnv()
		c, err := LoadConfig(".", "./configs")
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config = c
	})
	return config
}

// LoadConfig builds an independent Config that searches the given paths for
// config.yaml. A missing file is not an error, defaults and env still apply.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{Viper: v}, nil
}

func loadDotEnv() {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment")
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.body_limit_bytes", 4<<20)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_time", 7*24*60*60)

	v.SetDefault("database.driver", "mongo")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "duochat")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("mongodb.uri", "")
	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", 27017)
	v.SetDefault("mongodb.username", "")
	v.SetDefault("mongodb.password", "")
	v.SetDefault("mongodb.database", "duochat")
	v.SetDefault("mongodb.auth_source", "admin")
	v.SetDefault("mongodb.timeout", 10*time.Second)

	v.SetDefault("redis.url", "redis://localhost:6379/0")

	v.SetDefault("presence.ttl", 2*time.Minute)

	v.SetDefault("socket.require_token", false)

	v.SetDefault("media.driver", "minio")
	v.SetDefault("media.max_image_bytes", 3<<20)

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key_id", "")
	v.SetDefault("minio.secret_access_key", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.external_endpoint", "localhost:9000")

	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "duochat-media")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("s3.use_path_style", false)

	v.SetDefault("log.level", "debug")
}

// MongoURI prefers mongodb.uri and otherwise assembles one from the parts.
func (c *Config) MongoURI() string {
	if uri := c.Viper.GetString("mongodb.uri"); uri != "" {
		return uri
	}
	host := c.Viper.GetString("mongodb.host")
	port := c.Viper.GetInt("mongodb.port")
	database := c.Viper.GetString("mongodb.database")
	username := c.Viper.GetString("mongodb.username")
	if username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d/%s?authSource=%s",
			username,
			c.Viper.GetString("mongodb.password"),
			host,
			port,
			database,
			c.Viper.GetString("mongodb.auth_source"),
		)
	}
	return fmt.Sprintf("mongodb://%s:%d/%s", host, port, database)
}

// PostgresDSN formats the gorm postgres DSN from the database.* keys.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%v user=%v password=%v dbname=%v port=%v sslmode=%v TimeZone=%v",
		c.Viper.GetString("database.host"),
		c.Viper.GetString("database.user"),
		c.Viper.GetString("database.password"),
		c.Viper.GetString("database.name"),
		c.Viper.GetInt("database.port"),
		c.Viper.GetString("database.ssl"),
		c.Viper.GetString("database.timezone"),
	)
}
