package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	S3        S3Config
	Log       LogConfig
	RateLimit RateLimitConfig
	Parser    ParserConfig
	Export    ExportConfig
	Kafka     KafkaConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey      string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	Issuer         string        `envconfig:"JWT_ISSUER" default:"geocoord"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET" required:"true"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig allows Requests per client in any trailing Window.
type RateLimitConfig struct {
	Enabled  bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

type ParserConfig struct {
	DefaultGlobe string `envconfig:"PARSER_DEFAULT_GLOBE" default:"http://www.wikidata.org/entity/Q2"`
	CacheSize    int    `envconfig:"PARSER_CACHE_SIZE" default:"4096"`
	MaxBatchSize int    `envconfig:"PARSER_MAX_BATCH_SIZE" default:"100"`
}

type ExportConfig struct {
	KeyPrefix string        `envconfig:"EXPORT_KEY_PREFIX" default:"exports"`
	URLExpiry time.Duration `envconfig:"EXPORT_URL_EXPIRY" default:"15m"`
}

// KafkaConfig leaves event publishing off when Brokers is empty.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"coordinate.events"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
