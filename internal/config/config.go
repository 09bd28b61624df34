package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for every binary.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Logger   LoggerConfig
	Payslip  PayslipConfig
}

type AppConfig struct {
	Env                 string
	Port                string
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
}

type PostgresConfig struct {
	Host        string
	User        string
	Password    string
	Name        string
	Port        string
	SSLMode     string
	AutoMigrate bool
	MaxRetries  int
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	MaxRetries int
}

type KafkaConfig struct {
	Broker              string
	ConsumerGroup       string
	PollIntervalSeconds int
}

type AuthConfig struct {
	JWTSecret string
}

type LoggerConfig struct {
	Level string
}

type PayslipConfig struct {
	ArchiveDir string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:                 getEnv("APP_ENV", "development"),
			Port:                getEnv("PORT", "3000"),
			ReadTimeoutSeconds:  getEnvAsInt("HTTP_READ_TIMEOUT_SECONDS", 5),
			WriteTimeoutSeconds: getEnvAsInt("HTTP_WRITE_TIMEOUT_SECONDS", 30),
			IdleTimeoutSeconds:  getEnvAsInt("HTTP_IDLE_TIMEOUT_SECONDS", 60),
		},
		Postgres: PostgresConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        getEnv("DB_NAME", "payroll"),
			Port:        getEnv("DB_PORT", "5432"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
			MaxRetries:  getEnvAsInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:   os.Getenv("REDIS_PASSWORD"),
			DB:         redisDB,
			MaxRetries: getEnvAsInt("REDIS_MAX_RETRIES", 5),
		},
		Kafka: KafkaConfig{
			Broker:              os.Getenv("KAFKA_BROKER"),
			ConsumerGroup:       getEnv("KAFKA_CONSUMER_GROUP", "go-payroll-payslip"),
			PollIntervalSeconds: getEnvAsInt("OUTBOX_POLL_INTERVAL_SECONDS", 3),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Payslip: PayslipConfig{
			ArchiveDir: getEnv("PAYSLIP_ARCHIVE_DIR", "storage/payslips"),
		},
	}

	return cfg, nil
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

func (a AppConfig) Addr() string {
	return ":" + a.Port
}

func (a AppConfig) ReadTimeout() time.Duration {
	return time.Duration(a.ReadTimeoutSeconds) * time.Second
}

func (a AppConfig) WriteTimeout() time.Duration {
	return time.Duration(a.WriteTimeoutSeconds) * time.Second
}

func (a AppConfig) IdleTimeout() time.Duration {
	return time.Duration(a.IdleTimeoutSeconds) * time.Second
}

func (k KafkaConfig) PollInterval() time.Duration {
	if k.PollIntervalSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(k.PollIntervalSeconds) * time.Second
}

// Brokers memecah KAFKA_BROKER yang dipisah koma.
func (k KafkaConfig) Brokers() []string {
	var out []string
	for _, b := range strings.Split(k.Broker, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		p.Host, p.User, p.Password, p.Name, p.Port, p.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
