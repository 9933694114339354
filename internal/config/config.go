package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig PostgreSQL 连接配置
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN 构建 lib/pq 连接串
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode)
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Config 风险评估服务配置
type Config struct {
	Server struct {
		Port         int
		ReadTimeout  int // 秒
		WriteTimeout int // 秒
	}

	Database DatabaseConfig
	Redis    RedisConfig

	// 模型推理服务配置
	Model struct {
		BaseURL            string
		Timeout            int // 秒
		SerializeExplainer bool
	}

	// 使用配额配置
	Quota struct {
		DailyLimit      int
		CooldownSeconds int
	}

	Log struct {
		Level  string
		Format string
	}

	APIVersion string
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Server.Port = getEnvInt("SERVER_PORT", 8080)
	cfg.Server.ReadTimeout = getEnvInt("SERVER_READ_TIMEOUT", 15)
	cfg.Server.WriteTimeout = getEnvInt("SERVER_WRITE_TIMEOUT", 30)

	cfg.Database.Enabled = getEnvBool("DB_ENABLED", false)
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "cardiorisk")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Enabled = getEnvBool("REDIS_ENABLED", false)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.Model.BaseURL = getEnv("MODEL_BASE_URL", "http://localhost:8501")
	cfg.Model.Timeout = getEnvInt("MODEL_TIMEOUT", 10)
	cfg.Model.SerializeExplainer = getEnvBool("MODEL_SERIALIZE_EXPLAINER", true)

	cfg.Quota.DailyLimit = getEnvInt("QUOTA_DAILY_LIMIT", 100)
	cfg.Quota.CooldownSeconds = getEnvInt("QUOTA_COOLDOWN_SECONDS", 30)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.APIVersion = getEnv("API_VERSION", "1.0.0")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
