package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	// 清除环境变量
	os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// 验证默认值
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "postgres", cfg.Database.Password)
	assert.Equal(t, "cardiorisk", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "", cfg.Redis.Password)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "http://localhost:8501", cfg.Model.BaseURL)
	assert.Equal(t, 10, cfg.Model.Timeout)
	assert.True(t, cfg.Model.SerializeExplainer)

	assert.Equal(t, 100, cfg.Quota.DailyLimit)
	assert.Equal(t, 30, cfg.Quota.CooldownSeconds)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, "1.0.0", cfg.APIVersion)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	// 设置环境变量
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_ENABLED", "true")
	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "test-user")
	os.Setenv("DB_PASSWORD", "test-password")
	os.Setenv("DB_NAME", "test-db")
	os.Setenv("REDIS_ENABLED", "true")
	os.Setenv("REDIS_ADDR", "test-redis:6380")
	os.Setenv("REDIS_PASSWORD", "test-redis-password")
	os.Setenv("MODEL_BASE_URL", "http://model:9000")
	os.Setenv("MODEL_SERIALIZE_EXPLAINER", "false")
	os.Setenv("QUOTA_DAILY_LIMIT", "5")
	os.Setenv("QUOTA_COOLDOWN_SECONDS", "60")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// 验证环境变量覆盖
	assert.Equal(t, 9090, cfg.Server.Port)

	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "test-user", cfg.Database.User)
	assert.Equal(t, "test-password", cfg.Database.Password)
	assert.Equal(t, "test-db", cfg.Database.Database)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "test-redis:6380", cfg.Redis.Addr)
	assert.Equal(t, "test-redis-password", cfg.Redis.Password)

	assert.Equal(t, "http://model:9000", cfg.Model.BaseURL)
	assert.False(t, cfg.Model.SerializeExplainer)

	assert.Equal(t, 5, cfg.Quota.DailyLimit)
	assert.Equal(t, 60, cfg.Quota.CooldownSeconds)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	// 清理环境变量
	os.Clearenv()
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db-host",
		Port:     5432,
		User:     "app",
		Password: "secret",
		Database: "cardiorisk",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db-host port=5432 user=app password=secret dbname=cardiorisk sslmode=disable",
		d.DSN(),
	)
}

func TestGetEnv(t *testing.T) {
	// 测试默认值
	os.Clearenv()
	value := getEnv("TEST_KEY", "default-value")
	assert.Equal(t, "default-value", value)

	// 测试环境变量存在
	os.Setenv("TEST_KEY", "env-value")
	value = getEnv("TEST_KEY", "default-value")
	assert.Equal(t, "env-value", value)

	// 清理
	os.Unsetenv("TEST_KEY")
}

func TestGetEnvInt_Invalid(t *testing.T) {
	os.Setenv("TEST_INT", "not-a-number")
	defer os.Unsetenv("TEST_INT")

	assert.Equal(t, 42, getEnvInt("TEST_INT", 42))
}

func TestGetEnvBool(t *testing.T) {
	os.Clearenv()
	assert.False(t, getEnvBool("TEST_BOOL", false))

	os.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvBool("TEST_BOOL", false))

	os.Setenv("TEST_BOOL", "not-a-bool")
	assert.True(t, getEnvBool("TEST_BOOL", true))

	os.Unsetenv("TEST_BOOL")
}
