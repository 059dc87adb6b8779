package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config 全站設定，環境變數優先，本地開發可放 .env
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTExpiresDay int    `mapstructure:"JWT_EXPIRES_DAY"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load 讀取設定
// 部署環境（Render 等）只靠環境變數；本地若有 .env 就一併載入
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "5500")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "hexshop")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_SECRET", "hexshop-secret-change-in-production")
	v.SetDefault("JWT_EXPIRES_DAY", 30)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	// .env 不存在不算錯誤
	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("讀取 .env 失敗: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析設定失敗: %w", err)
	}
	return cfg, nil
}

// DSN 組出 Postgres 連線字串
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}
