package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"Lee_Blog/internal/pkg"
)

type Config struct {
	Addr     string
	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	SMTP pkg.SMTPConfig

	JWTAccessSecret  string
	JWTRefreshSecret string

	// 每页帖子数
	PageSize int
	// 首页整页缓存的 TTL
	IndexCacheTTL time.Duration
	// 帖子图片保存目录
	UploadDir string
}

func Load() *Config {
	// .env 不存在时直接用环境变量
	_ = godotenv.Load()

	return &Config{
		Addr:     getEnv("ADDR", ":8080"),
		MySQLDSN: getEnv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/blog?charset=utf8mb4&parseTime=True"),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "blog.follow.events"),

		SMTP: pkg.SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "NoReply <no-reply@example.com>"),
		},

		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", ""),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),

		PageSize:      getEnvInt("PAGE_SIZE", pkg.DefaultPageSize),
		IndexCacheTTL: time.Duration(getEnvInt("INDEX_CACHE_TTL", 20)) * time.Second,
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads/posts"),
	}
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

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
