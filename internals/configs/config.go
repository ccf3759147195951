package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port string

	DBDriver       string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBSSLMode      string
	DBAutoMigrate  bool
	DBMaxOpenConns int
	DBMaxIdleConns int

	LogLevel         string
	CorsAllowOrigins string
	RateLimitMax     int

	Seed     bool
	SeedFile string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv(log *logrus.Logger) Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("no .env file found, using system environment")
		} else {
			log.Info(".env file loaded")
		}
	} else {
		log.Info("running on Railway, using system environment")
	}

	cfg := Config{
		Port: GetEnv("PORT", "3000"),

		DBDriver:       strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DBUser:         GetEnv("DB_USER"),
		DBPassword:     GetEnv("DB_PASSWORD"),
		DBHost:         GetEnv("DB_HOST", "localhost"),
		DBPort:         GetEnv("DB_PORT"),
		DBName:         GetEnv("DB_NAME", "sbb"),
		DBSSLMode:      GetEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate:  GetEnvBool("DB_AUTO_MIGRATE", true),
		DBMaxOpenConns: GetEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: GetEnvInt("DB_MAX_IDLE_CONNS", 10),

		LogLevel:         GetEnv("LOG_LEVEL", "info"),
		CorsAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		RateLimitMax:     GetEnvInt("RATE_LIMIT_MAX", 100),

		Seed:     GetEnvBool("SEED", false),
		SeedFile: GetEnv("SEED_FILE", "internals/seeds/questions/data_questions.json"),
	}
	if cfg.DBPort == "" {
		cfg.DBPort = defaultDBPort(cfg.DBDriver)
	}
	if cfg.DBUser == "" {
		log.Warn("DB_USER is not set")
	}
	return cfg
}

func defaultDBPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
