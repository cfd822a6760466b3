package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config is the typed view of the process environment.
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"require"`

	JWTSignerKey       string        `env:"JWT_SIGNER_KEY"`
	JWTIssuer          string        `env:"JWT_ISSUER" envDefault:"aptfee.backend"`
	JWTValidDuration   time.Duration `env:"JWT_VALID_DURATION" envDefault:"1h"`
	JWTRefreshDuration time.Duration `env:"JWT_REFRESH_DURATION" envDefault:"10h"`
	TokenCleanupCron   string        `env:"TOKEN_CLEANUP_CRON" envDefault:"15 3 * * *"`

	MidtransServerKey string `env:"MIDTRANS_SERVER_KEY"`
	MidtransUseProd   bool   `env:"MIDTRANS_USE_PROD" envDefault:"false"`

	OSSEndpoint     string `env:"ALI_OSS_ENDPOINT"`
	OSSAccessKey    string `env:"ALI_OSS_ACCESS_KEY"`
	OSSSecretKey    string `env:"ALI_OSS_SECRET_KEY"`
	OSSBucket       string `env:"ALI_OSS_BUCKET"`
	OSSContractsDir string `env:"ALI_OSS_CONTRACTS_PREFIX" envDefault:"contracts/"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

var App Config

// =======================
// ENV LOADER
// =======================
func LoadEnv() Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env file not found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running in Railway, using system environment")
	}

	if err := env.Parse(&App); err != nil {
		log.Fatalf("[ERROR] parse env: %v", err)
	}

	if App.JWTSignerKey == "" {
		log.Println("[ERROR] JWT_SIGNER_KEY is not set!")
	} else {
		log.Println("[INFO] JWT_SIGNER_KEY loaded.")
	}
	if App.MidtransServerKey == "" {
		log.Println("[WARN] MIDTRANS_SERVER_KEY is not set, checkout disabled")
	}
	return App
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnv("DB_LOG_QUERIES") == "true" {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
