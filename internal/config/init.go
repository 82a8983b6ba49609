package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/seqwell/mlwh/internal/appcontext"
)

// Config is populated from MLWH_* environment variables, optionally seeded
// from a .env file. Connection string construction and credential resolution
// stay with the operator; this layer consumes the DSN as-is.
type Config struct {
	DatabaseURL     string        `env:"MLWH_DATABASE_URL,required"`
	MaxIdleConns    int           `env:"MLWH_MAX_IDLE_CONNS,default=10"`
	MaxOpenConns    int           `env:"MLWH_MAX_OPEN_CONNS,default=100"`
	ConnMaxLifetime time.Duration `env:"MLWH_CONN_MAX_LIFETIME,default=1h"`
	Debug           bool          `env:"MLWH_DEBUG,default=false"`
}

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := InitLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}

	db, err := InitDB(cfg)
	if err != nil {
		return nil, err
	}

	return &appcontext.Context{
		DB:     db,
		Logger: logger,
	}, nil
}

// InitDB opens the warehouse connection pool. The warehouse schema is owned
// by the LIMS feeds, so no migration runs here; TranslateError is enabled so
// constraint violations surface as gorm's typed errors.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func InitLogger(debug bool) (*zap.Logger, error) {
	newLogger := zap.NewProduction
	if debug {
		newLogger = zap.NewDevelopment
	}

	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
