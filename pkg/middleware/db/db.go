package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/scienceol/labprofile/pkg/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type LogConf struct {
	Level         string
	SlowThreshold time.Duration
}

type Config struct {
	Driver string
	Host   string
	Port   int
	User   string
	PW     string
	DBName string
	// SSLMode is passed through to postgres; empty means "disable".
	SSLMode string
	// SqlitePath is a file path or a "file:" URI.
	SqlitePath string
	// StatementTimeout bounds every statement on the server side, 0 disables it.
	StatementTimeout time.Duration
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	DisableTracing   bool
	LogConf          LogConf
}

type txKey struct{}

// Datastore owns the connection pool. Repositories receive it explicitly.
type Datastore struct {
	db *gorm.DB
}

func New(ctx context.Context, conf *Config) (*Datastore, error) {
	dialector, err := dialector(conf)
	if err != nil {
		return nil, err
	}

	d, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(logger.GormWriter{}, gormlogger.Config{
			SlowThreshold:             slowThreshold(conf.LogConf.SlowThreshold),
			LogLevel:                  gormLevel(conf.LogConf.Level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", conf.Driver, err)
	}

	if !conf.DisableTracing {
		if err := d.Use(tracing.NewPlugin(tracing.WithoutQueryVariables())); err != nil {
			return nil, fmt.Errorf("install gorm tracing: %w", err)
		}
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if conf.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", conf.Driver, err)
	}

	logger.Infof(ctx, "%s datastore ready", driverName(conf.Driver))
	return &Datastore{db: d}, nil
}

func dialector(conf *Config) (gorm.Dialector, error) {
	switch driverName(conf.Driver) {
	case DriverPostgres:
		return postgres.Open(postgresDSN(conf)), nil
	case DriverSqlite:
		return sqlite.Open(sqliteDSN(conf.SqlitePath)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", conf.Driver)
	}
}

func driverName(driver string) string {
	if driver == "" {
		return DriverPostgres
	}
	return strings.ToLower(driver)
}

func postgresDSN(conf *Config) string {
	sslMode := conf.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		conf.Host, conf.Port, conf.User, conf.PW, conf.DBName, sslMode)
	if conf.StatementTimeout > 0 {
		dsn += fmt.Sprintf(" statement_timeout=%d", conf.StatementTimeout.Milliseconds())
	}
	return dsn
}

// sqlite keeps foreign keys off unless asked per connection.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func gormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return gormlogger.Info
	case "info", "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

func slowThreshold(d time.Duration) time.Duration {
	if d <= 0 {
		return 200 * time.Millisecond
	}
	return d
}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

// DBWithContext returns the transaction bound to ctx by ExecTx, or a fresh session.
func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return d.db.WithContext(ctx)
}

// ExecTx runs fn inside one transaction: committed when fn returns nil, rolled back
// on error or panic. Nested calls join the outer transaction.
func (d *Datastore) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (d *Datastore) Ping(ctx context.Context) error {
	if d == nil || d.db == nil {
		return errors.New("datastore not initialized")
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Datastore) Close(ctx context.Context) {
	if d == nil || d.db == nil {
		return
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		logger.Errorf(ctx, "get sql db err: %+v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Errorf(ctx, "close datastore err: %+v", err)
	}
}
