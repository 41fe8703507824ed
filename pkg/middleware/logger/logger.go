package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path       string
	LogLevel   string
	ServiceEnv ServiceEnv
}

type requestIDKey struct{}

var (
	log    = otelzap.New(zap.NewNop())
	sugar  = log.Sugar()
	writer *lumberjack.Logger
)

func Init(conf *LogConfig) {
	level, err := zapcore.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConf := zap.NewProductionEncoderConfig()
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConf), zapcore.Lock(os.Stdout), level),
	}
	if conf.Path != "" {
		writer = &lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConf), zapcore.AddSync(writer), level))
	}

	z := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).With(
		zap.String("platform", conf.ServiceEnv.Platform),
		zap.String("service", conf.ServiceEnv.Service),
		zap.String("env", conf.ServiceEnv.Env),
	)

	log = otelzap.New(z, otelzap.WithMinLevel(level))
	sugar = log.Sugar()
}

func Close() {
	_ = log.Sync()
	if writer != nil {
		_ = writer.Close()
	}
}

// WithRequestID returns a copy of ctx carrying the request id attached to every log line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withCtx binds ctx to the logger; the request id travels as a key/value on each write.
func withCtx(ctx context.Context) (otelzap.SugaredLoggerWithCtx, []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id := RequestID(ctx); id != "" {
		return sugar.Ctx(ctx), []any{"request_id", id}
	}
	return sugar.Ctx(ctx), nil
}

func Debugf(ctx context.Context, format string, args ...any) {
	s, kv := withCtx(ctx)
	s.Debugw(fmt.Sprintf(format, args...), kv...)
}

func Infof(ctx context.Context, format string, args ...any) {
	s, kv := withCtx(ctx)
	s.Infow(fmt.Sprintf(format, args...), kv...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	s, kv := withCtx(ctx)
	s.Warnw(fmt.Sprintf(format, args...), kv...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	s, kv := withCtx(ctx)
	s.Errorw(fmt.Sprintf(format, args...), kv...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	s, kv := withCtx(ctx)
	s.Fatalw(fmt.Sprintf(format, args...), kv...)
}

// GormWriter adapts the logger to gorm's logger.Writer.
type GormWriter struct{}

func (GormWriter) Printf(format string, args ...any) {
	sugar.Infof(strings.TrimSpace(format), args...)
}
