package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
)

const RequestIDHeader = "X-Request-Id"

// LogWithWriter tags each request with an id and logs it once the handler chain returns.
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		ctx.Request = ctx.Request.WithContext(WithRequestID(ctx.Request.Context(), id))
		ctx.Header(RequestIDHeader, id)

		ctx.Next()

		status := ctx.Writer.Status()
		latency := time.Since(start)
		path := ctx.Request.URL.Path
		if raw := ctx.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}
		switch {
		case status >= 500:
			Errorf(ctx.Request.Context(), "%s %s status: %d latency: %s client: %s", ctx.Request.Method, path, status, latency, ctx.ClientIP())
		case status >= 400:
			Warnf(ctx.Request.Context(), "%s %s status: %d latency: %s client: %s", ctx.Request.Method, path, status, latency, ctx.ClientIP())
		default:
			Infof(ctx.Request.Context(), "%s %s status: %d latency: %s client: %s", ctx.Request.Method, path, status, latency, ctx.ClientIP())
		}
	}
}
