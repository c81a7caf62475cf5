package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger writes one zap entry per request. Requests without an
// Ax-Request-Id get a generated id, echoed back in X-Request-Id.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			reqID := req.Header.Get(HeaderRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, reqID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			code := c.Response().Status
			level := zapcore.InfoLevel
			switch {
			case code >= 500:
				level = zapcore.ErrorLevel
			case code >= 400:
				level = zapcore.WarnLevel
			}
			if ce := log.Check(level, "request"); ce != nil {
				fields := []zap.Field{
					zap.String("method", req.Method),
					zap.String("path", c.Path()),
					zap.String("uri", req.RequestURI),
					zap.Int("status", code),
					zap.Duration("latency", time.Since(start)),
					zap.String("request_id", reqID),
				}
				if actor := req.Header.Get(HeaderActorID); actor != "" {
					fields = append(fields, zap.String("actor_id", actor))
				}
				if err != nil {
					fields = append(fields, zap.Error(err))
				}
				ce.Write(fields...)
			}
			return nil
		}
	}
}
