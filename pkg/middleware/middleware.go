package middleware

import (
	"strconv"

	"github.com/garaga28/Librario/pkg/auth"
	"github.com/garaga28/Librario/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// AuthContext lifts the identity headers supplied by the session
// collaborator into the request context. No token verification happens
// here: authentication lives outside this service.
func AuthContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := auth.Identity{
			UserName: req.Header.Get(auth.XUserNameHeader),
			Role:     req.Header.Get(auth.XUserRoleHeader),
		}
		if v := req.Header.Get(auth.XMemberIDHeader); v != "" {
			memberID, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return echo.NewHTTPError(400, "invalid "+auth.XMemberIDHeader)
			}
			id.MemberID = memberID
		}
		ctx := auth.SetAuthContext(req.Context(), id)
		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig() middleware.RequestLoggerConfig {
	cfg := logger.Log{LogLevel: zapcore.DebugLevel, Sink: ""}
	log := logger.NewLogger(cfg, "echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
