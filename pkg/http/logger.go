package http

import (
	"net/url"
	"time"

	"go.uber.org/zap"

	"ecogarden-api/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration)

	// LogResponseError is called after a transport error (httpStatus 0) or a non 2xx response
	LogResponseError(method, url string, httpStatus int, latency time.Duration, err error)
}

// ZapLogger logs outbound calls through pkg/log. Query strings are dropped since they may carry credentials.
type ZapLogger struct {
	Name string
}

func (l ZapLogger) LogRequest(method, rawURL string) {
	log.Debug("Outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(rawURL)))
}

func (l ZapLogger) LogResponseSuccess(method, rawURL string, httpStatus int, latency time.Duration) {
	log.Info("Outbound request succeeded",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(rawURL)),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
}

func (l ZapLogger) LogResponseError(method, rawURL string, httpStatus int, latency time.Duration, err error) {
	log.Warn("Outbound request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(rawURL)),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Error(err))
}

func stripQuery(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	parsed.RawQuery = ""
	return parsed.String()
}
