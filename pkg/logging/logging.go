package logging

import (
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger with otelzap so log lines carry the trace and
// span ids of the request they belong to.
type Logger struct {
	*otelzap.Logger
	serviceName string
}

func New(serviceName string) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	zapLogger, err := config.Build()

	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return &Logger{
		Logger:      otelzap.New(zapLogger),
		serviceName: serviceName,
	}, nil
}

func (l *Logger) ServiceName() string {
	return l.serviceName
}
