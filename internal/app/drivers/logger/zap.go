package logger

import (
	"log"
	"practice-service/internal/app/config"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// parseLevel falls back to info for empty or unknown levels.
func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zap.InfoLevel
	}
	return parsed
}

// outputs returns the regular and error sinks. Production additionally writes
// to the configured log files when their names are set.
func outputs(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) ([]string, []string) {
	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if !internalConfig.IsProduction() {
		return outputPaths, errorOutputPaths
	}

	if name := driverConfig.Logger.OutputFileName; name != "" {
		outputPaths = append(outputPaths, name)
	}
	if name := driverConfig.Logger.OutputErrorFileName; name != "" {
		errorOutputPaths = append(errorOutputPaths, name)
	}
	return outputPaths, errorOutputPaths
}

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	outputPaths, errorOutputPaths := outputs(driverConfig, internalConfig)

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(driverConfig.Logger.Level)),
		Development:      internalConfig.App.Env == "development",
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger.With(zap.String("service", "practice-service"))
}
