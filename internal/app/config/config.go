package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingJWTSecret = errors.New("config: JWT_SECRET must be set")

func init() {
	godotenv.Load()
}

// newViper returns a viper instance that resolves a nested key like
// "app.port" from the APP_PORT environment variable.
func newViper(defaults map[string]interface{}) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func NewDriverConfig() (*DriverConfig, error) {
	v := newViper(map[string]interface{}{
		"mongodb.host":                  "localhost",
		"mongodb.port":                  "27017",
		"mongodb.username":              "",
		"mongodb.password":              "",
		"mongodb.db_name":               "practice",
		"mongodb.replica_set":           "",
		"redis.host":                    "localhost",
		"redis.port":                    "6379",
		"redis.password":                "",
		"logger.level":                  "debug",
		"logger.output_file_name":       "logger.log",
		"logger.output_error_file_name": "logger_error.log",
		"rabbitmq.host":                 "",
		"rabbitmq.port":                 "5672",
		"rabbitmq.username":             "guest",
		"rabbitmq.password":             "guest",
		"minio.host":                    "",
		"minio.port":                    "9000",
		"minio.username":                "",
		"minio.password":                "",
		"minio.use_ssl":                 false,
	})

	var cfg DriverConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func NewInternalConfig() (*InternalConfig, error) {
	v := newViper(map[string]interface{}{
		"app.env":                            "development",
		"app.port":                           "8080",
		"app.version":                        "v1",
		"app.address":                        "0.0.0.0",
		"app.timezone":                       "America/Sao_Paulo",
		"app.endpoint_prefix":                "/api",
		"app.max_requests":                   20,
		"app.shutdown_timeout_in_seconds":    10,
		"app.request_timeout_in_seconds":     10,
		"app.request_body_limit_in_megabyte": 6,
		"app.superadmin_api_key":             "",
		"app.superadmin_api_key_rate_limit":  5,
		"app.login_max_attempts":             5,
		"app.login_window_in_seconds":        60,
		"app.login_block_in_seconds":         300,
		"jwt.secret":                         "",
		"jwt.expiry_hours":                   168,
		"billing.cron_spec":                  "0 0 1 * *",
		"billing.max_concurrency":            8,
		"billing.lock_ttl_in_seconds":        120,
		"billing.worker_enabled":             true,
		"rabbitmq.billing_queue":             "billing_events",
		"minio.import_bucket_name":           "customer-imports",
	})

	var cfg InternalConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, ErrMissingJWTSecret
	}
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return nil, err
	}
	return &cfg, nil
}
