package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Billing  AppBilling  `mapstructure:"billing"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Minio    AppMinio    `mapstructure:"minio"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	SuperadminAPIKey           string `mapstructure:"superadmin_api_key"`
	SuperadminAPIKeyRateLimit  int    `mapstructure:"superadmin_api_key_rate_limit"`
	LoginMaxAttempts           int    `mapstructure:"login_max_attempts"`
	LoginWindowInSeconds       int    `mapstructure:"login_window_in_seconds"`
	LoginBlockInSeconds        int    `mapstructure:"login_block_in_seconds"`
}

type AppJWT struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type AppBilling struct {
	// CronSpec schedules monthly charge generation, "0 0 1 * *" by default
	CronSpec         string `mapstructure:"cron_spec"`
	MaxConcurrency   int    `mapstructure:"max_concurrency"`
	LockTTLInSeconds int    `mapstructure:"lock_ttl_in_seconds"`
	WorkerEnabled    bool   `mapstructure:"worker_enabled"`
}

type AppRabbitMQ struct {
	BillingQueue string `mapstructure:"billing_queue"`
}

type AppMinio struct {
	ImportBucketName string `mapstructure:"import_bucket_name"`
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == "production"
}
