package config

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Minio    Minio    `mapstructure:"minio"`
	}
	MongoDB struct {
		Port       string `mapstructure:"port"`
		Host       string `mapstructure:"host"`
		Username   string `mapstructure:"username"`
		Password   string `mapstructure:"password"`
		DbName     string `mapstructure:"db_name"`
		ReplicaSet string `mapstructure:"replica_set"`
	}
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	}
	Logger struct {
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_file_name"`
		OutputErrorFileName string `mapstructure:"output_error_file_name"`
	}
	// RabbitMQ and Minio are optional; an empty Host disables them.
	RabbitMQ struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	Minio struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		UseSSL   bool   `mapstructure:"use_ssl"`
	}
)
